package payment_fx

import (
	"os"

	"evcharge/internal/api/controllers"
	"evcharge/internal/repositories"
	"evcharge/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	providePricingService,
	provideTransactionService,
	provideVNPayService,
	providePaymentService,
	providePaymentController,
	provideVNPayController,
	provideTransactionController,
)

func providePricingService(db *gorm.DB) services.PricingServiceInterface {
	return services.NewPricingService(
		repositories.NewSessionRepository(db),
		repositories.NewPriceFactorRepository(db),
		repositories.NewSubscriptionRepository(db),
		repositories.NewFeeRepository(db),
	)
}

func provideTransactionService(db *gorm.DB) services.TransactionServiceInterface {
	return services.NewTransactionService(
		repositories.NewTransactionRepository(db),
		repositories.NewSessionRepository(db),
		repositories.NewUserRepository(db),
	)
}

// provideVNPayService returns the error to fx so a missing gateway config
// fails startup instead of the first payment request.
func provideVNPayService() (services.VNPayServiceInterface, error) {
	cfg := services.VNPayConfig{
		TmnCode:          os.Getenv("VNPAY_TMN_CODE"),
		HashSecret:       os.Getenv("VNPAY_HASH_SECRET"),
		PaymentURL:       os.Getenv("VNPAY_URL"),
		DefaultReturnURL: os.Getenv("VNPAY_RETURN_URL"),
	}
	return services.NewVNPayService(cfg)
}

func providePaymentService(
	pricing services.PricingServiceInterface,
	txns services.TransactionServiceInterface,
	gateway services.VNPayServiceInterface,
	mail services.IMailService,
) services.PaymentServiceInterface {
	return services.NewPaymentService(pricing, txns, gateway, mail)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}

func provideVNPayController(paymentService services.PaymentServiceInterface) *controllers.VNPayController {
	return controllers.NewVNPayController(paymentService)
}

func provideTransactionController(txns services.TransactionServiceInterface) *controllers.TransactionController {
	return controllers.NewTransactionController(txns)
}
