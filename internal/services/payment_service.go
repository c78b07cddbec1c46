package services

import (
	"context"
	"evcharge/internal/models/db_models"
	"evcharge/internal/models/response_models"
	"evcharge/pkg/utils"
	"fmt"
	"github.com/google/uuid"
	"log"
	"math"
)

type PaymentServiceInterface interface {
	ProcessPayment(ctx context.Context, sessionID uuid.UUID, method string, returnURL string) (*response_models.PaymentResponse, error)
	QuoteAmount(ctx context.Context, sessionID uuid.UUID) (float64, error)
	HandleGatewayCallback(ctx context.Context, params map[string]string) (*response_models.PaymentResponse, error)
	HandleGatewayIPN(ctx context.Context, params map[string]string) response_models.IPNResponse
}

func NewPaymentService(
	pricing PricingServiceInterface,
	txns TransactionServiceInterface,
	gateway VNPayServiceInterface,
	mail IMailService,
) PaymentServiceInterface {
	s := &PaymentService{
		pricing: pricing,
		txns:    txns,
		gateway: gateway,
		mail:    mail,
	}
	// Closed set of payment method variants. A new method is a new handler
	// here, not another branch inside ProcessPayment.
	s.methods = map[db_models.PaymentMethod]methodHandler{
		db_models.MethodVNPay: &gatewayMethod{s},
		db_models.MethodCash:  &immediateMethod{s, "Cash payment recorded"},
		db_models.MethodQR:    &immediateMethod{s, "QR payment recorded"},
	}
	return s
}

type PaymentService struct {
	pricing PricingServiceInterface
	txns    TransactionServiceInterface
	gateway VNPayServiceInterface
	mail    IMailService
	methods map[db_models.PaymentMethod]methodHandler
}

// methodHandler initiates one payment attempt for a freshly created PENDING
// transaction: either settling it on the spot or producing a redirect URL.
type methodHandler interface {
	Initiate(ctx context.Context, txn *db_models.Transaction, breakdown *PriceBreakdown, returnURL string) (*response_models.PaymentResponse, error)
}

func (s *PaymentService) ProcessPayment(ctx context.Context, sessionID uuid.UUID, method string, returnURL string) (*response_models.PaymentResponse, error) {

	paymentMethod := db_models.PaymentMethod(method)
	handler, ok := s.methods[paymentMethod]
	if !ok {
		return nil, utils.ErrInvalidPaymentMethod
	}

	breakdown, err := s.pricing.GetBreakdown(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	txn, err := s.txns.CreateTransaction(ctx, sessionID, breakdown.Session.UserID, breakdown.Amount, paymentMethod)
	if err != nil {
		return nil, err
	}

	return handler.Initiate(ctx, txn, breakdown, returnURL)
}

func (s *PaymentService) QuoteAmount(ctx context.Context, sessionID uuid.UUID) (float64, error) {
	return s.pricing.CalculateAmount(ctx, sessionID)
}

func (s *PaymentService) HandleGatewayCallback(ctx context.Context, params map[string]string) (*response_models.PaymentResponse, error) {

	// Verification comes first; a bad signature leaves the transaction
	// untouched.
	if !s.gateway.VerifyCallback(params) {
		return nil, utils.ErrInvalidSignature
	}

	result, err := s.txns.ApplyGatewayResult(ctx, params["vnp_TxnRef"], params["vnp_ResponseCode"], params)
	if err != nil {
		return nil, err
	}

	if result.Applied && result.Transaction.Status == db_models.TxnStatusSuccess {
		s.deliverInvoice(ctx, result.Transaction)
	}

	return paymentResponse(result.Transaction, "", result.Message), nil
}

func (s *PaymentService) HandleGatewayIPN(ctx context.Context, params map[string]string) response_models.IPNResponse {

	if !s.gateway.VerifyCallback(params) {
		return response_models.IPNResponse{RspCode: "97", Message: "Invalid signature"}
	}

	result, err := s.txns.ApplyGatewayResult(ctx, params["vnp_TxnRef"], params["vnp_ResponseCode"], params)
	if err != nil {
		log.Printf("IPN processing failed for ref %q: %v", params["vnp_TxnRef"], err)
		return response_models.IPNResponse{RspCode: "99", Message: "Unknown error"}
	}

	if result.Applied && result.Transaction.Status == db_models.TxnStatusSuccess {
		s.deliverInvoice(ctx, result.Transaction)
	}

	return response_models.IPNResponse{RspCode: "00", Message: "Confirm Success"}
}

// deliverInvoice builds the invoice projection and mails it. Delivery
// failures are logged and never affect the transaction's terminal status.
func (s *PaymentService) deliverInvoice(ctx context.Context, txn *db_models.Transaction) {
	invoice, err := s.buildInvoice(ctx, txn)
	if err != nil {
		log.Printf("Failed to build invoice for transaction %s: %v", txn.ID, err)
		return
	}
	if err := s.mail.SendInvoiceEmail(invoice.UserEmail, *invoice); err != nil {
		log.Printf("Failed to send invoice email for transaction %s: %v", txn.ID, err)
	}
}

func (s *PaymentService) buildInvoice(ctx context.Context, txn *db_models.Transaction) (*response_models.Invoice, error) {

	breakdown, err := s.pricing.GetBreakdown(ctx, txn.SessionID)
	if err != nil {
		return nil, err
	}
	session := breakdown.Session

	fees := make([]response_models.FeeLine, 0, len(breakdown.Fees))
	for _, fee := range breakdown.Fees {
		fees = append(fees, response_models.FeeLine{Type: string(fee.Type), Amount: fee.Amount})
	}

	return &response_models.Invoice{
		TransactionID:        txn.ID,
		SessionID:            session.ID,
		UserName:             session.User.FullName,
		UserEmail:            session.User.Email,
		StationName:          session.ChargingPoint.Station.StationName,
		StationAddress:       session.ChargingPoint.Station.Address,
		StartTime:            utils.FormatDisplayVN(utils.FromUnixSecondsVN(session.StartTime)),
		EndTime:              utils.FormatDisplayVN(utils.FromUnixSecondsVN(session.EndTime)),
		PowerConsumed:        session.PowerConsumed,
		BasePrice:            breakdown.BasePrice,
		PriceFactor:          breakdown.Factor,
		SubscriptionDiscount: breakdown.Discount,
		Fees:                 fees,
		Subtotal:             breakdown.Subtotal,
		TotalAmount:          txn.Amount, // fixed at creation, never recomputed
		PaymentMethod:        string(txn.Method),
		PaymentDate:          utils.FormatDisplayVN(utils.FromUnixSecondsVN(utils.NowUnixSeconds())),
	}, nil
}

func paymentResponse(txn *db_models.Transaction, paymentURL, message string) *response_models.PaymentResponse {
	return &response_models.PaymentResponse{
		TransactionID: txn.ID,
		SessionID:     txn.SessionID,
		Amount:        txn.Amount,
		PaymentMethod: string(txn.Method),
		Status:        string(txn.Status),
		PaymentURL:    paymentURL,
		Message:       message,
	}
}

// gatewayMethod redirects the payer to VNPay; the transaction stays PENDING
// until the callback or IPN settles it.
type gatewayMethod struct {
	s *PaymentService
}

func (m *gatewayMethod) Initiate(ctx context.Context, txn *db_models.Transaction, breakdown *PriceBreakdown, returnURL string) (*response_models.PaymentResponse, error) {

	orderInfo := fmt.Sprintf("EV charging invoice - session %s", txn.SessionID)
	amount := int64(math.Round(breakdown.Amount))

	paymentURL, err := m.s.gateway.CreatePaymentURL(amount, orderInfo, txn.TxnRef, returnURL)
	if err != nil {
		return nil, err
	}

	return paymentResponse(txn, paymentURL, "Please complete the payment via VNPay"), nil
}

// immediateMethod settles cash-equivalent payments at creation time; there
// is no external confirmation step.
type immediateMethod struct {
	s       *PaymentService
	message string
}

func (m *immediateMethod) Initiate(ctx context.Context, txn *db_models.Transaction, breakdown *PriceBreakdown, returnURL string) (*response_models.PaymentResponse, error) {

	result, err := m.s.txns.SettleImmediately(ctx, txn.ID)
	if err != nil {
		return nil, err
	}

	if result.Applied && result.Transaction.Status == db_models.TxnStatusSuccess {
		m.s.deliverInvoice(ctx, result.Transaction)
	}

	return paymentResponse(result.Transaction, "", m.message), nil
}
