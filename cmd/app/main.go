package main

import (
	"context"
	"log"
	"os"

	"evcharge/cmd/fx/db_fx"
	"evcharge/cmd/fx/mail_fx"
	"evcharge/cmd/fx/memcache_fx"
	"evcharge/cmd/fx/payment_fx"
	"evcharge/cmd/fx/session_fx"
	"evcharge/cmd/fx/station_fx"
	"evcharge/cmd/fx/user_fx"
	"evcharge/cmd/fx/vehicle_fx"
	"evcharge/internal/api/controllers"
	"evcharge/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		user_fx.Module,
		station_fx.Module,
		vehicle_fx.Module,
		session_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	stationController *controllers.StationController,
	vehicleController *controllers.VehicleController,
	sessionController *controllers.SessionController,
	transactionController *controllers.TransactionController,
	paymentController *controllers.PaymentController,
	vnpayController *controllers.VNPayController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		userController,
		stationController,
		vehicleController,
		sessionController,
		transactionController,
		paymentController,
		vnpayController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	stationController *controllers.StationController,
	vehicleController *controllers.VehicleController,
	sessionController *controllers.SessionController,
	transactionController *controllers.TransactionController,
	paymentController *controllers.PaymentController,
	vnpayController *controllers.VNPayController) {

	users := r.Group("/api/users")
	users.POST("/register", userController.Register)
	users.POST("/login", userController.Login)

	profile := users.Group("")
	profile.Use(middleware.JWTAuthMiddleware())
	profile.GET("/me", userController.GetProfile)
	profile.PUT("/me", userController.UpdateProfile)
	profile.POST("/me/email-change", userController.RequestEmailChange)
	profile.POST("/me/email-change/confirm", userController.ConfirmEmailChange)

	stations := r.Group("/api/stations")
	stations.GET("", stationController.ListStations)
	stations.GET("/:id", stationController.GetStation)

	stationAdmin := stations.Group("")
	stationAdmin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	stationAdmin.POST("", stationController.CreateStation)
	stationAdmin.PUT("/:id", stationController.UpdateStation)
	stationAdmin.DELETE("/:id", stationController.DeleteStation)
	stationAdmin.POST("/:id/points", stationController.AddChargingPoint)
	stationAdmin.PUT("/:id/points/:pointId", stationController.UpdateChargingPoint)

	vehicles := r.Group("/api/vehicles")
	vehicles.Use(middleware.JWTAuthMiddleware())
	vehicles.POST("", vehicleController.CreateVehicle)
	vehicles.GET("", vehicleController.ListVehicles)
	vehicles.GET("/:id", vehicleController.GetVehicle)
	vehicles.PUT("/:id", vehicleController.UpdateVehicle)
	vehicles.DELETE("/:id", vehicleController.DeleteVehicle)

	sessions := r.Group("/api/sessions")
	sessions.Use(middleware.JWTAuthMiddleware())
	sessions.GET("", sessionController.ListMySessions)
	sessions.GET("/:id", sessionController.GetSession)
	sessions.GET("/:id/transactions", transactionController.ListSessionTransactions)

	transactions := r.Group("/api/transactions")
	transactions.Use(middleware.JWTAuthMiddleware())
	transactions.GET("", transactionController.ListMyTransactions)
	transactions.GET("/:id", transactionController.GetTransaction)

	payment := r.Group("/api/payment")
	payment.GET("/vnpay/callback", vnpayController.HandleCallback)
	payment.POST("/vnpay/ipn", vnpayController.HandleIPN)

	paymentAuth := payment.Group("")
	paymentAuth.Use(middleware.JWTAuthMiddleware())
	paymentAuth.POST("", paymentController.ProcessPayment)
	paymentAuth.GET("/amount/:sessionId", paymentController.QuoteAmount)
}
