package vehicle_fx

import (
	"evcharge/internal/api/controllers"
	"evcharge/internal/repositories"
	"evcharge/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideVehicleService, provideVehicleController)

func provideVehicleService(db *gorm.DB) services.VehicleServiceInterface {
	return services.NewVehicleService(repositories.NewVehicleRepository(db))
}

func provideVehicleController(vehicleService services.VehicleServiceInterface) *controllers.VehicleController {
	return controllers.NewVehicleController(vehicleService)
}
