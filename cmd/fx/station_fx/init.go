package station_fx

import (
	"evcharge/internal/api/controllers"
	"evcharge/internal/repositories"
	"evcharge/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideStationService, provideStationController)

func provideStationService(db *gorm.DB) services.StationServiceInterface {
	return services.NewStationService(repositories.NewStationRepository(db))
}

func provideStationController(stationService services.StationServiceInterface) *controllers.StationController {
	return controllers.NewStationController(stationService)
}
