package session_fx

import (
	"evcharge/internal/api/controllers"
	"evcharge/internal/repositories"
	"evcharge/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideSessionService, provideSessionController)

func provideSessionService(db *gorm.DB) services.SessionServiceInterface {
	return services.NewSessionService(repositories.NewSessionRepository(db))
}

func provideSessionController(sessionService services.SessionServiceInterface) *controllers.SessionController {
	return controllers.NewSessionController(sessionService)
}
