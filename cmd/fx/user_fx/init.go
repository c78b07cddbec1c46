package user_fx

import (
	"evcharge/internal/api/controllers"
	"evcharge/internal/repositories"
	"evcharge/internal/services"
	mem "evcharge/pkg/memcache"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideUserService, provideUserController)

func provideUserService(db *gorm.DB, codes mem.VerificationCodeStore, mail services.IMailService) services.UserServiceInterface {
	return services.NewUserService(repositories.NewUserRepository(db), codes, mail)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
