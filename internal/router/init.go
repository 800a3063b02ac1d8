package router

import (
	userapp "identity-service/internal/application"
	"identity-service/internal/container"
	repouser "identity-service/internal/domain/repository"
	"identity-service/internal/infrastructure/memory"
	pginfra "identity-service/internal/infrastructure/postgres"
	handlers "identity-service/internal/interface/http"
	"identity-service/internal/router/modules"
)

func buildService() *userapp.Service {
	var repo repouser.UsersRepository
	if pool := container.GetPGPool(); pool != nil {
		repo = pginfra.NewUsersRepository(pool)
	} else {
		// local fallback, mainly for development without a database
		repo = memory.NewUsersRepository()
	}

	return userapp.NewService(
		repo,
		container.GetHasher(),
		container.GetJWT(),
		container.GetLogger(),
		container.GetRabbitPub(),
		container.GetConfig().AppName,
	)
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	svc := buildService()

	authHandler := handlers.NewAuthHandler(svc, container.GetLogger())
	userHandler := handlers.NewUserHandler(svc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewHealthModule())
}
