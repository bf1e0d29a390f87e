package services

import (
	portsrepo "github.com/sirisha-padi/EagleBank/internal/core/ports/repositories"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.AccountRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo, repos.UserRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)
	container.Auth = NewAuthService(repos.UserRepo, AuthConfig{
		JWTSecret:         cfg.JWTSecret,
		JWTExpiryDuration: cfg.JWTExpiryDuration,
		JWTIssuer:         cfg.JWTIssuer,
	})

	return container
}
