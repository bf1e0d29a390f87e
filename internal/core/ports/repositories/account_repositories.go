package repositories

import (
	"context"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its internal sequence ID.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccountsByOwner retrieves all accounts owned by a user, newest first.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)

	// CountAccountsByOwner returns the number of accounts owned by a user.
	CountAccountsByOwner(ctx context.Context, ownerID string) (int64, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// CreateAccount persists a new account. The store assigns the internal
	// sequence ID and the returned account carries it.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates an existing account's metadata and timestamps.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account record. Callers must have verified the
	// closure invariant (zero balance, no transaction history) first.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
