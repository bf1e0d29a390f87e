package services

import (
	"context"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	"github.com/sirisha-padi/EagleBank/internal/dto"
)

// AccountReaderSvc defines ownership-checked read operations for accounts
type AccountReaderSvc interface {
	// ListAccounts retrieves all accounts owned by ownerID, newest first.
	ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error)

	// GetAccount resolves an external account number and returns the account
	// if ownerID owns it.
	GetAccount(ctx context.Context, ownerID string, accountNumber string) (*domain.Account, error)
}

// AccountWriterSvc defines lifecycle operations for accounts
type AccountWriterSvc interface {
	// OpenAccount creates a new account with a zero balance for ownerID.
	OpenAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount applies a partial metadata patch to an owned account.
	UpdateAccount(ctx context.Context, ownerID string, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// CloseAccount hard-deletes an owned account. Fails with ErrBusinessRule
	// while the account holds a balance or transaction history.
	CloseAccount(ctx context.Context, ownerID string, accountNumber string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
