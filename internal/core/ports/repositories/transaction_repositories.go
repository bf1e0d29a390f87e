package repositories

import (
	"context"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
)

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// ListTransactionsByAccount retrieves all ledger entries for an account,
	// newest first.
	ListTransactionsByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error)

	// FindTransactionForOwner retrieves a transaction only if it belongs to an
	// account owned by ownerID; any other case is ErrNotFound so existence of
	// another owner's transaction IDs is never confirmed.
	FindTransactionForOwner(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error)

	// TransactionIDExists reports whether a transaction ID is already in use.
	TransactionIDExists(ctx context.Context, transactionID string) (bool, error)

	// CountTransactionsByAccount returns the number of ledger entries recorded
	// against an account.
	CountTransactionsByAccount(ctx context.Context, accountID int64) (int64, error)
}

// TransactionWriter defines the atomic write operation for ledger entries
type TransactionWriter interface {
	// SaveTransaction appends a ledger entry and updates the owning account's
	// balance as one atomic unit. The account row is locked for the duration;
	// apply runs against the locked account state and performs the balance
	// mutation (including the funds check for withdrawals), so two racing
	// withdrawals can never both pass. If apply fails nothing is persisted.
	// On success the updated account is returned.
	SaveTransaction(ctx context.Context, txn domain.Transaction, apply func(account *domain.Account) error) (*domain.Account, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
