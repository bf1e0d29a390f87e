package services

import (
	"context"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	"github.com/sirisha-padi/EagleBank/internal/dto"
)

// TransactionSvcFacade defines the ledger operations exposed to the request layer
type TransactionSvcFacade interface {
	// CreateTransaction validates and applies a single deposit or withdrawal
	// against an owned account, atomically updating the balance and appending
	// the ledger entry.
	CreateTransaction(ctx context.Context, ownerID string, accountNumber string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransactionHistory returns all transactions for an owned account,
	// newest first.
	GetTransactionHistory(ctx context.Context, ownerID string, accountNumber string) ([]domain.Transaction, error)

	// GetTransaction returns a single transaction. Ownership mismatch on the
	// transaction ID is ErrNotFound, never ErrForbidden.
	GetTransaction(ctx context.Context, ownerID string, accountNumber string, transactionID string) (*domain.Transaction, error)
}
