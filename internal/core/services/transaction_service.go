package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	portsrepo "github.com/sirisha-padi/EagleBank/internal/core/ports/repositories"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/dto"
	"github.com/sirisha-padi/EagleBank/internal/utils"
)

// maxTransactionIDAttempts caps the retry-until-unique loop for transaction
// ID generation. Exhausting it means the ID space is effectively saturated,
// which is a configuration fault rather than a caller error.
const maxTransactionIDAttempts = 5

// transactionService validates and applies monetary movements against
// accounts. The balance update and the ledger append are a single atomic
// unit delegated to the repository's locked write.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewTransactionService creates a new transaction processing service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, accountNumber string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := domain.ValidateKind(req.Type); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	// Ownership is asserted before any balance inspection so a non-owner
	// learns nothing about the account's funds.
	account, err := s.resolveOwnedAccount(ctx, ownerID, accountNumber)
	if err != nil {
		return nil, err
	}

	// Fast-path funds check. The authoritative check re-runs inside the
	// locked region; this one only avoids burning a transaction ID on a
	// request that cannot succeed.
	if req.Type == domain.Withdrawal && !account.HasSufficientBalance(req.Amount) {
		return nil, &apperrors.InsufficientBalanceError{Available: account.Balance, Requested: req.Amount}
	}

	transactionID, err := s.newTransactionID(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate transaction ID")
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: transactionID,
		AccountID:     account.AccountID,
		Amount:        req.Amount,
		Currency:      account.Currency,
		Kind:          req.Type,
		Reference:     req.Reference,
		CreatedAt:     time.Now().UTC(),
	}

	// The repository locks the account row, runs apply against the locked
	// state, and commits the balance update together with the ledger entry.
	// Both succeed or neither is observable.
	updated, err := s.txnRepo.SaveTransaction(ctx, txn, func(acc *domain.Account) error {
		if txn.Kind == domain.Deposit {
			return acc.Credit(txn.Amount)
		}
		return acc.Debit(txn.Amount)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) || errors.Is(err, apperrors.ErrBusinessRule) {
			s.LogDebug(ctx, "Transaction rejected", slog.String("account_number", accountNumber), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to save transaction", slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_number", accountNumber),
		slog.String("type", string(txn.Kind)),
		slog.String("balance", utils.FormatAmount(updated.Balance)))
	return &txn, nil
}

func (s *transactionService) GetTransactionHistory(ctx context.Context, ownerID string, accountNumber string) ([]domain.Transaction, error) {
	account, err := s.resolveOwnedAccount(ctx, ownerID, accountNumber)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_number", accountNumber))
		return nil, fmt.Errorf("failed to retrieve transactions for account %s: %w", accountNumber, err)
	}

	if txns == nil {
		txns = []domain.Transaction{}
	}

	s.LogDebug(ctx, "Transaction history retrieved", slog.String("account_number", accountNumber), slog.Int("count", len(txns)))
	return txns, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, ownerID string, accountNumber string, transactionID string) (*domain.Transaction, error) {
	account, err := s.resolveOwnedAccount(ctx, ownerID, accountNumber)
	if err != nil {
		return nil, err
	}

	// The lookup joins the ownership check so a transaction ID belonging to
	// another owner is indistinguishable from an absent one.
	txn, err := s.txnRepo.FindTransactionForOwner(ctx, transactionID, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	// The transaction must also belong to the referenced account.
	if txn.AccountID != account.AccountID {
		s.LogDebug(ctx, "Transaction belongs to a different account", slog.String("transaction_id", transactionID))
		return nil, apperrors.ErrNotFound
	}

	return txn, nil
}

// newTransactionID retries candidate generation until the store reports the
// ID unused, up to maxTransactionIDAttempts.
func (s *transactionService) newTransactionID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxTransactionIDAttempts; attempt++ {
		candidate, err := utils.GenerateTransactionID()
		if err != nil {
			return "", apperrors.NewAppError(500, "failed to generate transaction ID candidate", err)
		}

		exists, err := s.txnRepo.TransactionIDExists(ctx, candidate)
		if err != nil {
			return "", apperrors.NewAppError(500, "failed to check transaction ID uniqueness", err)
		}
		if !exists {
			return candidate, nil
		}

		s.LogDebug(ctx, "Transaction ID collision, retrying", slog.String("candidate", candidate), slog.Int("attempt", attempt+1))
	}
	return "", apperrors.NewAppError(500, fmt.Sprintf("transaction ID generation exhausted after %d attempts", maxTransactionIDAttempts), nil)
}

// resolveOwnedAccount parses an external account number, loads the account
// and asserts the caller's ownership.
func (s *transactionService) resolveOwnedAccount(ctx context.Context, ownerID string, accountNumber string) (*domain.Account, error) {
	accountID, err := domain.ParseAccountNumber(accountNumber)
	if err != nil {
		s.LogDebug(ctx, "Malformed account number", slog.String("account_number", accountNumber))
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountNumber)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	if err := s.AssertOwnership(ownerID, account.OwnerID); err != nil {
		s.LogDebug(ctx, "Caller is not the account owner", slog.String("account_number", accountNumber), slog.String("caller_id", ownerID))
		return nil, err
	}

	return account, nil
}
