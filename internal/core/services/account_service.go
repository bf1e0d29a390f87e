package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	portsrepo "github.com/sirisha-padi/EagleBank/internal/core/ports/repositories"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/dto"
	"github.com/sirisha-padi/EagleBank/internal/utils"
)

// accountService manages the account lifecycle: open, inspect, patch, close.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionReader
	userRepo    portsrepo.UserReader
}

// NewAccountService creates a new account lifecycle service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionReader, userRepo portsrepo.UserReader) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		userRepo:    userRepo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) OpenAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	// The owner must resolve to a live holder before an account is issued.
	if _, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, ownerID)
		}
		s.LogError(ctx, err, "Failed to resolve owner for account open", slog.String("owner_id", ownerID))
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		OwnerID:     ownerID,
		Name:        req.Name,
		AccountType: req.AccountType,
		Currency:    domain.CurrencyGBP,
		SortCode:    domain.SortCode,
		Balance:     decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Account opened", slog.String("account_number", created.Number()), slog.String("owner_id", ownerID))
	return created, nil
}

func (s *accountService) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list accounts for owner %s: %w", ownerID, err)
	}

	if accounts == nil {
		accounts = []domain.Account{}
	}

	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)), slog.String("owner_id", ownerID))
	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, ownerID string, accountNumber string) (*domain.Account, error) {
	return s.resolveOwnedAccount(ctx, ownerID, accountNumber)
}

func (s *accountService) UpdateAccount(ctx context.Context, ownerID string, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.resolveOwnedAccount(ctx, ownerID, accountNumber)
	if err != nil {
		return nil, err
	}

	// Partial-update semantics: only provided fields change.
	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update", slog.String("account_number", accountNumber))
		return account, nil
	}

	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_number", accountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_number", accountNumber))
	return account, nil
}

func (s *accountService) CloseAccount(ctx context.Context, ownerID string, accountNumber string) error {
	account, err := s.resolveOwnedAccount(ctx, ownerID, accountNumber)
	if err != nil {
		return err
	}

	// Closure requires both an empty ledger history and an exactly-zero
	// balance; the failed condition is named so the caller can act on it.
	count, err := s.txnRepo.CountTransactionsByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions for closure check", slog.String("account_number", accountNumber))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: cannot close account with existing transactions", apperrors.ErrBusinessRule)
	}
	if !account.Balance.IsZero() {
		return fmt.Errorf("%w: cannot close account with non-zero balance of %s", apperrors.ErrBusinessRule, utils.FormatGBP(account.Balance))
	}

	if err := s.accountRepo.DeleteAccount(ctx, account.AccountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_number", accountNumber))
		return err
	}

	s.LogInfo(ctx, "Account closed", slog.String("account_number", accountNumber), slog.String("owner_id", ownerID))
	return nil
}

// resolveOwnedAccount parses an external account number, loads the account and
// asserts the caller's ownership. A malformed reference is reported as
// not-found rather than a validation failure so it cannot probe the number
// space.
func (s *accountService) resolveOwnedAccount(ctx context.Context, ownerID string, accountNumber string) (*domain.Account, error) {
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
