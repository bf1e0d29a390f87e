package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
)

// AccountType defines the kind of bank account. Only personal accounts are
// supported.
type AccountType string

const (
	AccountTypePersonal AccountType = "personal"
)

const (
	// SortCode is fixed for every account the bank issues.
	SortCode = "10-10-10"

	// CurrencyGBP is the only supported currency.
	CurrencyGBP = "GBP"

	// accountNumberPrefix is the two-digit scheme prefix of the external
	// account number.
	accountNumberPrefix = "01"
)

// MaxBalance is the ceiling on any account balance and on any single
// transaction amount.
var MaxBalance = decimal.NewFromInt(10000)

// Account represents a bank account within the core domain.
// AccountID is the store-assigned internal sequence number; the external
// account number is always derived from it via FormatAccountNumber and is
// never persisted independently.
type Account struct {
	AccountID   int64           `json:"-"`
	OwnerID     string          `json:"ownerID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Currency    string          `json:"currency"`
	SortCode    string          `json:"sortCode"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Number returns the external account number for this account.
func (a *Account) Number() string {
	return FormatAccountNumber(a.AccountID)
}

// FormatAccountNumber renders an internal account ID in the external
// "01" + zero-padded format, e.g. 1 -> "01000001".
func FormatAccountNumber(accountID int64) string {
	return fmt.Sprintf("%s%06d", accountNumberPrefix, accountID)
}

// ParseAccountNumber resolves an external account number back to the internal
// account ID. Malformed input returns ErrValidation; callers that treat a bad
// reference as an absent resource map it to ErrNotFound.
func ParseAccountNumber(number string) (int64, error) {
	if len(number) < 8 || !strings.HasPrefix(number, accountNumberPrefix) {
		return 0, fmt.Errorf("%w: malformed account number %q", apperrors.ErrValidation, number)
	}
	id, err := strconv.ParseInt(number[len(accountNumberPrefix):], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: malformed account number %q", apperrors.ErrValidation, number)
	}
	return id, nil
}

// Credit adds amount to the balance. The amount must be positive and the
// resulting balance must not exceed MaxBalance.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: credit amount must be positive", apperrors.ErrValidation)
	}
	next := a.Balance.Add(amount)
	if next.GreaterThan(MaxBalance) {
		return fmt.Errorf("%w: balance cannot exceed %s", apperrors.ErrBusinessRule, MaxBalance.StringFixed(2))
	}
	a.Balance = next
	return nil
}

// Debit subtracts amount from the balance. The amount must be positive and
// covered by the current balance.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: debit amount must be positive", apperrors.ErrValidation)
	}
	if !a.HasSufficientBalance(amount) {
		return &apperrors.InsufficientBalanceError{Available: a.Balance, Requested: amount}
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// HasSufficientBalance reports whether the balance covers a withdrawal of amount.
func (a *Account) HasSufficientBalance(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
