package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
)

// TransactionKind indicates whether a transaction credits or debits an account.
type TransactionKind string

const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
)

// Transaction is a single immutable ledger entry against one account.
// Entries are append-only; nothing mutates or deletes them once recorded.
type Transaction struct {
	TransactionID string          `json:"id"`
	AccountID     int64           `json:"-"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Kind          TransactionKind `json:"type"`
	Reference     string          `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ValidateAmount checks a requested transaction amount against the monetary
// bounds: strictly positive, at most two fractional digits, no more than
// MaxBalance.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(MaxBalance) {
		return fmt.Errorf("%w: amount cannot exceed %s", apperrors.ErrValidation, MaxBalance.StringFixed(2))
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount cannot have more than two decimal places", apperrors.ErrValidation)
	}
	return nil
}

// ValidateKind checks a requested transaction kind.
func ValidateKind(kind TransactionKind) error {
	switch kind {
	case Deposit, Withdrawal:
		return nil
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, kind)
	}
}
