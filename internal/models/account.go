package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the persistence shape of a customer account. The internal
// account_id is a BIGSERIAL; the customer-facing account number is derived
// from it, not stored.
type Account struct {
	AccountID   int64           `db:"account_id"`
	OwnerID     string          `db:"owner_id"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	Currency    string          `db:"currency"`
	SortCode    string          `db:"sort_code"`
	Balance     decimal.Decimal `db:"balance"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
