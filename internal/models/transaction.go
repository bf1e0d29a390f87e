package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence shape of a ledger entry. Rows are append
// only; there is no update path.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	AccountID     int64           `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Kind          string          `db:"kind"`
	Reference     string          `db:"reference"`
	CreatedAt     time.Time       `db:"created_at"`
}
