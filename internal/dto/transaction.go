package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a deposit or
// withdrawal. Amount bounds are re-validated in the service; binding only
// rejects structurally invalid requests.
type CreateTransactionRequest struct {
	Amount    decimal.Decimal        `json:"amount" binding:"required,positive_decimal"`
	Currency  string                 `json:"currency" binding:"required,oneof=GBP"`
	Type      domain.TransactionKind `json:"type" binding:"required,oneof=deposit withdrawal"`
	Reference string                 `json:"reference"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID               string                 `json:"id"`
	Amount           decimal.Decimal        `json:"amount"`
	Currency         string                 `json:"currency"`
	Type             domain.TransactionKind `json:"type"`
	Reference        string                 `json:"reference,omitempty"`
	UserID           string                 `json:"userId"`
	CreatedTimestamp time.Time              `json:"createdTimestamp"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction, userID string) TransactionResponse {
	return TransactionResponse{
		ID:               txn.TransactionID,
		Amount:           txn.Amount,
		Currency:         txn.Currency,
		Type:             txn.Kind,
		Reference:        txn.Reference,
		UserID:           userID,
		CreatedTimestamp: txn.CreatedAt,
	}
}

// ListTransactionsResponse wraps the transaction history of an account.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts domain transactions to the list DTO.
func ToListTransactionsResponse(txns []domain.Transaction, userID string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i], userID)
	}
	return ListTransactionsResponse{Transactions: res}
}
