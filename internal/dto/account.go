package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=personal"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish fields not provided from zero-value updates.
type UpdateAccountRequest struct {
	Name        *string             `json:"name"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=personal"`
}

// AccountResponse defines the data returned for an account. The account
// number is the derived external form, never the internal sequence ID.
type AccountResponse struct {
	AccountNumber    string             `json:"accountNumber"`
	SortCode         string             `json:"sortCode"`
	Name             string             `json:"name"`
	AccountType      domain.AccountType `json:"accountType"`
	Balance          decimal.Decimal    `json:"balance"`
	Currency         string             `json:"currency"`
	CreatedTimestamp time.Time          `json:"createdTimestamp"`
	UpdatedTimestamp time.Time          `json:"updatedTimestamp"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber:    acc.Number(),
		SortCode:         acc.SortCode,
		Name:             acc.Name,
		AccountType:      acc.AccountType,
		Balance:          acc.Balance,
		Currency:         acc.Currency,
		CreatedTimestamp: acc.CreatedAt,
		UpdatedTimestamp: acc.UpdatedAt,
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
