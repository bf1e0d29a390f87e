package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found, or that
// a reference resolved to a resource whose existence must not be disclosed.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the resource exists but the caller is not its owner.
var ErrForbidden = errors.New("access denied")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates a withdrawal exceeding the available funds.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrBusinessRule indicates an operation blocked by a business rule, such as
// closing an account that still holds funds or transaction history.
var ErrBusinessRule = errors.New("business rule violation")

// AppError wraps unanticipated internal faults so the boundary layer can map
// them to a generic failure without leaking internals.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// InsufficientBalanceError carries the balances involved in a rejected
// withdrawal for diagnostics. Unwraps to ErrInsufficientBalance so handlers
// can dispatch on the sentinel without exposing account internals.
type InsufficientBalanceError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s, requested %s", e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
