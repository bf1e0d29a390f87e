package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
)

func TestFormatAccountNumber(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		want      string
	}{
		{name: "first account", accountID: 1, want: "01000001"},
		{name: "mid-range account", accountID: 123456, want: "01123456"},
		{name: "wider than pad width", accountID: 12345678, want: "0112345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatAccountNumber(tt.accountID))
		})
	}
}

func TestParseAccountNumber_RoundTrip(t *testing.T) {
	for _, id := range []int64{1, 42, 999999, 1000000, 98765432} {
		number := domain.FormatAccountNumber(id)
		parsed, err := domain.ParseAccountNumber(number)
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestParseAccountNumber_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{name: "empty", number: ""},
		{name: "too short", number: "0100001"},
		{name: "wrong prefix", number: "02000001"},
		{name: "non-numeric suffix", number: "01abc001"},
		{name: "zero id", number: "01000000"},
		{name: "negative id", number: "01-00001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseAccountNumber(tt.number)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestAccount_Credit(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromInt(100)}

	err := acc.Credit(decimal.NewFromFloat(49.50))
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromFloat(149.50)))
}

func TestAccount_Credit_RejectsNonPositive(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromInt(100)}

	err := acc.Credit(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = acc.Credit(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(100)))
}

func TestAccount_Credit_RejectsExceedingCeiling(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromFloat(9999.99)}

	err := acc.Credit(decimal.NewFromFloat(0.02))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBusinessRule)
	assert.True(t, acc.Balance.Equal(decimal.NewFromFloat(9999.99)))

	// Landing exactly on the ceiling is allowed.
	err = acc.Credit(decimal.NewFromFloat(0.01))
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(10000)))
}

func TestAccount_Debit(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromInt(100)}

	err := acc.Debit(decimal.NewFromFloat(99.99))
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.NewFromFloat(0.01)))
}

func TestAccount_Debit_ToExactlyZero(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromFloat(55.55)}

	err := acc.Debit(decimal.NewFromFloat(55.55))
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())
}

func TestAccount_Debit_InsufficientBalance(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromInt(10)}

	err := acc.Debit(decimal.NewFromFloat(10.01))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	var insufficientErr *apperrors.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficientErr)
	assert.True(t, insufficientErr.Available.Equal(decimal.NewFromInt(10)))
	assert.True(t, insufficientErr.Requested.Equal(decimal.NewFromFloat(10.01)))

	// Balance unchanged on rejection.
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(10)))
}

func TestAccount_Debit_RejectsNonPositive(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromInt(10)}

	err := acc.Debit(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccount_HasSufficientBalance(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromInt(50)}

	assert.True(t, acc.HasSufficientBalance(decimal.NewFromInt(50)))
	assert.True(t, acc.HasSufficientBalance(decimal.NewFromFloat(49.99)))
	assert.False(t, acc.HasSufficientBalance(decimal.NewFromFloat(50.01)))
}
