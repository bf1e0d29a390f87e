package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirisha-padi/EagleBank/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, utils.CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, utils.CheckPasswordHash("hunter2hunter3", hash))
	assert.False(t, utils.CheckPasswordHash("hunter2hunter2", "not-a-bcrypt-hash"))
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	secret := "unit-test-secret"

	token, err := utils.GenerateJWT("usr-42", secret, time.Hour, "eagle-bank")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "usr-42", claims.Subject)
	assert.Equal(t, "eagle-bank", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseAndValidateJWT_RejectsTamperedToken(t *testing.T) {
	secret := "unit-test-secret"

	token, err := utils.GenerateJWT("usr-42", secret, time.Hour, "eagle-bank")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT(token+"x", secret)
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT("not.a.token", secret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_RejectsExpiredToken(t *testing.T) {
	secret := "unit-test-secret"

	token, err := utils.GenerateJWT("usr-42", secret, -time.Minute, "eagle-bank")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, secret)
	assert.Error(t, err)
}

func TestGenerateTransactionID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := utils.GenerateTransactionID()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(id, utils.TransactionIDPrefix))
		assert.Len(t, id, len(utils.TransactionIDPrefix)+6)
		for _, r := range strings.TrimPrefix(id, utils.TransactionIDPrefix) {
			assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "unexpected character %q in %s", r, id)
		}
		seen[id] = true
	}
	// 100 draws from a 36^6 space colliding would point at a broken source.
	assert.Greater(t, len(seen), 95)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12.30", utils.FormatAmount(decimal.NewFromFloat(12.3)))
	assert.Equal(t, "0.00", utils.FormatAmount(decimal.Zero))
	assert.Equal(t, "10000.00", utils.FormatAmount(decimal.NewFromInt(10000)))
	assert.Equal(t, "1.01", utils.FormatAmount(decimal.RequireFromString("1.01")))
}

func TestFormatGBP(t *testing.T) {
	assert.Equal(t, "£25.50", utils.FormatGBP(decimal.NewFromFloat(25.5)))
}
