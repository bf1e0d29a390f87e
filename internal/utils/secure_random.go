package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	// TransactionIDPrefix is the fixed prefix of every ledger entry ID.
	TransactionIDPrefix = "tan-"

	transactionIDSuffixLen = 6
	transactionIDCharset   = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateTransactionID produces a candidate transaction ID in the
// "tan-" + 6 alphanumeric characters format from a high-entropy source.
// Uniqueness against the store is the caller's responsibility.
func GenerateTransactionID() (string, error) {
	b := make([]byte, transactionIDSuffixLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = transactionIDCharset[int(b[i])%len(transactionIDCharset)]
	}
	return TransactionIDPrefix + string(b), nil
}
