package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	portsrepo "github.com/sirisha-padi/EagleBank/internal/core/ports/repositories"
	"github.com/sirisha-padi/EagleBank/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, amount, currency, kind, reference, created_at`

// Helper to convert models.Transaction from DB to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Kind:          domain.TransactionKind(m.Kind),
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
	}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Amount,
		&m.Currency,
		&m.Kind,
		&m.Reference,
		&m.CreatedAt,
	)
	return m, err
}

// SaveTransaction appends a ledger entry and updates the account balance
// inside one database transaction. The account row is locked with
// SELECT ... FOR UPDATE, apply mutates the locked state, and the balance
// update plus the ledger insert commit together.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, apply func(account *domain.Account) error) (*domain.Account, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE;
	`
	m, err := scanAccount(tx.QueryRow(ctx, lockQuery, txn.AccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %d: %w", txn.AccountID, err)
	}
	account := toDomainAccount(m)

	// The funds and ceiling checks run here, against the locked balance, so
	// concurrent writers serialize on the row and cannot both pass.
	if err := apply(&account); err != nil {
		return nil, err
	}
	account.UpdatedAt = txn.CreatedAt

	balanceQuery := `
		UPDATE accounts
		SET balance = $2, updated_at = $3
		WHERE account_id = $1;
	`
	if _, err := tx.Exec(ctx, balanceQuery, account.AccountID, account.Balance, account.UpdatedAt); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update balance for account %d", account.AccountID), err)
	}

	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, insertQuery,
		txn.TransactionID,
		txn.AccountID,
		txn.Amount,
		txn.Currency,
		string(txn.Kind),
		txn.Reference,
		txn.CreatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: transaction ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &account, nil
}

// ListTransactionsByAccount retrieves all ledger entries for an account,
// newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %d: %w", accountID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for account %d: %w", accountID, err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for account %d: %w", accountID, rows.Err())
	}

	return txns, nil
}

// FindTransactionForOwner retrieves a transaction only when its account is
// owned by ownerID. The ownership join keeps foreign transaction IDs
// indistinguishable from absent ones.
func (r *PgxTransactionRepository) FindTransactionForOwner(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.account_id, t.amount, t.currency, t.kind, t.reference, t.created_at
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE t.transaction_id = $1 AND a.owner_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// TransactionIDExists reports whether a transaction ID is already in use.
func (r *PgxTransactionRepository) TransactionIDExists(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM transactions WHERE transaction_id = $1);`, transactionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction ID %s: %w", transactionID, err)
	}
	return exists, nil
}

// CountTransactionsByAccount returns the number of ledger entries recorded
// against an account.
func (r *PgxTransactionRepository) CountTransactionsByAccount(ctx context.Context, accountID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE account_id = $1;`, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for account %d: %w", accountID, err)
	}
	return count, nil
}
