package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	portsrepo "github.com/sirisha-padi/EagleBank/internal/core/ports/repositories"
	"github.com/sirisha-padi/EagleBank/internal/models"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, owner_id, name, account_type, currency, sort_code, balance, created_at, updated_at`

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Currency:    m.Currency,
		SortCode:    m.SortCode,
		Balance:     m.Balance,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OwnerID,
		&m.Name,
		&m.AccountType,
		&m.Currency,
		&m.SortCode,
		&m.Balance,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// CreateAccount inserts a new account. The account_id sequence assigns the
// identity from which the customer-facing number is derived, so the stored
// row is returned to the caller.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (owner_id, name, account_type, currency, sort_code, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + accountColumns + `;
	`
	m, err := scanAccount(r.pool.QueryRow(ctx, query,
		account.OwnerID,
		account.Name,
		account.AccountType,
		account.Currency,
		account.SortCode,
		account.Balance,
		account.CreatedAt,
		account.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create account for owner %s: %w", account.OwnerID, err)
	}

	created := toDomainAccount(m)
	return &created, nil
}

// FindAccountByID retrieves an account by its internal sequence ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1;
	`
	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}

	domainAcc := toDomainAccount(m)
	return &domainAcc, nil
}

// ListAccountsByOwner retrieves all accounts owned by a user, newest first.
func (r *PgxAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at DESC, account_id DESC;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for owner %s: %w", ownerID, err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for owner %s: %w", ownerID, rows.Err())
	}

	return accounts, nil
}

// CountAccountsByOwner returns the number of accounts owned by a user.
func (r *PgxAccountRepository) CountAccountsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE owner_id = $1;`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts for owner %s: %w", ownerID, err)
	}
	return count, nil
}

// UpdateAccount updates an existing account's mutable metadata.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, account_type = $3, updated_at = $4
		WHERE account_id = $1;
	`
	// Balance is deliberately not settable here; it only moves through the
	// locked transaction write path.
	cmdTag, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.AccountType,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %d: %w", account.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account row. The service layer enforces the
// closure invariant before calling this.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
