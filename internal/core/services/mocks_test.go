package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
	FindAccountByIDFn     func(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccountsByOwnerFn func(ctx context.Context, ownerID string) ([]domain.Account, error)
	CreateAccountFn       func(ctx context.Context, account domain.Account) (*domain.Account, error)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	if m.FindAccountByIDFn != nil {
		return m.FindAccountByIDFn(ctx, accountID)
	}
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	if m.ListAccountsByOwnerFn != nil {
		return m.ListAccountsByOwnerFn(ctx, ownerID)
	}
	args := m.Called(ctx, ownerID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) CountAccountsByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, account)
	}
	args := m.Called(ctx, account)
	var created *domain.Account
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Account)
	}
	return created, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

// MockTransactionRepository emulates the locked write path: SaveTransactionFn
// lets a test run the apply callback against a controlled account state the
// way the real repository runs it against the locked row.
type MockTransactionRepository struct {
	mock.Mock
	SaveTransactionFn func(ctx context.Context, txn domain.Transaction, apply func(account *domain.Account) error) (*domain.Account, error)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, apply func(account *domain.Account) error) (*domain.Account, error) {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn, apply)
	}
	args := m.Called(ctx, txn, apply)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionForOwner(ctx context.Context, transactionID string, ownerID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, ownerID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) TransactionIDExists(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactionsByAccount(ctx context.Context, accountID int64) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn    func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, now time.Time) error {
	args := m.Called(ctx, userID, now)
	return args.Error(0)
}
