package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/core/services"
	"github.com/sirisha-padi/EagleBank/internal/dto"
	"github.com/sirisha-padi/EagleBank/internal/utils"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo)
}

// applyAgainst wires SaveTransactionFn to run the apply callback against a
// copy of the given locked-state account, mirroring the real repository.
func (suite *TransactionServiceTestSuite) applyAgainst(locked domain.Account) {
	suite.mockTxnRepo.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, apply func(account *domain.Account) error) (*domain.Account, error) {
		acc := locked
		if err := apply(&acc); err != nil {
			return nil, err
		}
		return &acc, nil
	}
}

// --- CreateTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DepositSuccess() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(100)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("TransactionIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.applyAgainst(*account)

	req := dto.CreateTransactionRequest{
		Amount:    decimal.NewFromFloat(25.50),
		Currency:  domain.CurrencyGBP,
		Type:      domain.Deposit,
		Reference: "salary",
	}

	txn, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(strings.HasPrefix(txn.TransactionID, utils.TransactionIDPrefix))
	suite.Len(txn.TransactionID, len(utils.TransactionIDPrefix)+6)
	suite.Equal(int64(5), txn.AccountID)
	suite.Equal(domain.Deposit, txn.Kind)
	suite.Equal(domain.CurrencyGBP, txn.Currency)
	suite.Equal("salary", txn.Reference)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_WithdrawalSuccess() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(100)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("TransactionIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	var appliedBalance decimal.Decimal
	suite.mockTxnRepo.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, apply func(account *domain.Account) error) (*domain.Account, error) {
		acc := *account
		if err := apply(&acc); err != nil {
			return nil, err
		}
		appliedBalance = acc.Balance
		return &acc, nil
	}

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(40), Currency: domain.CurrencyGBP, Type: domain.Withdrawal}

	txn, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(appliedBalance.Equal(decimal.NewFromInt(60)))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidKind() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(10), Currency: domain.CurrencyGBP, Type: "transfer"}

	txn, err := suite.service.CreateTransaction(ctx, "usr-owner-1", "01000005", req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-5),
		decimal.NewFromFloat(10000.01),
		decimal.RequireFromString("1.005"),
	} {
		req := dto.CreateTransactionRequest{Amount: amount, Currency: domain.CurrencyGBP, Type: domain.Deposit}
		txn, err := suite.service.CreateTransaction(ctx, "usr-owner-1", "01000005", req)
		suite.Require().Error(err)
		suite.Nil(txn)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForbiddenForNonOwner() {
	ctx := context.Background()
	account := &domain.Account{AccountID: 5, OwnerID: "usr-owner-1", Balance: decimal.NewFromInt(100)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(10), Currency: domain.CurrencyGBP, Type: domain.Deposit}
	txn, err := suite.service.CreateTransaction(ctx, "usr-intruder", "01000005", req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InsufficientBalanceFastPath() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(10)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(20), Currency: domain.CurrencyGBP, Type: domain.Withdrawal}
	txn, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	// No ledger write may happen for a withdrawal that cannot succeed.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "TransactionIDExists", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InsufficientBalanceUnderLock() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	// The unlocked read shows enough funds, but by the time the row is
	// locked a concurrent withdrawal has drained the account.
	staleView := &domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(100)}
	lockedState := domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(10)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(staleView, nil).Once()
	suite.mockTxnRepo.On("TransactionIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.applyAgainst(lockedState)

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(60), Currency: domain.CurrencyGBP, Type: domain.Withdrawal}
	txn, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DepositOverCeiling() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(9990)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("TransactionIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.applyAgainst(*account)

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(11), Currency: domain.CurrencyGBP, Type: domain.Deposit}
	txn, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrBusinessRule)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RetriesOnIDCollision() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(100)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("TransactionIDExists", ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
	suite.mockTxnRepo.On("TransactionIDExists", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	suite.applyAgainst(*account)

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(10), Currency: domain.CurrencyGBP, Type: domain.Deposit}
	txn, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IDGenerationExhausted() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(100)}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("TransactionIDExists", ctx, mock.AnythingOfType("string")).Return(true, nil)

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(10), Currency: domain.CurrencyGBP, Type: domain.Deposit}
	txn, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)

	suite.Require().Error(err)
	suite.Nil(txn)

	var appErr *apperrors.AppError
	suite.ErrorAs(err, &appErr)
	suite.Contains(appErr.Message, "exhausted")
}

// TestCreateTransaction_ConcurrentWithdrawals drives two withdrawals through
// a shared locked store. Exactly one may succeed when their sum exceeds the
// balance.
func (suite *TransactionServiceTestSuite) TestCreateTransaction_ConcurrentWithdrawals() {
	ctx := context.Background()
	ownerID := "usr-owner-1"

	var mu sync.Mutex
	stored := domain.Account{AccountID: 5, OwnerID: ownerID, Currency: domain.CurrencyGBP, Balance: decimal.NewFromInt(100)}

	suite.mockAccountRepo.FindAccountByIDFn = func(ctx context.Context, accountID int64) (*domain.Account, error) {
		mu.Lock()
		defer mu.Unlock()
		snapshot := stored
		return &snapshot, nil
	}
	suite.mockTxnRepo.On("TransactionIDExists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	suite.mockTxnRepo.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction, apply func(account *domain.Account) error) (*domain.Account, error) {
		mu.Lock()
		defer mu.Unlock()
		acc := stored
		if err := apply(&acc); err != nil {
			return nil, err
		}
		stored = acc
		return &acc, nil
	}

	req := dto.CreateTransactionRequest{Amount: decimal.NewFromInt(60), Currency: domain.CurrencyGBP, Type: domain.Withdrawal}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.CreateTransaction(ctx, ownerID, "01000005", req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, insufficient int
	for err := range results {
		if err == nil {
			successes++
		} else if suite.ErrorIs(err, apperrors.ErrInsufficientBalance) {
			insufficient++
		}
	}

	suite.Equal(1, successes)
	suite.Equal(1, insufficient)
	suite.True(stored.Balance.Equal(decimal.NewFromInt(40)))
}

// --- GetTransactionHistory Tests ---

func (suite *TransactionServiceTestSuite) TestGetTransactionHistory_Success() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID}
	expected := []domain.Transaction{{TransactionID: "tan-abc123", AccountID: 5}, {TransactionID: "tan-def456", AccountID: 5}}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByAccount", ctx, int64(5)).Return(expected, nil).Once()

	txns, err := suite.service.GetTransactionHistory(ctx, ownerID, "01000005")

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionHistory_EmptyNotNil() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByAccount", ctx, int64(5)).Return(nil, nil).Once()

	txns, err := suite.service.GetTransactionHistory(ctx, ownerID, "01000005")

	suite.Require().NoError(err)
	suite.Require().NotNil(txns)
	suite.Empty(txns)
}

// --- GetTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestGetTransaction_Success() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID}
	expected := &domain.Transaction{TransactionID: "tan-abc123", AccountID: 5}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionForOwner", ctx, "tan-abc123", ownerID).Return(expected, nil).Once()

	txn, err := suite.service.GetTransaction(ctx, ownerID, "01000005", "tan-abc123")

	suite.Require().NoError(err)
	suite.Equal(expected, txn)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_WrongAccountIsNotFound() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID}
	// The transaction exists and belongs to the caller, but not to the
	// account named in the path.
	other := &domain.Transaction{TransactionID: "tan-abc123", AccountID: 9}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionForOwner", ctx, "tan-abc123", ownerID).Return(other, nil).Once()

	txn, err := suite.service.GetTransaction(ctx, ownerID, "01000005", "tan-abc123")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_ForeignTransactionIsNotFound() {
	ctx := context.Background()
	ownerID := "usr-owner-1"
	account := &domain.Account{AccountID: 5, OwnerID: ownerID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(5)).Return(account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionForOwner", ctx, "tan-foreign", ownerID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransaction(ctx, ownerID, "01000005", "tan-foreign")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
