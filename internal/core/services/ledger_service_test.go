package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/core/services"
	"github.com/shopledger/shopledger/internal/dto"
)

// MockJournalRepository is a mock type for the JournalRepository interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry) error {
	args := m.Called(ctx, txn, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, []domain.JournalEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).([]domain.JournalEntry), args.Error(2)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJournalRepository
	service  portssvc.LedgerSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:        "Journal",
		TotalAmount: decimal.NewFromInt(100),
		Entries: []dto.JournalEntryRequest{
			{LedgerID: "ledger-1", Amount: decimal.NewFromInt(100), Type: "Debit"},
			{LedgerID: "ledger-2", Amount: decimal.NewFromInt(100), Type: "Credit"},
		},
	}

	var savedEntries []domain.JournalEntry
	suite.mockRepo.On("SaveTransaction", ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("[]domain.JournalEntry"),
	).Run(func(args mock.Arguments) {
		savedEntries = args.Get(2).([]domain.JournalEntry)
	}).Return(nil).Once()

	txn, entries, err := suite.service.PostTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Require().Len(entries, 2)
	suite.Require().Len(savedEntries, 2)
	for _, e := range savedEntries {
		suite.Equal(txn.TransactionID, e.TransactionID)
		suite.NotEmpty(e.EntryID)
	}
	suite.Equal(domain.Debit, savedEntries[0].Type)
	suite.Equal(domain.Credit, savedEntries[1].Type)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_InvalidEntryType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date: time.Now(),
		Type: "Journal",
		Entries: []dto.JournalEntryRequest{
			{LedgerID: "ledger-1", Amount: decimal.NewFromInt(10), Type: "debit"},
		},
	}

	txn, entries, err := suite.service.PostTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_NoEntries() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{Date: time.Now(), Type: "Journal"}

	txn, entries, err := suite.service.PostTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestQueryLedger_DateRangeInclusive() {
	ctx := context.Background()

	var captured domain.LedgerFilter
	suite.mockRepo.On("ListEntries", ctx, mock.AnythingOfType("domain.LedgerFilter")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.LedgerFilter)
		}).Return([]domain.LedgerLine{}, nil).Once()

	_, err := suite.service.QueryLedger(ctx, dto.LedgerQueryParams{
		AccountID: "ledger-1",
		DateFrom:  "2024-01-01",
		DateTo:    "2024-01-31",
		Type:      "Credit",
	})

	suite.Require().NoError(err)
	suite.Equal("ledger-1", captured.LedgerID)
	suite.Equal(domain.Credit, captured.Type)
	suite.Require().NotNil(captured.DateFrom)
	suite.Require().NotNil(captured.DateTo)
	suite.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *captured.DateFrom)
	// The upper bound covers the whole of the dateTo day.
	suite.True(captured.DateTo.After(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
	suite.True(captured.DateTo.Before(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestQueryLedger_InvalidDate() {
	ctx := context.Background()

	_, err := suite.service.QueryLedger(ctx, dto.LedgerQueryParams{DateFrom: "01/01/2024"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListEntries")
}

func (suite *LedgerServiceTestSuite) TestQueryLedger_InvalidType() {
	ctx := context.Background()

	_, err := suite.service.QueryLedger(ctx, dto.LedgerQueryParams{Type: "Both"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListEntries")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
