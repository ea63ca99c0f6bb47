package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/core/services"
	"github.com/shopledger/shopledger/internal/dto"
)

// MockPaymentRepository is a mock type for the PaymentRepository interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, txn domain.Transaction, entry domain.JournalEntry) error {
	args := m.Called(ctx, payment, txn, entry)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPaymentRepository
	service  portssvc.PaymentSvc
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPaymentRepository)
	suite.service = services.NewPaymentService(suite.mockRepo)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("150.75"),
		Method:    "Bank Transfer",
		AccountID: "acc-1",
		LedgerID:  "ledger-1",
	}

	var savedPayment domain.Payment
	var savedTxn domain.Transaction
	var savedEntry domain.JournalEntry
	suite.mockRepo.On("SavePayment", ctx,
		mock.AnythingOfType("domain.Payment"),
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("domain.JournalEntry"),
	).Run(func(args mock.Arguments) {
		savedPayment = args.Get(1).(domain.Payment)
		savedTxn = args.Get(2).(domain.Transaction)
		savedEntry = args.Get(3).(domain.JournalEntry)
	}).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal(domain.MethodBankTransfer, payment.Method)

	// The parent transaction references the payment and carries its amount.
	suite.Equal("Payment", savedTxn.Type)
	suite.Equal(savedPayment.PaymentID, savedTxn.ReferenceID)
	suite.True(savedTxn.TotalAmount.Equal(req.Amount))

	// Exactly one Credit entry against the requested ledger account.
	suite.Equal(savedTxn.TransactionID, savedEntry.TransactionID)
	suite.Equal("ledger-1", savedEntry.LedgerID)
	suite.Equal(domain.Credit, savedEntry.Type)
	suite.True(savedEntry.Amount.Equal(req.Amount))
	suite.Equal("Payment of 150.75 via Bank Transfer", savedEntry.Description)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_InvalidMethod() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(10),
		Method:    "Barter",
		AccountID: "acc-1",
		LedgerID:  "ledger-1",
	}

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:      time.Now(),
		Amount:    decimal.Zero,
		Method:    "Cash",
		AccountID: "acc-1",
		LedgerID:  "ledger-1",
	}

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_SaveError() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(10),
		Method:    "Card",
		AccountID: "acc-1",
		LedgerID:  "ledger-1",
	}

	expectedErr := assert.AnError
	suite.mockRepo.On("SavePayment", ctx,
		mock.AnythingOfType("domain.Payment"),
		mock.AnythingOfType("domain.Transaction"),
		mock.AnythingOfType("domain.JournalEntry"),
	).Return(expectedErr).Once()

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPayments() {
	ctx := context.Background()
	expected := []domain.Payment{{PaymentID: "p1"}, {PaymentID: "p2"}}
	suite.mockRepo.On("ListPayments", ctx).Return(expected, nil).Once()

	payments, err := suite.service.ListPayments(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, payments)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
