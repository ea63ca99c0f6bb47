package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/handlers"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvc = (*MockPaymentService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockPayment   *MockPaymentService
	mockReporting *MockReportingService
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockPayment = new(MockPaymentService)
	suite.mockReporting = new(MockReportingService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Payment:   suite.mockPayment,
		Reporting: suite.mockReporting,
	})
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_Success() {
	payment := &domain.Payment{
		PaymentID: "pay-1",
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("99.50"),
		Method:    domain.MethodCash,
		AccountID: "acc-1",
		LedgerID:  "ledger-1",
	}
	suite.mockPayment.On("CreatePayment", mock.Anything, mock.AnythingOfType("dto.CreatePaymentRequest")).
		Return(payment, nil).Once()

	body := map[string]any{
		"date":      "2024-06-01T00:00:00Z",
		"amount":    "99.50",
		"method":    "Cash",
		"accountID": "acc-1",
		"ledgerID":  "ledger-1",
	}
	raw, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pay-1", resp.PaymentID)
	suite.Equal("Cash", resp.Method)
	suite.mockPayment.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_UnknownMethodRejected() {
	body := map[string]any{
		"date":      "2024-06-01T00:00:00Z",
		"amount":    "10",
		"method":    "Barter",
		"accountID": "acc-1",
		"ledgerID":  "ledger-1",
	}
	raw, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	// Rejected by binding validation before the service is reached.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPayment.AssertNotCalled(suite.T(), "CreatePayment")
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_RestrictedLedger() {
	suite.mockPayment.On("CreatePayment", mock.Anything, mock.AnythingOfType("dto.CreatePaymentRequest")).
		Return(nil, apperrors.ErrRestricted).Once()

	body := map[string]any{
		"date":      "2024-06-01T00:00:00Z",
		"amount":    "10",
		"method":    "Cheque",
		"accountID": "acc-1",
		"ledgerID":  "ledger-missing",
	}
	raw, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockPayment.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestGetBalanceSheet() {
	bs := &domain.BalanceSheet{
		Assets:           []domain.Account{{AccountID: "a1", Name: "Cash", Type: domain.Asset, Balance: decimal.NewFromInt(100)}},
		Liabilities:      []domain.Account{},
		Equity:           []domain.Account{},
		TotalAssets:      decimal.NewFromInt(100),
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	suite.mockReporting.On("BalanceSheet", mock.Anything).Return(bs, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/balance-sheet", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.BalanceSheetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Assets, 1)
	suite.Equal("Cash", resp.Assets[0].Name)
	suite.True(resp.TotalAssets.Equal(decimal.NewFromInt(100)))
	suite.Empty(resp.Liabilities)
	suite.mockReporting.AssertExpectations(suite.T())
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
