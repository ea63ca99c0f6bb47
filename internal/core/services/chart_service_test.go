package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/core/services"
	"github.com/shopledger/shopledger/internal/dto"
)

// MockChartRepository is a mock type for the ChartRepository interface
type MockChartRepository struct {
	mock.Mock
}

func (m *MockChartRepository) SaveAccountGroup(ctx context.Context, name string, accountType int, now time.Time) (*domain.AccountGroup, error) {
	args := m.Called(ctx, name, accountType, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountGroup), args.Error(1)
}

func (m *MockChartRepository) ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountGroup), args.Error(1)
}

func (m *MockChartRepository) SaveLedgerAccount(ctx context.Context, ledger domain.LedgerAccount) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockChartRepository) FindLedgerAccountByID(ctx context.Context, ledgerID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockChartRepository) ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Error(1)
}

func (m *MockChartRepository) DeleteLedgerAccount(ctx context.Context, ledgerID string) error {
	args := m.Called(ctx, ledgerID)
	return args.Error(0)
}

type ChartServiceTestSuite struct {
	suite.Suite
	mockRepo *MockChartRepository
	service  portssvc.ChartSvc
}

func (suite *ChartServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockChartRepository)
	suite.service = services.NewChartService(suite.mockRepo)
}

func (suite *ChartServiceTestSuite) TestCreateAccountGroup_Success() {
	ctx := context.Background()
	req := dto.CreateAccountGroupRequest{Name: "Current Assets", AccountType: 1}

	expected := &domain.AccountGroup{
		GroupID:     "group-1",
		Name:        "Current Assets",
		AccountType: 1,
		Code:        "1-01",
	}
	suite.mockRepo.On("SaveAccountGroup", ctx, "Current Assets", 1, mock.AnythingOfType("time.Time")).
		Return(expected, nil).Once()

	group, err := suite.service.CreateAccountGroup(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(expected, group)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChartServiceTestSuite) TestCreateAccountGroup_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateAccountGroupRequest{Name: "Current Assets", AccountType: 1}

	suite.mockRepo.On("SaveAccountGroup", ctx, "Current Assets", 1, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrDuplicate).Once()

	group, err := suite.service.CreateAccountGroup(ctx, req)

	suite.Require().Error(err)
	suite.Nil(group)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChartServiceTestSuite) TestCreateLedgerAccount_Success() {
	ctx := context.Background()
	req := dto.CreateLedgerAccountRequest{Name: "Office Rent", GroupID: "group-1", Code: "OR-01"}

	var saved domain.LedgerAccount
	suite.mockRepo.On("SaveLedgerAccount", ctx, mock.AnythingOfType("domain.LedgerAccount")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.LedgerAccount)
		}).Return(nil).Once()

	ledger, err := suite.service.CreateLedgerAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(ledger)
	suite.NotEmpty(ledger.LedgerID)
	suite.Equal("Office Rent", saved.Name)
	suite.Equal("group-1", saved.GroupID)
	suite.Equal("OR-01", saved.Code)
	suite.WithinDuration(time.Now().UTC(), saved.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChartServiceTestSuite) TestDeleteLedgerAccount_Restricted() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteLedgerAccount", ctx, "ledger-1").Return(apperrors.ErrRestricted).Once()

	err := suite.service.DeleteLedgerAccount(ctx, "ledger-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRestricted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestChartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceTestSuite))
}
