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

// MockSaleRepository is a mock type for the SaleRepository interface
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindLastSalePrice(ctx context.Context, productID string) (*domain.LastSalePrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LastSalePrice), args.Error(1)
}

type SaleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSaleRepository
	service  portssvc.SaleSvc
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSaleRepository)
	suite.service = services.NewSaleService(suite.mockRepo)
}

func (suite *SaleServiceTestSuite) TestCreateSale_Success() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:         time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		CustomerName: "Walk-in",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: 2, Price: decimal.RequireFromString("9.99")},
			{ProductID: "prod-2", Quantity: 1, Price: decimal.NewFromInt(5)},
		},
	}

	var saved domain.Sale
	suite.mockRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Sale)
		}).Return(nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.NotEmpty(sale.SaleID)
	suite.Require().Len(saved.Items, 2)
	for _, item := range saved.Items {
		suite.NotEmpty(item.ItemID)
		suite.Equal(saved.SaleID, item.SaleID)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_NoItems() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{Date: time.Now()}

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_InvalidQuantity() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Date:  time.Now(),
		Items: []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: 0}},
	}

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestLastSalePrice_Found() {
	ctx := context.Background()
	soldAt := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	expected := &domain.LastSalePrice{
		SellingPrice: decimal.RequireFromString("12.50"),
		Date:         &soldAt,
	}
	suite.mockRepo.On("FindLastSalePrice", ctx, "prod-1").Return(expected, nil).Once()

	price, err := suite.service.LastSalePrice(ctx, "prod-1")

	suite.Require().NoError(err)
	suite.Equal(expected, price)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestLastSalePrice_NeverSold() {
	ctx := context.Background()
	suite.mockRepo.On("FindLastSalePrice", ctx, "prod-unsold").Return(nil, apperrors.ErrNotFound).Once()

	price, err := suite.service.LastSalePrice(ctx, "prod-unsold")

	// A product with no sales is not an error: zero price, nil date.
	suite.Require().NoError(err)
	suite.Require().NotNil(price)
	suite.True(price.SellingPrice.IsZero())
	suite.Nil(price.Date)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
