package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "a1", Name: "Cash", Type: domain.Asset, Balance: decimal.NewFromInt(100)},
		{AccountID: "a2", Name: "Bank", Type: domain.Asset, Balance: decimal.NewFromInt(400)},
		{AccountID: "l1", Name: "Loan", Type: domain.Liability, Balance: decimal.NewFromInt(300)},
		{AccountID: "e1", Name: "Capital", Type: domain.Equity, Balance: decimal.NewFromInt(200)},
	}
	suite.mockRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()

	bs, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(bs)
	suite.Len(bs.Assets, 2)
	suite.Len(bs.Liabilities, 1)
	suite.Len(bs.Equity, 1)
	suite.True(bs.TotalAssets.Equal(decimal.NewFromInt(500)))
	suite.True(bs.TotalLiabilities.Equal(decimal.NewFromInt(300)))
	suite.True(bs.TotalEquity.Equal(decimal.NewFromInt(200)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("ListAccounts", ctx).Return(nil, expectedErr).Once()

	bs, err := suite.service.BalanceSheet(ctx)

	suite.Require().Error(err)
	suite.Nil(bs)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
