package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shopledger/internal/core/domain"
)

func acc(name string, accType domain.AccountType, balance string) domain.Account {
	return domain.Account{
		AccountID: name,
		Name:      name,
		Type:      accType,
		Balance:   decimal.RequireFromString(balance),
	}
}

func TestBuildBalanceSheet_BucketsAndTotals(t *testing.T) {
	accounts := []domain.Account{
		acc("cash", domain.Asset, "100.50"),
		acc("inventory", domain.Asset, "249.50"),
		acc("loan", domain.Liability, "-75.25"),
		acc("capital", domain.Equity, "425.75"),
	}

	bs := domain.BuildBalanceSheet(accounts)

	require.Len(t, bs.Assets, 2)
	require.Len(t, bs.Liabilities, 1)
	require.Len(t, bs.Equity, 1)

	assert.True(t, bs.TotalAssets.Equal(decimal.RequireFromString("350")),
		"total assets was %s", bs.TotalAssets)
	assert.True(t, bs.TotalLiabilities.Equal(decimal.RequireFromString("-75.25")),
		"total liabilities was %s", bs.TotalLiabilities)
	assert.True(t, bs.TotalEquity.Equal(decimal.RequireFromString("425.75")),
		"total equity was %s", bs.TotalEquity)
}

func TestBuildBalanceSheet_UnknownTypeExcluded(t *testing.T) {
	accounts := []domain.Account{
		acc("cash", domain.Asset, "10"),
		acc("mystery", domain.AccountType("asset"), "999"), // wrong case
		acc("revenue", domain.AccountType("Revenue"), "50"),
	}

	bs := domain.BuildBalanceSheet(accounts)

	assert.Len(t, bs.Assets, 1)
	assert.Empty(t, bs.Liabilities)
	assert.Empty(t, bs.Equity)
	assert.True(t, bs.TotalAssets.Equal(decimal.NewFromInt(10)))
}

func TestBuildBalanceSheet_Empty(t *testing.T) {
	bs := domain.BuildBalanceSheet(nil)

	// Buckets serialize as [] rather than null.
	assert.NotNil(t, bs.Assets)
	assert.NotNil(t, bs.Liabilities)
	assert.NotNil(t, bs.Equity)
	assert.True(t, bs.TotalAssets.IsZero())
	assert.True(t, bs.TotalLiabilities.IsZero())
	assert.True(t, bs.TotalEquity.IsZero())
}
