package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// BalanceSheetResponse reports all accounts bucketed by type with per-bucket
// decimal totals.
type BalanceSheetResponse struct {
	Assets           []AccountResponse `json:"assets"`
	Liabilities      []AccountResponse `json:"liabilities"`
	Equity           []AccountResponse `json:"equity"`
	TotalAssets      decimal.Decimal   `json:"totalAssets"`
	TotalLiabilities decimal.Decimal   `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal   `json:"totalEquity"`
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to its response DTO.
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:           ToAccountResponses(bs.Assets),
		Liabilities:      ToAccountResponses(bs.Liabilities),
		Equity:           ToAccountResponses(bs.Equity),
		TotalAssets:      bs.TotalAssets,
		TotalLiabilities: bs.TotalLiabilities,
		TotalEquity:      bs.TotalEquity,
	}
}
