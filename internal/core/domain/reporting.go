package domain

import "github.com/shopspring/decimal"

// BalanceSheet buckets accounts by type and carries per-bucket decimal totals.
// Bucketing matches the AccountType literals case-sensitively; an account
// whose stored type matches none of them contributes to no bucket.
type BalanceSheet struct {
	Assets           []Account       `json:"assets"`
	Liabilities      []Account       `json:"liabilities"`
	Equity           []Account       `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// BuildBalanceSheet partitions accounts into the three balance sheet buckets
// and sums each bucket's stored balance.
func BuildBalanceSheet(accounts []Account) BalanceSheet {
	bs := BalanceSheet{
		Assets:      []Account{},
		Liabilities: []Account{},
		Equity:      []Account{},
	}
	for _, acc := range accounts {
		switch acc.Type {
		case Asset:
			bs.Assets = append(bs.Assets, acc)
			bs.TotalAssets = bs.TotalAssets.Add(acc.Balance)
		case Liability:
			bs.Liabilities = append(bs.Liabilities, acc)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(acc.Balance)
		case Equity:
			bs.Equity = append(bs.Equity, acc)
			bs.TotalEquity = bs.TotalEquity.Add(acc.Balance)
		}
	}
	return bs
}
