package services

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
)

type ReportingService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

func NewReportingService(accountRepo portsrepo.AccountRepository) portssvc.ReportingSvc {
	return &ReportingService{accountRepo: accountRepo}
}

// BalanceSheet buckets every account by its stored type and totals each
// bucket. Computed on demand from stored balances; nothing is cached.
func (s *ReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts for balance sheet")
		return nil, err
	}
	bs := domain.BuildBalanceSheet(accounts)
	return &bs, nil
}
