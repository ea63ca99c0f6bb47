package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

type ChartService struct {
	BaseService
	chartRepo portsrepo.ChartRepository
}

func NewChartService(chartRepo portsrepo.ChartRepository) portssvc.ChartSvc {
	return &ChartService{chartRepo: chartRepo}
}

// CreateAccountGroup creates a group with a server-derived code. Code
// assignment happens in the repository so that the sequence increment and the
// insert share one database transaction.
func (s *ChartService) CreateAccountGroup(ctx context.Context, req dto.CreateAccountGroupRequest) (*domain.AccountGroup, error) {
	now := time.Now().UTC()
	group, err := s.chartRepo.SaveAccountGroup(ctx, req.Name, req.AccountType, now)
	if err != nil {
		s.LogError(ctx, err, "failed to save account group", slog.String("group_name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "account group created",
		slog.String("group_id", group.GroupID),
		slog.String("code", group.Code))
	return group, nil
}

func (s *ChartService) ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	groups, err := s.chartRepo.ListAccountGroups(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list account groups")
		return nil, err
	}
	return groups, nil
}

func (s *ChartService) CreateLedgerAccount(ctx context.Context, req dto.CreateLedgerAccountRequest) (*domain.LedgerAccount, error) {
	now := time.Now().UTC()
	ledger := domain.LedgerAccount{
		LedgerID: uuid.NewString(),
		Name:     req.Name,
		GroupID:  req.GroupID,
		Code:     req.Code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.chartRepo.SaveLedgerAccount(ctx, ledger); err != nil {
		s.LogError(ctx, err, "failed to save ledger account", slog.String("ledger_name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "ledger account created", slog.String("ledger_id", ledger.LedgerID))
	return &ledger, nil
}

func (s *ChartService) ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	ledgers, err := s.chartRepo.ListLedgerAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list ledger accounts")
		return nil, err
	}
	return ledgers, nil
}

func (s *ChartService) DeleteLedgerAccount(ctx context.Context, ledgerID string) error {
	if err := s.chartRepo.DeleteLedgerAccount(ctx, ledgerID); err != nil {
		s.LogError(ctx, err, "failed to delete ledger account", slog.String("ledger_id", ledgerID))
		return err
	}
	s.LogInfo(ctx, "ledger account deleted", slog.String("ledger_id", ledgerID))
	return nil
}
