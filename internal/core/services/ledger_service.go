package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

const ledgerDateLayout = "2006-01-02"

type LedgerService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
}

func NewLedgerService(journalRepo portsrepo.JournalRepository) portssvc.LedgerSvc {
	return &LedgerService{journalRepo: journalRepo}
}

// PostTransaction writes a bookkeeping transaction and all its entries
// atomically. Entries are taken as given; nothing checks that credits and
// debits balance.
func (s *LedgerService) PostTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, []domain.JournalEntry, error) {
	if len(req.Entries) == 0 {
		return nil, nil, fmt.Errorf("%w: transaction requires at least one entry", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		Type:          req.Type,
		ReferenceID:   req.ReferenceID,
		TotalAmount:   req.TotalAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	entries := make([]domain.JournalEntry, len(req.Entries))
	for i, e := range req.Entries {
		entryType := domain.EntryType(e.Type)
		if !entryType.IsValid() {
			return nil, nil, fmt.Errorf("%w: invalid entry type %q", apperrors.ErrValidation, e.Type)
		}
		if e.Amount.IsNegative() {
			return nil, nil, fmt.Errorf("%w: entry amount must not be negative", apperrors.ErrValidation)
		}
		entries[i] = domain.JournalEntry{
			EntryID:       uuid.NewString(),
			TransactionID: txn.TransactionID,
			LedgerID:      e.LedgerID,
			Description:   e.Description,
			Amount:        e.Amount,
			Type:          entryType,
			CreatedAt:     now,
		}
	}

	if err := s.journalRepo.SaveTransaction(ctx, txn, entries); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, nil, err
	}
	s.LogInfo(ctx, "transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("entry_count", len(entries)))
	return &txn, entries, nil
}

func (s *LedgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, []domain.JournalEntry, error) {
	return s.journalRepo.FindTransactionByID(ctx, transactionID)
}

// QueryLedger lists journal entries matching the optional filters. Dates use
// the 2006-01-02 layout; dateTo extends to the end of that day so both bounds
// are inclusive.
func (s *LedgerService) QueryLedger(ctx context.Context, params dto.LedgerQueryParams) ([]domain.LedgerLine, error) {
	filter := domain.LedgerFilter{LedgerID: params.AccountID}

	if params.Type != "" {
		entryType := domain.EntryType(params.Type)
		if !entryType.IsValid() {
			return nil, fmt.Errorf("%w: invalid entry type %q", apperrors.ErrValidation, params.Type)
		}
		filter.Type = entryType
	}
	if params.DateFrom != "" {
		from, err := time.Parse(ledgerDateLayout, params.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dateFrom %q", apperrors.ErrValidation, params.DateFrom)
		}
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, err := time.Parse(ledgerDateLayout, params.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dateTo %q", apperrors.ErrValidation, params.DateTo)
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &endOfDay
	}

	lines, err := s.journalRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to query ledger")
		return nil, err
	}
	return lines, nil
}
