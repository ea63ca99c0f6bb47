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

type PaymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
}

func NewPaymentService(paymentRepo portsrepo.PaymentRepository) portssvc.PaymentSvc {
	return &PaymentService{paymentRepo: paymentRepo}
}

// CreatePayment records a payment together with its bookkeeping side effect:
// a parent transaction and a single Credit journal entry against the named
// ledger account. All three rows are written in one database transaction, so
// a journal entry exists exactly when its payment does.
func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	method := domain.PaymentMethod(req.Method)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, req.Method)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		Date:        req.Date,
		Amount:      req.Amount,
		Method:      method,
		ReferenceID: req.ReferenceID,
		AccountID:   req.AccountID,
		LedgerID:    req.LedgerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		Type:          "Payment",
		ReferenceID:   payment.PaymentID,
		TotalAmount:   req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	entry := domain.JournalEntry{
		EntryID:       uuid.NewString(),
		TransactionID: txn.TransactionID,
		LedgerID:      req.LedgerID,
		Description:   domain.PaymentDescription(req.Amount, method),
		Amount:        req.Amount,
		Type:          domain.Credit,
		CreatedAt:     now,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment, txn, entry); err != nil {
		s.LogError(ctx, err, "failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, err
	}
	s.LogInfo(ctx, "payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("transaction_id", txn.TransactionID))
	return &payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list payments")
		return nil, err
	}
	return payments, nil
}
