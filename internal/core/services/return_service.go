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

type ReturnService struct {
	BaseService
	returnRepo portsrepo.ReturnRepository
}

func NewReturnService(returnRepo portsrepo.ReturnRepository) portssvc.ReturnSvc {
	return &ReturnService{returnRepo: returnRepo}
}

func validateReturnItems(items []dto.ReturnItemRequest) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: return requires at least one item", apperrors.ErrValidation)
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item quantity must be at least 1", apperrors.ErrValidation)
		}
		if item.ReturnPrice.IsNegative() {
			return fmt.Errorf("%w: item return price must not be negative", apperrors.ErrValidation)
		}
	}
	return nil
}

// CreateSalesReturn records goods coming back from a customer and restores
// their stock in the same database transaction.
func (s *ReturnService) CreateSalesReturn(ctx context.Context, req dto.CreateReturnRequest) (*domain.SalesReturn, error) {
	if err := validateReturnItems(req.Items); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ret := domain.SalesReturn{
		ReturnID: uuid.NewString(),
		Date:     req.Date,
		Reason:   req.Reason,
		Items:    make([]domain.SalesReturnItem, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	for i, item := range req.Items {
		ret.Items[i] = domain.SalesReturnItem{
			ItemID:      uuid.NewString(),
			ReturnID:    ret.ReturnID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			ReturnPrice: item.ReturnPrice,
		}
	}

	if err := s.returnRepo.SaveSalesReturn(ctx, ret); err != nil {
		s.LogError(ctx, err, "failed to save sales return", slog.String("return_id", ret.ReturnID))
		return nil, err
	}
	s.LogInfo(ctx, "sales return recorded", slog.String("return_id", ret.ReturnID))
	return &ret, nil
}

func (s *ReturnService) ListSalesReturns(ctx context.Context) ([]domain.SalesReturn, error) {
	rets, err := s.returnRepo.ListSalesReturns(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list sales returns")
		return nil, err
	}
	return rets, nil
}

// CreatePurchaseReturn records goods sent back to a supplier and removes them
// from stock in the same database transaction.
func (s *ReturnService) CreatePurchaseReturn(ctx context.Context, req dto.CreateReturnRequest) (*domain.PurchaseReturn, error) {
	if err := validateReturnItems(req.Items); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ret := domain.PurchaseReturn{
		ReturnID: uuid.NewString(),
		Date:     req.Date,
		Reason:   req.Reason,
		Items:    make([]domain.PurchaseReturnItem, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	for i, item := range req.Items {
		ret.Items[i] = domain.PurchaseReturnItem{
			ItemID:      uuid.NewString(),
			ReturnID:    ret.ReturnID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			ReturnPrice: item.ReturnPrice,
		}
	}

	if err := s.returnRepo.SavePurchaseReturn(ctx, ret); err != nil {
		s.LogError(ctx, err, "failed to save purchase return", slog.String("return_id", ret.ReturnID))
		return nil, err
	}
	s.LogInfo(ctx, "purchase return recorded", slog.String("return_id", ret.ReturnID))
	return &ret, nil
}

func (s *ReturnService) ListPurchaseReturns(ctx context.Context) ([]domain.PurchaseReturn, error) {
	rets, err := s.returnRepo.ListPurchaseReturns(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list purchase returns")
		return nil, err
	}
	return rets, nil
}
