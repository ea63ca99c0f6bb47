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

type PurchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepository
}

func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepository) portssvc.PurchaseSvc {
	return &PurchaseService{purchaseRepo: purchaseRepo}
}

// CreatePurchase records a purchase with its items and increments product
// stock atomically with the document insert.
func (s *PurchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: purchase requires at least one item", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		Date:       req.Date,
		SupplierID: req.SupplierID,
		Items:      make([]domain.PurchaseItem, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	for i, item := range req.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item quantity must be at least 1", apperrors.ErrValidation)
		}
		if item.PurchasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: item purchase price must not be negative", apperrors.ErrValidation)
		}
		purchase.Items[i] = domain.PurchaseItem{
			ItemID:        uuid.NewString(),
			PurchaseID:    purchase.PurchaseID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
		}
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "failed to save purchase", slog.String("purchase_id", purchase.PurchaseID))
		return nil, err
	}
	s.LogInfo(ctx, "purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.Int("item_count", len(purchase.Items)))
	return &purchase, nil
}

func (s *PurchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list purchases")
		return nil, err
	}
	return purchases, nil
}
