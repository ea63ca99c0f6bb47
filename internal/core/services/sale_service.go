package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

type SaleService struct {
	BaseService
	saleRepo portsrepo.SaleRepository
}

func NewSaleService(saleRepo portsrepo.SaleRepository) portssvc.SaleSvc {
	return &SaleService{saleRepo: saleRepo}
}

// CreateSale records a sale with its items and decrements product stock. The
// whole write is atomic in the repository; a failed item insert leaves no
// partial sale behind.
func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: sale requires at least one item", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:       uuid.NewString(),
		Date:         req.Date,
		CustomerName: req.CustomerName,
		Items:        make([]domain.SalesItem, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	for i, item := range req.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item quantity must be at least 1", apperrors.ErrValidation)
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: item price must not be negative", apperrors.ErrValidation)
		}
		sale.Items[i] = domain.SalesItem{
			ItemID:    uuid.NewString(),
			SaleID:    sale.SaleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "failed to save sale", slog.String("sale_id", sale.SaleID))
		return nil, err
	}
	s.LogInfo(ctx, "sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.Int("item_count", len(sale.Items)))
	return &sale, nil
}

func (s *SaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *SaleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list sales")
		return nil, err
	}
	return sales, nil
}

// LastSalePrice looks up the most recent selling price of a product. A
// product that has never been sold yields the sentinel value with a zero
// price and nil date rather than an error.
func (s *SaleService) LastSalePrice(ctx context.Context, productID string) (*domain.LastSalePrice, error) {
	price, err := s.saleRepo.FindLastSalePrice(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.LastSalePrice{SellingPrice: decimal.Zero, Date: nil}, nil
		}
		s.LogError(ctx, err, "failed to find last sale price", slog.String("product_id", productID))
		return nil, err
	}
	return price, nil
}
