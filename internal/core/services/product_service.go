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

type ProductService struct {
	BaseService
	productRepo portsrepo.ProductRepository
}

func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductSvc {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	stock := 0
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must not be negative", apperrors.ErrValidation)
		}
		stock = *req.Stock
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		Stock:     stock,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "failed to save product", slog.String("product_name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *ProductService) ListProducts(ctx context.Context, inStockOnly bool) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, inStockOnly)
	if err != nil {
		s.LogError(ctx, err, "failed to list products")
		return nil, err
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must not be negative", apperrors.ErrValidation)
		}
		product.Stock = *req.Stock
	}
	product.LastUpdatedAt = time.Now().UTC()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "failed to update product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		s.LogError(ctx, err, "failed to delete product", slog.String("product_id", productID))
		return err
	}
	s.LogInfo(ctx, "product deleted", slog.String("product_id", productID))
	return nil
}

// ProductTransactions returns the product's purchase and sale lines in
// chronological order. The product must exist; a product with no history
// yields an empty slice.
func (s *ProductService) ProductTransactions(ctx context.Context, productID string) ([]domain.ProductEvent, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}
	events, err := s.productRepo.ListProductEvents(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "failed to list product events", slog.String("product_id", productID))
		return nil, err
	}
	return events, nil
}
