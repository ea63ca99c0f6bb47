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

type SupplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepository
}

func NewSupplierService(supplierRepo portsrepo.SupplierRepository) portssvc.SupplierSvc {
	return &SupplierService{supplierRepo: supplierRepo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "failed to save supplier", slog.String("supplier_name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list suppliers")
		return nil, err
	}
	return suppliers, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		supplier.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	supplier.LastUpdatedAt = time.Now().UTC()

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		s.LogError(ctx, err, "failed to delete supplier", slog.String("supplier_id", supplierID))
		return err
	}
	s.LogInfo(ctx, "supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}
