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

type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvc {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to save category", slog.String("category_name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list categories")
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.LastUpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category; its sub-categories go with it.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *CategoryService) CreateSubCategory(ctx context.Context, req dto.CreateSubCategoryRequest) (*domain.SubCategory, error) {
	// The parent must exist; surface not-found before hitting the FK.
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := domain.SubCategory{
		SubCategoryID: uuid.NewString(),
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveSubCategory(ctx, sub); err != nil {
		s.LogError(ctx, err, "failed to save sub-category", slog.String("sub_category_name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "sub-category created", slog.String("sub_category_id", sub.SubCategoryID))
	return &sub, nil
}

func (s *CategoryService) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	subs, err := s.categoryRepo.ListSubCategories(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "failed to list sub-categories", slog.String("category_id", categoryID))
		return nil, err
	}
	return subs, nil
}

func (s *CategoryService) DeleteSubCategory(ctx context.Context, subCategoryID string) error {
	if err := s.categoryRepo.DeleteSubCategory(ctx, subCategoryID); err != nil {
		s.LogError(ctx, err, "failed to delete sub-category", slog.String("sub_category_id", subCategoryID))
		return err
	}
	return nil
}
