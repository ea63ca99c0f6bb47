package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock"` // Optional opening stock, defaults to 0
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"stock"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain.Product to DTOs.
func ToProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name}
}

// ToCategoryResponses converts a slice of domain.Category to DTOs.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

// CreateSubCategoryRequest defines the data needed to create a sub-category.
type CreateSubCategoryRequest struct {
	CategoryID string `json:"categoryID" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// SubCategoryResponse defines the data returned for a sub-category.
type SubCategoryResponse struct {
	SubCategoryID string `json:"subCategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
}

// ToSubCategoryResponse converts a domain.SubCategory to its response DTO.
func ToSubCategoryResponse(s *domain.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{
		SubCategoryID: s.SubCategoryID,
		CategoryID:    s.CategoryID,
		Name:          s.Name,
	}
}

// ToSubCategoryResponses converts a slice of domain.SubCategory to DTOs.
func ToSubCategoryResponses(subs []domain.SubCategory) []SubCategoryResponse {
	res := make([]SubCategoryResponse, len(subs))
	for i := range subs {
		res[i] = ToSubCategoryResponse(&subs[i])
	}
	return res
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID  string `json:"supplierID"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address,omitempty"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:  s.SupplierID,
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
	}
}

// ToSupplierResponses converts a slice of domain.Supplier to DTOs.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}
