package repositories

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// ProductRepository persists products.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	// ListProducts returns all products; with inStockOnly set, only those with
	// stock greater than zero.
	ListProducts(ctx context.Context, inStockOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	// ListProductEvents returns the product's purchase and sale lines
	// interleaved chronologically, oldest first.
	ListProductEvents(ctx context.Context, productID string) ([]domain.ProductEvent, error)
}

// CategoryRepository persists categories and their sub-categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	// DeleteCategory removes the category; sub-categories cascade with it.
	DeleteCategory(ctx context.Context, categoryID string) error
	SaveSubCategory(ctx context.Context, sub domain.SubCategory) error
	ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, subCategoryID string) error
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SaleRepository persists sales documents.
type SaleRepository interface {
	// SaveSale inserts the sale and all its items atomically, decrementing
	// product stock in the same database transaction.
	SaveSale(ctx context.Context, sale domain.Sale) error
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	// FindLastSalePrice returns the price and date of the most recent sale
	// line for the product, by parent sale date descending. A product with no
	// sales yields apperrors.ErrNotFound.
	FindLastSalePrice(ctx context.Context, productID string) (*domain.LastSalePrice, error)
}

// PurchaseRepository persists purchase documents.
type PurchaseRepository interface {
	// SavePurchase inserts the purchase and all its items atomically,
	// incrementing product stock in the same database transaction.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// ReturnRepository persists sales and purchase returns.
type ReturnRepository interface {
	SaveSalesReturn(ctx context.Context, ret domain.SalesReturn) error
	ListSalesReturns(ctx context.Context) ([]domain.SalesReturn, error)
	SavePurchaseReturn(ctx context.Context, ret domain.PurchaseReturn) error
	ListPurchaseReturns(ctx context.Context) ([]domain.PurchaseReturn, error)
}
