package services

import (
	"context"

	"github.com/shopledger/shopledger/internal/core/domain"
	"github.com/shopledger/shopledger/internal/dto"
)

// AccountSvc manages chart-of-accounts Account entities.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// ChartSvc manages account groups and ledger accounts.
type ChartSvc interface {
	CreateAccountGroup(ctx context.Context, req dto.CreateAccountGroupRequest) (*domain.AccountGroup, error)
	ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error)
	CreateLedgerAccount(ctx context.Context, req dto.CreateLedgerAccountRequest) (*domain.LedgerAccount, error)
	ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error)
	DeleteLedgerAccount(ctx context.Context, ledgerID string) error
}

// ProductSvc manages products and their transaction history.
type ProductSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, inStockOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	ProductTransactions(ctx context.Context, productID string) ([]domain.ProductEvent, error)
}

// CategorySvc manages categories and sub-categories.
type CategorySvc interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	CreateSubCategory(ctx context.Context, req dto.CreateSubCategoryRequest) (*domain.SubCategory, error)
	ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, subCategoryID string) error
}

// SupplierSvc manages suppliers.
type SupplierSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SaleSvc records sales and answers sale-history lookups.
type SaleSvc interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	LastSalePrice(ctx context.Context, productID string) (*domain.LastSalePrice, error)
}

// PurchaseSvc records purchases.
type PurchaseSvc interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// ReturnSvc records sales and purchase returns.
type ReturnSvc interface {
	CreateSalesReturn(ctx context.Context, req dto.CreateReturnRequest) (*domain.SalesReturn, error)
	ListSalesReturns(ctx context.Context) ([]domain.SalesReturn, error)
	CreatePurchaseReturn(ctx context.Context, req dto.CreateReturnRequest) (*domain.PurchaseReturn, error)
	ListPurchaseReturns(ctx context.Context) ([]domain.PurchaseReturn, error)
}

// PaymentSvc records payments and their ledger side effect.
type PaymentSvc interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// ExpenseSvc records expenses.
type ExpenseSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// LedgerSvc posts bookkeeping transactions and serves the ledger query.
type LedgerSvc interface {
	PostTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, []domain.JournalEntry, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, []domain.JournalEntry, error)
	QueryLedger(ctx context.Context, params dto.LedgerQueryParams) ([]domain.LedgerLine, error)
}

// ReportingSvc computes on-demand reports.
type ReportingSvc interface {
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)
}

// ServiceContainer holds all service interfaces for route registration.
type ServiceContainer struct {
	Account   AccountSvc
	Chart     ChartSvc
	Product   ProductSvc
	Category  CategorySvc
	Supplier  SupplierSvc
	Sale      SaleSvc
	Purchase  PurchaseSvc
	Return    ReturnSvc
	Payment   PaymentSvc
	Expense   ExpenseSvc
	Ledger    LedgerSvc
	Reporting ReportingSvc
}
