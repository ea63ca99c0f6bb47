package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo  AccountRepository
	ChartRepo    ChartRepository
	JournalRepo  JournalRepository
	ProductRepo  ProductRepository
	CategoryRepo CategoryRepository
	SupplierRepo SupplierRepository
	SaleRepo     SaleRepository
	PurchaseRepo PurchaseRepository
	ReturnRepo   ReturnRepository
	PaymentRepo  PaymentRepository
	ExpenseRepo  ExpenseRepository
}
