package services

import (
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Chart:     NewChartService(repos.ChartRepo),
		Product:   NewProductService(repos.ProductRepo),
		Category:  NewCategoryService(repos.CategoryRepo),
		Supplier:  NewSupplierService(repos.SupplierRepo),
		Sale:      NewSaleService(repos.SaleRepo),
		Purchase:  NewPurchaseService(repos.PurchaseRepo),
		Return:    NewReturnService(repos.ReturnRepo),
		Payment:   NewPaymentService(repos.PaymentRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo),
		Ledger:    NewLedgerService(repos.JournalRepo),
		Reporting: NewReportingService(repos.AccountRepo),
	}
}
