package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Account)
	registerChartRoutes(v1, services.Chart)
	registerReportingRoutes(v1, services.Reporting)
	registerProductRoutes(v1, services.Product)
	registerCategoryRoutes(v1, services.Category)
	registerSupplierRoutes(v1, services.Supplier)
	registerSaleRoutes(v1, services.Sale)
	registerPurchaseRoutes(v1, services.Purchase)
	registerReturnRoutes(v1, services.Return)
	registerPaymentRoutes(v1, services.Payment)
	registerExpenseRoutes(v1, services.Expense)
	registerLedgerRoutes(v1, services.Ledger)
}
