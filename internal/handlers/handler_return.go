package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
)

// returnHandler handles HTTP requests for sales and purchase returns.
type returnHandler struct {
	returnService portssvc.ReturnSvc
}

func newReturnHandler(rs portssvc.ReturnSvc) *returnHandler {
	return &returnHandler{returnService: rs}
}

// registerReturnRoutes registers routes for sales and purchase returns.
func registerReturnRoutes(rg *gin.RouterGroup, returnService portssvc.ReturnSvc) {
	h := newReturnHandler(returnService)

	salesReturns := rg.Group("/sales-returns")
	{
		salesReturns.POST("", h.createSalesReturn)
		salesReturns.GET("", h.listSalesReturns)
	}

	purchaseReturns := rg.Group("/purchase-returns")
	{
		purchaseReturns.POST("", h.createPurchaseReturn)
		purchaseReturns.GET("", h.listPurchaseReturns)
	}
}

func (h *returnHandler) createSalesReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalesReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ret, err := h.returnService.CreateSalesReturn(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create sales return")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSalesReturnResponse(ret))
}

func (h *returnHandler) listSalesReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rets, err := h.returnService.ListSalesReturns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list sales returns")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesReturnResponses(rets))
}

func (h *returnHandler) createPurchaseReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ret, err := h.returnService.CreatePurchaseReturn(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create purchase return")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseReturnResponse(ret))
}

func (h *returnHandler) listPurchaseReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rets, err := h.returnService.ListPurchaseReturns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list purchase returns")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseReturnResponses(rets))
}
