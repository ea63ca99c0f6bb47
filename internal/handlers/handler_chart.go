package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
)

// chartHandler handles HTTP requests for account groups and ledger accounts.
type chartHandler struct {
	chartService portssvc.ChartSvc
}

func newChartHandler(cs portssvc.ChartSvc) *chartHandler {
	return &chartHandler{chartService: cs}
}

// registerChartRoutes registers routes for account groups and ledger accounts.
func registerChartRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvc) {
	h := newChartHandler(chartService)

	groups := rg.Group("/account-groups")
	{
		groups.POST("", h.createAccountGroup)
		groups.GET("", h.listAccountGroups)
	}

	ledgers := rg.Group("/ledger-accounts")
	{
		ledgers.POST("", h.createLedgerAccount)
		ledgers.GET("", h.listLedgerAccounts)
		ledgers.DELETE("/:id", h.deleteLedgerAccount)
	}
}

func (h *chartHandler) createAccountGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccountGroup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	group, err := h.chartService.CreateAccountGroup(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account group")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountGroupResponse(group))
}

func (h *chartHandler) listAccountGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	groups, err := h.chartService.ListAccountGroups(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list account groups")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountGroupResponses(groups))
}

func (h *chartHandler) createLedgerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedgerAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ledger, err := h.chartService.CreateLedgerAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create ledger account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerAccountResponse(ledger))
}

func (h *chartHandler) listLedgerAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgers, err := h.chartService.ListLedgerAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list ledger accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerAccountResponses(ledgers))
}

func (h *chartHandler) deleteLedgerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.chartService.DeleteLedgerAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete ledger account")
		return
	}
	c.Status(http.StatusNoContent)
}
