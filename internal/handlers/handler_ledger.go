package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
)

// ledgerHandler handles HTTP requests for transactions and the ledger query.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers transaction and ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.postTransaction)
		transactions.GET("/:id", h.getTransactionByID)
	}

	rg.GET("/ledger", h.queryLedger)
}

func (h *ledgerHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, entries, err := h.ledgerService.PostTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.GetTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Entries:     dto.ToJournalEntryResponses(entries),
	})
}

func (h *ledgerHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txn, entries, err := h.ledgerService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.GetTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Entries:     dto.ToJournalEntryResponses(entries),
	})
}

// queryLedger lists journal entries, optionally filtered by ledger account,
// inclusive date range and entry type.
func (h *ledgerHandler) queryLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.LedgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for QueryLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	lines, err := h.ledgerService.QueryLedger(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to query ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerLineResponses(lines))
}
