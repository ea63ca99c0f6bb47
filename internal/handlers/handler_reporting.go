package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
)

// reportingHandler handles HTTP requests for on-demand reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)
	rg.GET("/balance-sheet", h.getBalanceSheet)
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bs, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs))
}
