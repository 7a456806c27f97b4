// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rental-ops/backend/internal/application/usecase/ledger"
	"github.com/rental-ops/backend/internal/domain/entity"
	"github.com/rental-ops/backend/internal/integration/entrypoint/dto"
)

// LedgerController handles aggregated ledger endpoints: chart time series,
// summary-card roll-ups, and the delimited text export.
type LedgerController struct {
	timeSeriesUseCase *ledger.GetTimeSeriesUseCase
	summaryUseCase    *ledger.GetPropertySummaryUseCase
	exportUseCase     *ledger.ExportTransactionsUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	timeSeriesUseCase *ledger.GetTimeSeriesUseCase,
	summaryUseCase *ledger.GetPropertySummaryUseCase,
	exportUseCase *ledger.ExportTransactionsUseCase,
) *LedgerController {
	return &LedgerController{
		timeSeriesUseCase: timeSeriesUseCase,
		summaryUseCase:    summaryUseCase,
		exportUseCase:     exportUseCase,
	}
}

// TimeSeries handles GET /ledger/time-series requests.
func (c *LedgerController) TimeSeries(ctx *gin.Context) {
	input := ledger.GetTimeSeriesInput{
		Property: ctx.Query("property"),
		Type:     ctx.Query("type"),
	}
	input.DateFrom, input.DateTo = parseDateRange(ctx)

	output, err := c.timeSeriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build time series",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeSeriesResponse(output.Series))
}

// Summary handles GET /ledger/summary requests. The property query
// parameter names the property whose roll-ups are computed.
func (c *LedgerController) Summary(ctx *gin.Context) {
	property := ctx.DefaultQuery("property", entity.AllProperties)

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), ledger.GetPropertySummaryInput{
		Property: property,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertySummaryResponse(property, output.Metrics))
}

// Export handles GET /ledger/export requests and streams the filtered
// subset as a delimited text attachment.
func (c *LedgerController) Export(ctx *gin.Context) {
	input := ledger.ExportTransactionsInput{
		Property: ctx.Query("property"),
		Type:     ctx.Query("type"),
	}
	input.DateFrom, input.DateTo = parseDateRange(ctx)

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export transactions",
		})
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(output.Content))
}

// parseDateRange reads the optional from/to query parameters. Unparseable
// values are treated as absent.
func parseDateRange(ctx *gin.Context) (from *time.Time, to *time.Time) {
	if fromStr := ctx.Query("from"); fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", fromStr); err == nil {
			from = &parsed
		}
	}
	if toStr := ctx.Query("to"); toStr != "" {
		if parsed, err := time.Parse("2006-01-02", toStr); err == nil {
			to = &parsed
		}
	}
	return from, to
}
