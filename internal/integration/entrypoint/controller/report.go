// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rental-ops/backend/internal/application/usecase/report"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
	"github.com/rental-ops/backend/internal/integration/entrypoint/dto"
)

// ReportController handles statement report endpoints.
type ReportController struct {
	queueStatementUseCase *report.QueueMonthlyStatementUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(queueStatementUseCase *report.QueueMonthlyStatementUseCase) *ReportController {
	return &ReportController{
		queueStatementUseCase: queueStatementUseCase,
	}
}

// QueueMonthlyStatement handles POST /reports/monthly-statement requests.
// The statement is queued for asynchronous delivery by the report worker.
func (c *ReportController) QueueMonthlyStatement(ctx *gin.Context) {
	var req dto.QueueMonthlyStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingRecipient),
		})
		return
	}

	output, err := c.queueStatementUseCase.Execute(ctx.Request.Context(), report.QueueMonthlyStatementInput{
		PropertyName:   req.Property,
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.QueueMonthlyStatementResponse{
		Queued:      true,
		PeriodLabel: output.PeriodLabel,
	})
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusInternalServerError
		if reportErr.Code == domainerror.ErrCodeMissingRecipient || reportErr.Code == domainerror.ErrCodeInvalidTemplate {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		statusCode := http.StatusInternalServerError
		if propErr.Code == domainerror.ErrCodePropertyNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: propErr.Message,
			Code:  string(propErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
