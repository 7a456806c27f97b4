// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rental-ops/backend/internal/application/usecase/property"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
	"github.com/rental-ops/backend/internal/integration/entrypoint/dto"
)

// PropertyController handles property registry endpoints.
type PropertyController struct {
	listUseCase   *property.ListPropertiesUseCase
	createUseCase *property.CreatePropertyUseCase
	deleteUseCase *property.DeletePropertyUseCase
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	listUseCase *property.ListPropertiesUseCase,
	createUseCase *property.CreatePropertyUseCase,
	deleteUseCase *property.DeletePropertyUseCase,
) *PropertyController {
	return &PropertyController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /properties requests.
func (c *PropertyController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve properties",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(output.Properties))
}

// Create handles POST /properties requests.
func (c *PropertyController) Create(ctx *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodePropertyNameBlank),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), property.CreatePropertyInput{
		Name: req.Name,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(output.Property))
}

// Delete handles DELETE /properties/:name requests.
func (c *PropertyController) Delete(ctx *gin.Context) {
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), property.DeletePropertyInput{
		Name: ctx.Param("name"),
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	// Deleting an absent property is a no-op either way.
	_ = output
	ctx.Status(http.StatusNoContent)
}

// handlePropertyError handles property errors and returns appropriate HTTP responses.
func (c *PropertyController) handlePropertyError(ctx *gin.Context, err error) {
	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		statusCode := c.getStatusCodeForPropertyError(propErr.Code)
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

// getStatusCodeForPropertyError maps property error codes to HTTP status codes.
func (c *PropertyController) getStatusCodeForPropertyError(code domainerror.PropertyErrorCode) int {
	switch code {
	case domainerror.ErrCodePropertyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePropertyNameExists:
		return http.StatusConflict
	case domainerror.ErrCodePropertyNameBlank:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
