// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rental-ops/backend/internal/application/usecase/category"
	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
	"github.com/rental-ops/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category registry endpoints.
type CategoryController struct {
	listUseCase    *category.ListCategoriesUseCase
	createUseCase  *category.CreateCategoryUseCase
	renameUseCase  *category.RenameCategoryUseCase
	deleteUseCase  *category.DeleteCategoryUseCase
	reorderUseCase *category.ReorderCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	renameUseCase *category.RenameCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	reorderUseCase *category.ReorderCategoriesUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		renameUseCase:  renameUseCase,
		deleteUseCase:  deleteUseCase,
		reorderUseCase: reorderUseCase,
	}
}

// List handles GET /categories requests. The type query parameter selects
// income or expense; property optionally narrows the registry scope.
func (c *CategoryController) List(ctx *gin.Context) {
	categoryType := entity.CategoryType(ctx.DefaultQuery("type", string(entity.CategoryTypeExpense)))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		Type:     categoryType,
		Property: ctx.Query("property"),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Names, output.Registry))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:       req.Name,
		Type:       entity.CategoryType(req.Type),
		Properties: req.Properties,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Rename handles PUT /categories/rename requests.
func (c *CategoryController) Rename(ctx *gin.Context) {
	var req dto.RenameCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	output, err := c.renameUseCase.Execute(ctx.Request.Context(), category.RenameCategoryInput{
		OldName:  req.OldName,
		NewName:  req.NewName,
		Type:     entity.CategoryType(req.Type),
		Property: req.Property,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryMatchResponse{Matched: output.Matched})
}

// Delete handles DELETE /categories requests. The target is identified by
// the (name, type, property) triple in the body.
func (c *CategoryController) Delete(ctx *gin.Context) {
	var req dto.DeleteCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		Name:     req.Name,
		Type:     entity.CategoryType(req.Type),
		Property: req.Property,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryMatchResponse{Matched: output.Matched})
}

// Reorder handles PUT /categories/reorder requests.
func (c *CategoryController) Reorder(ctx *gin.Context) {
	var req dto.ReorderCategoriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), category.ReorderCategoriesInput{
		Type:      entity.CategoryType(req.Type),
		Property:  req.Property,
		FromIndex: req.FromIndex,
		ToIndex:   req.ToIndex,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	responses := make([]dto.CategoryResponse, len(output.Categories))
	for i, cat := range output.Categories {
		responses[i] = dto.ToCategoryResponse(cat)
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": responses})
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := c.getStatusCodeForCategoryError(catErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeBuiltinCategoryImmutable:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameBlank,
		domainerror.ErrCodeCategoryScopeEmpty,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeMissingCategoryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
