// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=50"`
	Type       string   `json:"type" binding:"required,oneof=expense income"`
	Properties []string `json:"properties" binding:"required,min=1"`
}

// RenameCategoryRequest represents the request body for category renaming.
type RenameCategoryRequest struct {
	OldName  string `json:"old_name" binding:"required"`
	NewName  string `json:"new_name" binding:"required,min=1,max=50"`
	Type     string `json:"type" binding:"required,oneof=expense income"`
	Property string `json:"property" binding:"required"`
}

// DeleteCategoryRequest represents the request body for category deletion.
type DeleteCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=expense income"`
	Property string `json:"property" binding:"required"`
}

// ReorderCategoriesRequest represents the request body for category reordering.
type ReorderCategoriesRequest struct {
	Type      string `json:"type" binding:"required,oneof=expense income"`
	Property  string `json:"property" binding:"required"`
	FromIndex int    `json:"from_index" binding:"min=0"`
	ToIndex   int    `json:"to_index" binding:"min=0"`
}

// CategoryResponse represents a single registry category in API responses.
type CategoryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Properties []string  `json:"properties"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategoryListResponse represents the merged category view: built-in names
// first, then registry entries.
type CategoryListResponse struct {
	Names    []string           `json:"names"`
	Registry []CategoryResponse `json:"registry"`
}

// CategoryMatchResponse reports how many categories an operation matched.
type CategoryMatchResponse struct {
	Matched int `json:"matched"`
}

// ToCategoryResponse converts a Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID.String(),
		Name:       category.Name,
		Type:       string(category.Type),
		Properties: category.Properties,
		Position:   category.Position,
		CreatedAt:  category.CreatedAt,
	}
}

// ToCategoryListResponse converts the merged category view to a list response DTO.
func ToCategoryListResponse(names []string, registry []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(registry))
	for i, category := range registry {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Names:    names,
		Registry: responses,
	}
}
