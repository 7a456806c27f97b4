// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// CreatePropertyRequest represents the request body for property creation.
type CreatePropertyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// PropertyResponse represents a single property in API responses.
type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PropertyListResponse represents the response for listing properties.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// ToPropertyResponse converts a Property entity to a PropertyResponse DTO.
func ToPropertyResponse(property *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:        property.ID.String(),
		Name:      property.Name,
		CreatedAt: property.CreatedAt,
	}
}

// ToPropertyListResponse converts a property slice to a list response DTO.
func ToPropertyListResponse(properties []*entity.Property) PropertyListResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = ToPropertyResponse(property)
	}
	return PropertyListResponse{
		Properties: responses,
	}
}
