// Package property contains property registry use cases.
package property

import (
	"context"
	"fmt"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
)

// ListPropertiesOutput represents the output of listing properties.
type ListPropertiesOutput struct {
	Properties []*entity.Property
}

// ListPropertiesUseCase handles listing properties logic.
type ListPropertiesUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(propertyRepo adapter.PropertyRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute lists every property ordered by name.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context) (*ListPropertiesOutput, error) {
	properties, err := uc.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return &ListPropertiesOutput{
		Properties: properties,
	}, nil
}
