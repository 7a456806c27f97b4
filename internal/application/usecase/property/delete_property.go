// Package property contains property registry use cases.
package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/rental-ops/backend/internal/application/adapter"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// DeletePropertyInput represents the input for property deletion.
type DeletePropertyInput struct {
	Name string
}

// DeletePropertyOutput reports whether the property existed. Deleting an
// absent property is a silent no-op.
type DeletePropertyOutput struct {
	Found bool
}

// DeletePropertyUseCase handles property deletion logic.
type DeletePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewDeletePropertyUseCase creates a new DeletePropertyUseCase instance.
func NewDeletePropertyUseCase(propertyRepo adapter.PropertyRepository) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute removes a property by name. Transactions keep their property
// label; the join is by name and dangling labels are tolerated.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, input DeletePropertyInput) (*DeletePropertyOutput, error) {
	property, err := uc.propertyRepo.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return &DeletePropertyOutput{Found: false}, nil
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	if err := uc.propertyRepo.Delete(ctx, property.ID); err != nil {
		return nil, fmt.Errorf("failed to delete property: %w", err)
	}

	return &DeletePropertyOutput{Found: true}, nil
}
