// Package property contains property registry use cases.
package property

import (
	"context"
	"fmt"
	"strings"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// MaxPropertyNameLength is the maximum allowed length for property names.
const MaxPropertyNameLength = 100

// CreatePropertyInput represents the input for property creation.
type CreatePropertyInput struct {
	Name string
}

// CreatePropertyOutput represents the output of property creation.
type CreatePropertyOutput struct {
	Property *entity.Property
}

// CreatePropertyUseCase handles property creation logic.
type CreatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(propertyRepo adapter.PropertyRepository) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute performs the property creation. Property names are unique; the
// name also serves as the join key on transactions, so the reserved
// "All Properties" label is rejected.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*CreatePropertyOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameBlank,
			"property name must not be blank",
			domainerror.ErrPropertyNameBlank,
		)
	}

	if len(name) > MaxPropertyNameLength {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameBlank,
			fmt.Sprintf("property name must not exceed %d characters", MaxPropertyNameLength),
			domainerror.ErrPropertyNameBlank,
		)
	}

	if name == entity.AllProperties {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameExists,
			"property name is reserved",
			domainerror.ErrPropertyNameExists,
		)
	}

	exists, err := uc.propertyRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check property name: %w", err)
	}
	if exists {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNameExists,
			"a property with this name already exists",
			domainerror.ErrPropertyNameExists,
		)
	}

	property := entity.NewProperty(name)

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return &CreatePropertyOutput{
		Property: property,
	}, nil
}
