// Package category contains category registry use cases.
package category

import (
	"context"
	"fmt"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for deleting categories by the
// (name, type, property) triple.
type DeleteCategoryInput struct {
	Name     string
	Type     entity.CategoryType
	Property string
}

// DeleteCategoryOutput reports how many categories matched the triple.
// Zero matches is a silent no-op, not an error.
type DeleteCategoryOutput struct {
	Matched int
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute removes every category whose name, type, and property scope
// match the triple. Built-in categories cannot be deleted.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if entity.IsBuiltinCategory(input.Name, input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeBuiltinCategoryImmutable,
			"built-in categories cannot be deleted",
			domainerror.ErrBuiltinCategoryImmutable,
		)
	}

	categories, err := uc.categoryRepo.FindByType(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	matched := 0
	for _, category := range categories {
		if category.Name != input.Name || !category.AppliesTo(input.Property) {
			continue
		}
		if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
			return nil, fmt.Errorf("failed to delete category: %w", err)
		}
		matched++
	}

	return &DeleteCategoryOutput{Matched: matched}, nil
}
