// Package category contains category registry use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
)

// ReorderCategoriesInput represents the input for reordering categories
// of one type within a single property's scope.
type ReorderCategoriesInput struct {
	Type      entity.CategoryType
	Property  string
	FromIndex int
	ToIndex   int
}

// ReorderCategoriesOutput represents the registry order after reordering.
type ReorderCategoriesOutput struct {
	Categories []*entity.Category
}

// ReorderCategoriesUseCase handles category reordering logic.
type ReorderCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderCategoriesUseCase creates a new ReorderCategoriesUseCase instance.
func NewReorderCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute reorders the categories scoped to the given property.
// Reordering against "all" properties is a documented no-op. Callers must
// not rely on absolute position stability outside the reordered subset:
// the result concatenates unscoped categories first, then the reordered
// scoped subset.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) (*ReorderCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindByType(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	reordered := ReorderScoped(categories, input.Property, input.FromIndex, input.ToIndex)

	positions := make(map[uuid.UUID]int, len(reordered))
	changed := false
	for i, category := range reordered {
		positions[category.ID] = i
		if category.Position != i {
			changed = true
		}
	}

	if changed {
		if err := uc.categoryRepo.UpdatePositions(ctx, positions); err != nil {
			return nil, fmt.Errorf("failed to persist category order: %w", err)
		}
		for i, category := range reordered {
			category.Position = i
		}
	}

	return &ReorderCategoriesOutput{Categories: reordered}, nil
}

// ReorderScoped partitions categories into those scoped to property and
// all others, moves the scoped element at fromIndex to toIndex, and
// re-concatenates others first, reordered subset after. It returns the
// input order unchanged when property is "all" or an index is out of
// range.
func ReorderScoped(categories []*entity.Category, property string, fromIndex, toIndex int) []*entity.Category {
	if property == entity.ScopeAll {
		return categories
	}

	scoped := make([]*entity.Category, 0, len(categories))
	others := make([]*entity.Category, 0, len(categories))
	for _, category := range categories {
		if category.AppliesTo(property) {
			scoped = append(scoped, category)
		} else {
			others = append(others, category)
		}
	}

	if fromIndex < 0 || fromIndex >= len(scoped) || toIndex < 0 || toIndex >= len(scoped) {
		return categories
	}

	moved := scoped[fromIndex]
	scoped = append(scoped[:fromIndex], scoped[fromIndex+1:]...)
	scoped = append(scoped[:toIndex], append([]*entity.Category{moved}, scoped[toIndex:]...)...)

	return append(others, scoped...)
}
