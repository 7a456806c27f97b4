// Package category contains category registry use cases.
package category

import (
	"context"
	"fmt"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing category names for
// a type, optionally scoped to one property.
type ListCategoriesInput struct {
	Type     entity.CategoryType
	Property string // "" or "all" lists every scope
}

// ListCategoriesOutput represents the merged category view: built-in
// fallback names first, registry entries after, in registry order.
type ListCategoriesOutput struct {
	Names    []string
	Registry []*entity.Category
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute merges the static built-in list ahead of registry-sourced
// categories. Duplicate names already covered by the built-in list are
// not repeated.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	registry, err := uc.categoryRepo.FindByType(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	scoped := make([]*entity.Category, 0, len(registry))
	for _, category := range registry {
		if input.Property != "" && input.Property != entity.ScopeAll && !category.AppliesTo(input.Property) {
			continue
		}
		scoped = append(scoped, category)
	}

	names := make([]string, 0, len(scoped)+len(entity.BuiltinCategories(input.Type)))
	seen := make(map[string]bool)
	for _, builtin := range entity.BuiltinCategories(input.Type) {
		names = append(names, builtin)
		seen[builtin] = true
	}
	for _, category := range scoped {
		if seen[category.Name] {
			continue
		}
		names = append(names, category.Name)
		seen[category.Name] = true
	}

	return &ListCategoriesOutput{
		Names:    names,
		Registry: scoped,
	}, nil
}
