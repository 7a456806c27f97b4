// Package category contains category registry use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// RenameCategoryInput represents the input for renaming categories by the
// (old name, type, property) triple.
type RenameCategoryInput struct {
	OldName  string
	NewName  string
	Type     entity.CategoryType
	Property string
}

// RenameCategoryOutput reports how many categories matched the triple.
// Zero matches is a silent no-op, not an error.
type RenameCategoryOutput struct {
	Matched int
}

// RenameCategoryUseCase handles category renaming logic.
type RenameCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewRenameCategoryUseCase creates a new RenameCategoryUseCase instance.
func NewRenameCategoryUseCase(categoryRepo adapter.CategoryRepository) *RenameCategoryUseCase {
	return &RenameCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute renames every category whose name, type, and property scope
// match the triple. Renaming to the same name is a no-op. Built-in
// categories are not registry entries and cannot be renamed here.
func (uc *RenameCategoryUseCase) Execute(ctx context.Context, input RenameCategoryInput) (*RenameCategoryOutput, error) {
	newName := strings.TrimSpace(input.NewName)
	if newName == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameBlank,
			"category name must not be blank",
			domainerror.ErrCategoryNameBlank,
		)
	}

	if newName == input.OldName {
		return &RenameCategoryOutput{Matched: 0}, nil
	}

	if entity.IsBuiltinCategory(input.OldName, input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeBuiltinCategoryImmutable,
			"built-in categories cannot be renamed",
			domainerror.ErrBuiltinCategoryImmutable,
		)
	}

	categories, err := uc.categoryRepo.FindByType(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	matched := 0
	for _, category := range categories {
		if category.Name != input.OldName || !category.AppliesTo(input.Property) {
			continue
		}
		category.Name = newName
		if err := uc.categoryRepo.Update(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to rename category: %w", err)
		}
		matched++
	}

	return &RenameCategoryOutput{Matched: matched}, nil
}
