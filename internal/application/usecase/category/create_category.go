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

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name       string
	Type       entity.CategoryType
	Properties []string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. A blank name or an empty
// property scope is rejected; nothing partial is ever persisted.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameBlank,
			"category name must not be blank",
			domainerror.ErrCategoryNameBlank,
		)
	}

	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	if !isValidCategoryType(input.Type) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if len(input.Properties) == 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryScopeEmpty,
			"category must be scoped to at least one property",
			domainerror.ErrCategoryScopeEmpty,
		)
	}

	// New categories are appended after existing ones of the same type.
	maxPosition, err := uc.categoryRepo.MaxPosition(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to determine category position: %w", err)
	}

	category := entity.NewCategory(name, input.Type, input.Properties, maxPosition+1)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// isValidCategoryType validates the category type.
func isValidCategoryType(categoryType entity.CategoryType) bool {
	return categoryType == entity.CategoryTypeIncome || categoryType == entity.CategoryTypeExpense
}
