package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByType(_ context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = category
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) UpdatePositions(_ context.Context, positions map[uuid.UUID]int) error {
	for _, c := range r.categories {
		if pos, ok := positions[c.ID]; ok {
			c.Position = pos
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) MaxPosition(_ context.Context, categoryType entity.CategoryType) (int, error) {
	max := -1
	for _, c := range r.categories {
		if c.Type == categoryType && c.Position > max {
			max = c.Position
		}
	}
	return max, nil
}

func TestCreateCategory(t *testing.T) {
	t.Run("creates category appended after existing positions", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		existing := cat("Lawn Care", entity.CategoryTypeExpense, "Lakehouse")
		existing.Position = 3
		repo.categories = append(repo.categories, existing)

		uc := NewCreateCategoryUseCase(repo)
		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name:       "Hot Tub Service",
			Type:       entity.CategoryTypeExpense,
			Properties: []string{"Lakehouse"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Position != 4 {
			t.Errorf("expected position 4, got %d", output.Category.Position)
		}
		if len(repo.categories) != 2 {
			t.Errorf("expected 2 persisted categories, got %d", len(repo.categories))
		}
	})

	t.Run("first category of a type starts at position zero", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)
		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name:       "Firewood",
			Type:       entity.CategoryTypeExpense,
			Properties: []string{"Cabin"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Position != 0 {
			t.Errorf("expected position 0, got %d", output.Category.Position)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)
		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name:       "   ",
			Type:       entity.CategoryTypeExpense,
			Properties: []string{"Cabin"},
		})
		if !errors.Is(err, domainerror.ErrCategoryNameBlank) {
			t.Errorf("expected ErrCategoryNameBlank, got %v", err)
		}
		if len(repo.categories) != 0 {
			t.Error("nothing should be persisted on validation failure")
		}
	})

	t.Run("rejects name over length limit", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)
		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name:       strings.Repeat("x", MaxCategoryNameLength+1),
			Type:       entity.CategoryTypeExpense,
			Properties: []string{"Cabin"},
		})
		if !errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			t.Errorf("expected ErrCategoryNameTooLong, got %v", err)
		}
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)
		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name:       "Firewood",
			Type:       entity.CategoryType("transfer"),
			Properties: []string{"Cabin"},
		})
		if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
			t.Errorf("expected ErrInvalidCategoryType, got %v", err)
		}
	})

	t.Run("rejects empty property scope", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)
		_, err := uc.Execute(context.Background(), CreateCategoryInput{
			Name: "Firewood",
			Type: entity.CategoryTypeExpense,
		})
		if !errors.Is(err, domainerror.ErrCategoryScopeEmpty) {
			t.Errorf("expected ErrCategoryScopeEmpty, got %v", err)
		}
	})
}
