package category

import (
	"context"
	"errors"
	"testing"

	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

func TestRenameCategory(t *testing.T) {
	t.Run("renames only categories scoped to the property", func(t *testing.T) {
		lakehouse := cat("Deep Clean", entity.CategoryTypeExpense, "Lakehouse")
		cabin := cat("Deep Clean", entity.CategoryTypeExpense, "Cabin")
		repo := &fakeCategoryRepo{categories: []*entity.Category{lakehouse, cabin}}

		uc := NewRenameCategoryUseCase(repo)
		output, err := uc.Execute(context.Background(), RenameCategoryInput{
			OldName:  "Deep Clean",
			NewName:  "Turnover Clean",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Matched != 1 {
			t.Errorf("expected 1 match, got %d", output.Matched)
		}
		if lakehouse.Name != "Turnover Clean" {
			t.Errorf("Lakehouse category not renamed: %q", lakehouse.Name)
		}
		if cabin.Name != "Deep Clean" {
			t.Errorf("Cabin category must be untouched, got %q", cabin.Name)
		}
	})

	t.Run("zero matches is a silent no-op", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewRenameCategoryUseCase(repo)
		output, err := uc.Execute(context.Background(), RenameCategoryInput{
			OldName:  "Ghost",
			NewName:  "Phantom",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Matched != 0 {
			t.Errorf("expected 0 matches, got %d", output.Matched)
		}
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		existing := cat("Deep Clean", entity.CategoryTypeExpense, "Lakehouse")
		repo := &fakeCategoryRepo{categories: []*entity.Category{existing}}
		uc := NewRenameCategoryUseCase(repo)
		output, err := uc.Execute(context.Background(), RenameCategoryInput{
			OldName:  "Deep Clean",
			NewName:  "Deep Clean",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Matched != 0 {
			t.Errorf("expected 0 matches, got %d", output.Matched)
		}
	})

	t.Run("rejects blank new name", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewRenameCategoryUseCase(repo)
		_, err := uc.Execute(context.Background(), RenameCategoryInput{
			OldName:  "Deep Clean",
			NewName:  " ",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if !errors.Is(err, domainerror.ErrCategoryNameBlank) {
			t.Errorf("expected ErrCategoryNameBlank, got %v", err)
		}
	})

	t.Run("rejects renaming a built-in category", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewRenameCategoryUseCase(repo)
		_, err := uc.Execute(context.Background(), RenameCategoryInput{
			OldName:  "Mortgage",
			NewName:  "Loan",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if !errors.Is(err, domainerror.ErrBuiltinCategoryImmutable) {
			t.Errorf("expected ErrBuiltinCategoryImmutable, got %v", err)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("deletes only categories scoped to the property", func(t *testing.T) {
		lakehouse := cat("Deep Clean", entity.CategoryTypeExpense, "Lakehouse")
		cabin := cat("Deep Clean", entity.CategoryTypeExpense, "Cabin")
		repo := &fakeCategoryRepo{categories: []*entity.Category{lakehouse, cabin}}

		uc := NewDeleteCategoryUseCase(repo)
		output, err := uc.Execute(context.Background(), DeleteCategoryInput{
			Name:     "Deep Clean",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Matched != 1 {
			t.Errorf("expected 1 match, got %d", output.Matched)
		}
		if len(repo.categories) != 1 || repo.categories[0] != cabin {
			t.Errorf("Cabin category must survive, got %v", names(repo.categories))
		}
	})

	t.Run("zero matches is a silent no-op", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewDeleteCategoryUseCase(repo)
		output, err := uc.Execute(context.Background(), DeleteCategoryInput{
			Name:     "Ghost",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Matched != 0 {
			t.Errorf("expected 0 matches, got %d", output.Matched)
		}
	})

	t.Run("rejects deleting a built-in category", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewDeleteCategoryUseCase(repo)
		_, err := uc.Execute(context.Background(), DeleteCategoryInput{
			Name:     "Utilities",
			Type:     entity.CategoryTypeExpense,
			Property: "Lakehouse",
		})
		if !errors.Is(err, domainerror.ErrBuiltinCategoryImmutable) {
			t.Errorf("expected ErrBuiltinCategoryImmutable, got %v", err)
		}
	})
}

func TestListCategories_BuiltinsFirstThenRegistry(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*entity.Category{
		cat("Hot Tub Service", entity.CategoryTypeExpense, "Lakehouse"),
		cat("Mortgage", entity.CategoryTypeExpense, "Lakehouse"), // shadows the built-in, not repeated
		cat("Snow Removal", entity.CategoryTypeExpense, "Cabin"),
	}}

	uc := NewListCategoriesUseCase(repo)
	output, err := uc.Execute(context.Background(), ListCategoriesInput{
		Type:     entity.CategoryTypeExpense,
		Property: "Lakehouse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := append(append([]string{}, entity.BuiltinExpenseCategories...), "Hot Tub Service")
	if len(output.Names) != len(want) {
		t.Fatalf("expected %d names, got %d: %v", len(want), len(output.Names), output.Names)
	}
	for i, name := range want {
		if output.Names[i] != name {
			t.Errorf("names[%d]: expected %q, got %q", i, name, output.Names[i])
		}
	}
	if len(output.Registry) != 2 {
		t.Errorf("expected 2 scoped registry entries, got %d", len(output.Registry))
	}
}
