package category

import (
	"reflect"
	"testing"

	"github.com/rental-ops/backend/internal/domain/entity"
)

func cat(name string, categoryType entity.CategoryType, properties ...string) *entity.Category {
	return entity.NewCategory(name, categoryType, properties, 0)
}

func names(categories []*entity.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

func TestReorderScoped_MovesWithinScopedSubset(t *testing.T) {
	categories := []*entity.Category{
		cat("Lawn Care", entity.CategoryTypeExpense, "Lakehouse"),
		cat("Hot Tub Service", entity.CategoryTypeExpense, "Lakehouse"),
		cat("Snow Removal", entity.CategoryTypeExpense, "Cabin"),
		cat("Dock Maintenance", entity.CategoryTypeExpense, "Lakehouse"),
	}

	result := ReorderScoped(categories, "Lakehouse", 0, 2)

	// Others first, reordered scoped subset after.
	want := []string{"Snow Removal", "Hot Tub Service", "Dock Maintenance", "Lawn Care"}
	if got := names(result); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected order:\n got %v\nwant %v", got, want)
	}
}

func TestReorderScoped_AllPropertiesIsNoOp(t *testing.T) {
	categories := []*entity.Category{
		cat("Lawn Care", entity.CategoryTypeExpense, "Lakehouse"),
		cat("Snow Removal", entity.CategoryTypeExpense, "Cabin"),
	}
	before := names(categories)

	result := ReorderScoped(categories, entity.ScopeAll, 0, 1)

	if got := names(result); !reflect.DeepEqual(got, before) {
		t.Errorf("reorder against 'all' must leave order unchanged: got %v want %v", got, before)
	}
}

func TestReorderScoped_OutOfRangeIndexIsNoOp(t *testing.T) {
	categories := []*entity.Category{
		cat("Lawn Care", entity.CategoryTypeExpense, "Lakehouse"),
		cat("Hot Tub Service", entity.CategoryTypeExpense, "Lakehouse"),
	}
	before := names(categories)

	for _, pair := range [][2]int{{-1, 0}, {0, 5}, {2, 0}} {
		result := ReorderScoped(categories, "Lakehouse", pair[0], pair[1])
		if got := names(result); !reflect.DeepEqual(got, before) {
			t.Errorf("indexes %v: expected no-op, got %v", pair, got)
		}
	}
}

func TestReorderScoped_MultiPropertyCategoryIsScopedByMembership(t *testing.T) {
	shared := cat("Deep Clean", entity.CategoryTypeExpense, "Lakehouse", "Cabin")
	categories := []*entity.Category{
		cat("Lawn Care", entity.CategoryTypeExpense, "Lakehouse"),
		shared,
		cat("Snow Removal", entity.CategoryTypeExpense, "Cabin"),
	}

	result := ReorderScoped(categories, "Lakehouse", 0, 1)

	want := []string{"Snow Removal", "Deep Clean", "Lawn Care"}
	if got := names(result); !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected order:\n got %v\nwant %v", got, want)
	}
}
