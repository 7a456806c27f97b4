// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (income or expense).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// ScopeAll is the filter value meaning "no property scoping".
// Registry reordering against ScopeAll is a documented no-op.
const ScopeAll = "all"

// Category represents a user-defined transaction category scoped to one
// or more properties. Position orders categories of the same type for
// display; lower positions come first.
type Category struct {
	ID         uuid.UUID
	Name       string
	Type       CategoryType
	Properties []string // property names this category applies to
	Position   int
	CreatedAt  time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, properties []string, position int) *Category {
	return &Category{
		ID:         uuid.New(),
		Name:       name,
		Type:       categoryType,
		Properties: properties,
		Position:   position,
		CreatedAt:  time.Now().UTC(),
	}
}

// AppliesTo reports whether the category is in scope for the given
// property name.
func (c *Category) AppliesTo(property string) bool {
	for _, p := range c.Properties {
		if p == property {
			return true
		}
	}
	return false
}

// Built-in categories are a static fallback merged ahead of registry
// entries at query time. They are never created, renamed, or deleted
// through the registry.
var (
	BuiltinIncomeCategories = []string{
		"Booking Revenue",
		"Cleaning Fees",
		"Pet Fees",
		"Other Income",
	}

	BuiltinExpenseCategories = []string{
		"Mortgage",
		"Utilities",
		"Insurance",
		"Property Tax",
		"Repairs",
		"Supplies",
		"Management Fees",
		"Other Expenses",
	}
)

// BuiltinCategories returns the static fallback list for the given type.
func BuiltinCategories(categoryType CategoryType) []string {
	if categoryType == CategoryTypeIncome {
		return BuiltinIncomeCategories
	}
	return BuiltinExpenseCategories
}

// IsBuiltinCategory reports whether name is one of the static fallback
// categories for the given type.
func IsBuiltinCategory(name string, categoryType CategoryType) bool {
	for _, b := range BuiltinCategories(categoryType) {
		if b == name {
			return true
		}
	}
	return false
}
