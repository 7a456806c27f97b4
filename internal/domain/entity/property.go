// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a rental property. Transactions and categories
// reference properties by Name, not ID; the name is the join key.
type Property struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewProperty creates a new Property entity.
func NewProperty(name string) *Property {
	return &Property{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
