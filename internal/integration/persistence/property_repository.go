// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
	"github.com/rental-ops/backend/internal/integration/persistence/model"
)

// propertyRepository implements the adapter.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository(db *gorm.DB) adapter.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create creates a new property in the database.
func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	result := r.db.WithContext(ctx).Create(propertyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every property ordered by name.
func (r *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	var propertyModels []model.PropertyModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&propertyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	properties := make([]*entity.Property, len(propertyModels))
	for i, pm := range propertyModels {
		properties[i] = pm.ToEntity()
	}
	return properties, nil
}

// FindByName retrieves a property by its name.
func (r *propertyRepository) FindByName(ctx context.Context, name string) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&propertyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPropertyNotFound
		}
		return nil, result.Error
	}
	return propertyModel.ToEntity(), nil
}

// ExistsByName checks whether a property with the given name exists.
func (r *propertyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a property from the database.
func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
