// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	"github.com/rental-ops/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every category ordered by position then creation time.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Order("position ASC, created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByType retrieves categories of the given type ordered by position
// then creation time.
func (r *categoryRepository) FindByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("type = ?", string(categoryType)).
		Order("position ASC, created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdatePositions persists display positions for the given category IDs.
func (r *categoryRepository) UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, position := range positions {
			result := tx.Model(&model.CategoryModel{}).
				Where("id = ?", id).
				Update("position", position)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// MaxPosition returns the highest position among categories of the given
// type, or -1 when none exist.
func (r *categoryRepository) MaxPosition(ctx context.Context, categoryType entity.CategoryType) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("type = ?", string(categoryType)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return -1, nil
	}

	var maxResult struct {
		Max int
	}
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("type = ?", string(categoryType)).
		Scan(&maxResult)
	if result.Error != nil {
		return 0, result.Error
	}
	return maxResult.Max, nil
}
