// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	"github.com/rental-ops/backend/internal/integration/persistence/model"
)

// reportQueueRepository implements the adapter.ReportQueueRepository interface.
type reportQueueRepository struct {
	db *gorm.DB
}

// NewReportQueueRepository creates a new report queue repository instance.
func NewReportQueueRepository(db *gorm.DB) adapter.ReportQueueRepository {
	return &reportQueueRepository{
		db: db,
	}
}

// Create enqueues a new report job.
func (r *reportQueueRepository) Create(ctx context.Context, job *entity.ReportJob) error {
	jobModel := model.ReportQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetPendingJobs retrieves up to limit jobs that are ready to process,
// oldest scheduled first.
func (r *reportQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReportJob, error) {
	var jobModels []model.ReportQueueModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.ReportStatusPending)).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.ReportJob, len(jobModels))
	for i, jm := range jobModels {
		jobs[i] = jm.ToEntity()
	}
	return jobs, nil
}

// Update persists job state changes (status, attempts, errors).
func (r *reportQueueRepository) Update(ctx context.Context, job *entity.ReportJob) error {
	jobModel := model.ReportQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(jobModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
