package repository

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gympoint/internal/infrastructure/persistence/models"
	"gympoint/internal/infrastructure/queue"
	"gympoint/internal/shared/logger"
)

// FailedJobRepository stores dead-lettered queue jobs in the failed_jobs table.
type FailedJobRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewFailedJobRepository(db *gorm.DB, logger logger.Interface) *FailedJobRepository {
	return &FailedJobRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FailedJobRepository) Save(ctx context.Context, letter *queue.DeadLetter) error {
	model := &models.FailedJobModel{
		JobID:    letter.Job.ID,
		Queue:    letter.Job.Key,
		Payload:  datatypes.JSON(letter.Job.Payload),
		Attempts: letter.Job.Attempts,
		Error:    letter.Error,
		FailedAt: letter.FailedAt,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to store failed job", "error", err, "job_id", letter.Job.ID)
		return fmt.Errorf("failed to store failed job: %w", err)
	}

	r.logger.Warnw("job moved to failed_jobs", "job_id", letter.Job.ID, "queue", letter.Job.Key, "attempts", letter.Job.Attempts)
	return nil
}

// ListRecent returns up to limit failed jobs, newest first.
func (r *FailedJobRepository) ListRecent(ctx context.Context, limit int) ([]*models.FailedJobModel, error) {
	var rows []*models.FailedJobModel
	if err := r.db.WithContext(ctx).Order("failed_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list failed jobs: %w", err)
	}
	return rows, nil
}
