package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gympoint/internal/domain/plan"
	"gympoint/internal/infrastructure/persistence/mappers"
	"gympoint/internal/infrastructure/persistence/models"
	"gympoint/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
