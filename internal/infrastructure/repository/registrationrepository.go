package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gympoint/internal/domain/registration"
	"gympoint/internal/infrastructure/persistence/mappers"
	"gympoint/internal/infrastructure/persistence/models"
	"gympoint/internal/shared/db"
	"gympoint/internal/shared/logger"
)

type RegistrationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RegistrationMapper
	logger logger.Interface
}

func NewRegistrationRepository(db *gorm.DB, logger logger.Interface) registration.Repository {
	return &RegistrationRepositoryImpl{
		db:     db,
		mapper: mappers.NewRegistrationMapper(),
		logger: logger,
	}
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, entity *registration.Registration) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Omit("Student", "Plan").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create registration", "error", err,
			"student_id", entity.StudentID(), "plan_id", entity.PlanID())
		return fmt.Errorf("failed to create registration: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("registration created", "registration_id", model.ID, "student_id", model.StudentID)
	return nil
}

func (r *RegistrationRepositoryImpl) GetByID(ctx context.Context, id uint) (*registration.Registration, error) {
	var model models.RegistrationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get registration by ID", "error", err, "registration_id", id)
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *RegistrationRepositoryImpl) GetByIDWithDetails(ctx context.Context, id uint) (*registration.Details, error) {
	var model models.RegistrationModel
	err := r.db.WithContext(ctx).
		Preload("Student", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "email", "created_at", "updated_at")
		}).
		Preload("Plan").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get registration details", "error", err, "registration_id", id)
		return nil, fmt.Errorf("failed to get registration details: %w", err)
	}

	return r.mapper.ToDetails(&model)
}

func (r *RegistrationRepositoryImpl) ListActiveByStudentID(ctx context.Context, studentID uint) ([]*registration.Registration, error) {
	var rows []*models.RegistrationModel
	err := r.db.WithContext(ctx).
		Scopes(db.ByStudent(studentID), db.NotCancelled(), db.OrderByID()).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list active registrations", "error", err, "student_id", studentID)
		return nil, fmt.Errorf("failed to list active registrations: %w", err)
	}

	return r.mapper.ToEntities(rows)
}

func (r *RegistrationRepositoryImpl) Update(ctx context.Context, entity *registration.Registration) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"plan_id":      model.PlanID,
			"start_date":   model.StartDate,
			"end_date":     model.EndDate,
			"price":        model.Price,
			"currency":     model.Currency,
			"cancelled_at": model.CancelledAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update registration", "error", result.Error, "registration_id", entity.ID())
		return fmt.Errorf("failed to update registration: %w", result.Error)
	}
	return nil
}
