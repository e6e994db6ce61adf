package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gympoint/internal/domain/student"
	"gympoint/internal/infrastructure/persistence/mappers"
	"gympoint/internal/infrastructure/persistence/models"
	"gympoint/internal/shared/logger"
)

type StudentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StudentMapper
	logger logger.Interface
}

func NewStudentRepository(db *gorm.DB, logger logger.Interface) student.Repository {
	return &StudentRepositoryImpl{
		db:     db,
		mapper: mappers.NewStudentMapper(),
		logger: logger,
	}
}

func (r *StudentRepositoryImpl) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get student by ID", "error", err, "student_id", id)
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
