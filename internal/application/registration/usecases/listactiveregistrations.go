package usecases

import (
	"context"
	"fmt"

	"gympoint/internal/application/registration/dto"
	"gympoint/internal/domain/registration"
	"gympoint/internal/shared/errors"
	"gympoint/internal/shared/logger"
)

type ListActiveRegistrationsQuery struct {
	StudentID uint
}

// ListActiveRegistrationsUseCase returns a student's registrations that have
// not been cancelled. The student is not looked up: an unknown student simply
// has no registrations.
type ListActiveRegistrationsUseCase struct {
	registrationRepo registration.Repository
	logger           logger.Interface
}

func NewListActiveRegistrationsUseCase(registrationRepo registration.Repository, logger logger.Interface) *ListActiveRegistrationsUseCase {
	return &ListActiveRegistrationsUseCase{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

func (uc *ListActiveRegistrationsUseCase) Execute(ctx context.Context, query ListActiveRegistrationsQuery) ([]*dto.RegistrationDTO, error) {
	if query.StudentID == 0 {
		return nil, errors.NewValidationError("invalid student ID")
	}

	registrations, err := uc.registrationRepo.ListActiveByStudentID(ctx, query.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to list registrations", "student_id", query.StudentID, "error", err)
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	uc.logger.Debugw("active registrations listed", "student_id", query.StudentID, "count", len(registrations))

	return dto.ToRegistrationDTOs(registrations), nil
}
