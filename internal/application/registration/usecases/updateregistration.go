package usecases

import (
	"context"
	"fmt"
	"time"

	"gympoint/internal/application/registration/dto"
	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/registration"
	"gympoint/internal/shared/biztime"
	"gympoint/internal/shared/errors"
	"gympoint/internal/shared/logger"
)

// UpdateRegistrationCommand moves a registration onto another plan or start
// date. Nil fields keep the registration's current value.
type UpdateRegistrationCommand struct {
	RegistrationID uint
	PlanID         *uint
	StartDate      *time.Time
}

type UpdateRegistrationUseCase struct {
	registrationRepo registration.Repository
	planRepo         plan.Repository
	logger           logger.Interface
	now              func() time.Time
}

func NewUpdateRegistrationUseCase(
	registrationRepo registration.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *UpdateRegistrationUseCase {
	return &UpdateRegistrationUseCase{
		registrationRepo: registrationRepo,
		planRepo:         planRepo,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

func (uc *UpdateRegistrationUseCase) Execute(ctx context.Context, cmd UpdateRegistrationCommand) (*dto.RegistrationTermsDTO, error) {
	uc.logger.Infow("executing update registration use case", "registration_id", cmd.RegistrationID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid update registration command", "error", err)
		return nil, err
	}

	existing, err := uc.registrationRepo.GetByID(ctx, cmd.RegistrationID)
	if err != nil {
		uc.logger.Errorw("failed to get registration", "registration_id", cmd.RegistrationID, "error", err)
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError(msgRegistrationNotFound)
	}

	planID := existing.PlanID()
	if cmd.PlanID != nil {
		planID = *cmd.PlanID
	}

	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError(msgPlanNotFound)
	}

	start := existing.StartDate()
	if cmd.StartDate != nil {
		start = *cmd.StartDate
	}

	now := uc.now()
	terms, err := registration.CalculateTerms(start, p, now)
	if err != nil {
		return nil, termsError(err)
	}

	if err := existing.Reschedule(p.ID(), terms, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.registrationRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update registration", "registration_id", existing.ID(), "error", err)
		return nil, fmt.Errorf("failed to update registration: %w", err)
	}

	uc.logger.Infow("registration updated successfully",
		"registration_id", existing.ID(),
		"plan_id", p.ID(),
		"end_date", terms.EndDate,
	)

	return dto.ToRegistrationTermsDTO(existing), nil
}

func (uc *UpdateRegistrationUseCase) validateCommand(cmd UpdateRegistrationCommand) error {
	if cmd.RegistrationID == 0 {
		return errors.NewValidationError(msgUpdateValidationFailed, "registration id is required")
	}
	if cmd.PlanID != nil && *cmd.PlanID == 0 {
		return errors.NewValidationError(msgUpdateValidationFailed, "plan_id must be a positive integer")
	}
	if cmd.StartDate != nil && cmd.StartDate.IsZero() {
		return errors.NewValidationError(msgUpdateValidationFailed, "start_date must be a valid date")
	}
	return nil
}
