package usecases

import (
	"context"
	"fmt"
	"time"

	"gympoint/internal/application/mail"
	"gympoint/internal/application/registration/dto"
	"gympoint/internal/domain/registration"
	"gympoint/internal/shared/biztime"
	"gympoint/internal/shared/errors"
	"gympoint/internal/shared/logger"
)

type CancelRegistrationCommand struct {
	RegistrationID uint
}

// CancelRegistrationUseCase soft-deletes a registration by stamping its
// cancellation time. Cancelling an already cancelled registration refreshes
// the timestamp and notifies the student again.
type CancelRegistrationUseCase struct {
	registrationRepo registration.Repository
	jobs             JobEnqueuer
	logger           logger.Interface
	now              func() time.Time
}

func NewCancelRegistrationUseCase(
	registrationRepo registration.Repository,
	jobs JobEnqueuer,
	logger logger.Interface,
) *CancelRegistrationUseCase {
	return &CancelRegistrationUseCase{
		registrationRepo: registrationRepo,
		jobs:             jobs,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

func (uc *CancelRegistrationUseCase) Execute(ctx context.Context, cmd CancelRegistrationCommand) (*dto.RegistrationDTO, error) {
	uc.logger.Infow("executing cancel registration use case", "registration_id", cmd.RegistrationID)

	if cmd.RegistrationID == 0 {
		return nil, errors.NewValidationError("invalid registration ID")
	}

	details, err := uc.registrationRepo.GetByIDWithDetails(ctx, cmd.RegistrationID)
	if err != nil {
		uc.logger.Errorw("failed to get registration", "registration_id", cmd.RegistrationID, "error", err)
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	if details == nil || details.Registration == nil {
		return nil, errors.NewNotFoundError(msgCancelNotFound)
	}

	r := details.Registration
	if !r.IsActive() {
		uc.logger.Infow("registration already cancelled, refreshing cancellation time", "registration_id", r.ID())
	}
	r.Cancel(uc.now())

	if err := uc.registrationRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to cancel registration", "registration_id", r.ID(), "error", err)
		return nil, fmt.Errorf("failed to cancel registration: %w", err)
	}

	result := dto.ToRegistrationDetailsDTO(details)
	uc.enqueueMail(ctx, result)

	uc.logger.Infow("registration cancelled successfully", "registration_id", r.ID())

	return result, nil
}

func (uc *CancelRegistrationUseCase) enqueueMail(ctx context.Context, r *dto.RegistrationDTO) {
	payload := mail.CancellationMailPayload{
		Registration: mail.CancelledRegistrationPayload{
			ID:          r.ID,
			StudentID:   r.StudentID,
			PlanID:      r.PlanID,
			StartDate:   r.StartDate,
			EndDate:     r.EndDate,
			Price:       r.Price,
			CancelledAt: r.CancelledAt,
		},
	}
	if r.Student != nil {
		payload.Registration.Student = mail.StudentPayload{Name: r.Student.Name, Email: r.Student.Email}
	}
	if r.Plan != nil {
		payload.Registration.Plan = mail.PlanPayload{Title: r.Plan.Title}
	}

	if err := uc.jobs.Enqueue(ctx, mail.CancellationMailKey, payload); err != nil {
		uc.logger.Errorw("failed to enqueue cancellation mail",
			"registration_id", r.ID,
			"error", err,
		)
	}
}
