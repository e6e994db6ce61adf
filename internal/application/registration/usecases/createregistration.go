package usecases

import (
	"context"
	"fmt"
	"time"

	"gympoint/internal/application/mail"
	"gympoint/internal/application/registration/dto"
	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/registration"
	"gympoint/internal/domain/student"
	"gympoint/internal/shared/biztime"
	"gympoint/internal/shared/errors"
	"gympoint/internal/shared/logger"
)

type CreateRegistrationCommand struct {
	StudentID uint
	PlanID    uint
	StartDate time.Time
}

type CreateRegistrationUseCase struct {
	registrationRepo registration.Repository
	studentRepo      student.Repository
	planRepo         plan.Repository
	jobs             JobEnqueuer
	logger           logger.Interface
	now              func() time.Time
}

func NewCreateRegistrationUseCase(
	registrationRepo registration.Repository,
	studentRepo student.Repository,
	planRepo plan.Repository,
	jobs JobEnqueuer,
	logger logger.Interface,
) *CreateRegistrationUseCase {
	return &CreateRegistrationUseCase{
		registrationRepo: registrationRepo,
		studentRepo:      studentRepo,
		planRepo:         planRepo,
		jobs:             jobs,
		logger:           logger,
		now:              biztime.NowUTC,
	}
}

func (uc *CreateRegistrationUseCase) Execute(ctx context.Context, cmd CreateRegistrationCommand) (*dto.RegistrationDTO, error) {
	uc.logger.Infow("executing create registration use case",
		"student_id", cmd.StudentID,
		"plan_id", cmd.PlanID,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create registration command", "error", err)
		return nil, err
	}

	st, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		uc.logger.Errorw("failed to get student", "student_id", cmd.StudentID, "error", err)
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if st == nil {
		return nil, errors.NewNotFoundError(msgStudentNotFound)
	}

	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", cmd.PlanID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError(msgPlanNotFound)
	}

	now := uc.now()
	terms, err := registration.CalculateTerms(cmd.StartDate, p, now)
	if err != nil {
		return nil, termsError(err)
	}

	newRegistration, err := registration.NewRegistration(st.ID(), p.ID(), terms, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.registrationRepo.Create(ctx, newRegistration); err != nil {
		uc.logger.Errorw("failed to create registration", "error", err)
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	uc.enqueueMail(ctx, newRegistration, st, p)

	uc.logger.Infow("registration created successfully",
		"registration_id", newRegistration.ID(),
		"student_id", st.ID(),
		"end_date", terms.EndDate,
	)

	return dto.ToRegistrationDTO(newRegistration), nil
}

func (uc *CreateRegistrationUseCase) validateCommand(cmd CreateRegistrationCommand) error {
	if cmd.StudentID == 0 {
		return errors.NewValidationError(msgCreateValidationFailed, "student_id is required")
	}
	if cmd.PlanID == 0 {
		return errors.NewValidationError(msgCreateValidationFailed, "plan_id is required")
	}
	if cmd.StartDate.IsZero() {
		return errors.NewValidationError(msgCreateValidationFailed, "start_date is required")
	}
	return nil
}

// enqueueMail submits the confirmation mail. The registration is already
// stored, so a queue failure is logged and not returned.
func (uc *CreateRegistrationUseCase) enqueueMail(ctx context.Context, r *registration.Registration, st *student.Student, p *plan.Plan) {
	payload := mail.RegistrationMailPayload{
		Student: mail.StudentPayload{
			ID:    st.ID(),
			Name:  st.Name(),
			Email: st.Email(),
		},
		Plan: mail.PlanPayload{
			ID:       p.ID(),
			Title:    p.Title(),
			Duration: p.Duration(),
			Price:    p.Price().Decimal(),
		},
		Price:            r.Price().Decimal(),
		FormattedEndDate: biztime.FormatDisplayDate(r.EndDate()),
	}

	if err := uc.jobs.Enqueue(ctx, mail.RegistrationMailKey, payload); err != nil {
		uc.logger.Errorw("failed to enqueue registration mail",
			"registration_id", r.ID(),
			"error", err,
		)
	}
}
