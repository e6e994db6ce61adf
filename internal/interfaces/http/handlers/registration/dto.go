package registration

import (
	"gympoint/internal/application/registration/usecases"
	"gympoint/internal/shared/biztime"
)

// CreateRegistrationRequest is the body of POST /registrations. EndDate and
// Price are accepted for compatibility and ignored; both are derived from the
// plan.
type CreateRegistrationRequest struct {
	StudentID uint     `json:"student_id" validate:"required,gt=0" example:"1"`
	PlanID    uint     `json:"plan_id" validate:"required,gt=0" example:"2"`
	StartDate string   `json:"start_date" validate:"required,datetime_any" example:"2030-01-10T10:30:00-03:00"`
	EndDate   *string  `json:"end_date,omitempty" validate:"omitempty,datetime_any"`
	Price     *float64 `json:"price,omitempty"`
}

func (r *CreateRegistrationRequest) ToCommand() (usecases.CreateRegistrationCommand, error) {
	start, err := biztime.ParseDateTime(r.StartDate)
	if err != nil {
		return usecases.CreateRegistrationCommand{}, err
	}
	return usecases.CreateRegistrationCommand{
		StudentID: r.StudentID,
		PlanID:    r.PlanID,
		StartDate: start,
	}, nil
}

// UpdateRegistrationRequest is the body of PUT /registrations/:id. Omitted
// fields keep the registration's current plan and start date.
type UpdateRegistrationRequest struct {
	PlanID    *uint    `json:"plan_id,omitempty" validate:"omitempty,gt=0" example:"3"`
	StartDate *string  `json:"start_date,omitempty" validate:"omitempty,datetime_any" example:"2030-02-01"`
	EndDate   *string  `json:"end_date,omitempty" validate:"omitempty,datetime_any"`
	Price     *float64 `json:"price,omitempty"`
}

func (r *UpdateRegistrationRequest) ToCommand(registrationID uint) (usecases.UpdateRegistrationCommand, error) {
	cmd := usecases.UpdateRegistrationCommand{
		RegistrationID: registrationID,
		PlanID:         r.PlanID,
	}
	if r.StartDate != nil {
		start, err := biztime.ParseDateTime(*r.StartDate)
		if err != nil {
			return usecases.UpdateRegistrationCommand{}, err
		}
		cmd.StartDate = &start
	}
	return cmd, nil
}
