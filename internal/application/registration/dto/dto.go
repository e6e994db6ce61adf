package dto

import (
	"time"

	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/registration"
	"gympoint/internal/domain/student"
)

type RegistrationDTO struct {
	ID          uint        `json:"id"`
	StudentID   uint        `json:"student_id"`
	PlanID      uint        `json:"plan_id"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Price       float64     `json:"price"`
	CancelledAt *time.Time  `json:"cancelled_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Student     *StudentDTO `json:"student,omitempty"`
	Plan        *PlanDTO    `json:"plan,omitempty"`
}

// StudentDTO and PlanDTO are the summaries nested in a cancelled registration.
type StudentDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PlanDTO struct {
	Title string `json:"title"`
}

// RegistrationTermsDTO is the update response: only the recomputed fields.
type RegistrationTermsDTO struct {
	PlanID    uint      `json:"plan_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     float64   `json:"price"`
}

func ToRegistrationDTO(r *registration.Registration) *RegistrationDTO {
	if r == nil {
		return nil
	}

	return &RegistrationDTO{
		ID:          r.ID(),
		StudentID:   r.StudentID(),
		PlanID:      r.PlanID(),
		StartDate:   r.StartDate(),
		EndDate:     r.EndDate(),
		Price:       r.Price().Decimal(),
		CancelledAt: r.CancelledAt(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func ToRegistrationDTOs(registrations []*registration.Registration) []*RegistrationDTO {
	result := make([]*RegistrationDTO, 0, len(registrations))
	for _, r := range registrations {
		result = append(result, ToRegistrationDTO(r))
	}
	return result
}

// ToRegistrationDetailsDTO converts a registration loaded with its student and
// plan. Missing associations are left out of the output.
func ToRegistrationDetailsDTO(d *registration.Details) *RegistrationDTO {
	if d == nil {
		return nil
	}

	result := ToRegistrationDTO(d.Registration)
	if result == nil {
		return nil
	}
	result.Student = toStudentDTO(d.Student)
	result.Plan = toPlanDTO(d.Plan)
	return result
}

func ToRegistrationTermsDTO(r *registration.Registration) *RegistrationTermsDTO {
	return &RegistrationTermsDTO{
		PlanID:    r.PlanID(),
		StartDate: r.StartDate(),
		EndDate:   r.EndDate(),
		Price:     r.Price().Decimal(),
	}
}

func toStudentDTO(s *student.Student) *StudentDTO {
	if s == nil {
		return nil
	}
	return &StudentDTO{Name: s.Name(), Email: s.Email()}
}

func toPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{Title: p.Title()}
}
