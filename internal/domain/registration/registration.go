// Package registration models the enrolment of a student into a membership
// plan for a bounded period.
package registration

import (
	"fmt"
	"time"

	"gympoint/internal/domain/shared"
)

// Registration is the aggregate root. A registration is active until
// cancelledAt is set; cancellation never deletes the row.
type Registration struct {
	id          uint
	studentID   uint
	planID      uint
	terms       Terms
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRegistration creates an unsaved registration of studentID into planID.
func NewRegistration(studentID, planID uint, terms Terms, now time.Time) (*Registration, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if terms.EndDate.Before(terms.StartDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	return &Registration{
		studentID: studentID,
		planID:    planID,
		terms:     terms,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructRegistration rebuilds a registration loaded from persistence.
func ReconstructRegistration(
	id, studentID, planID uint,
	terms Terms,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Registration, error) {
	if id == 0 {
		return nil, fmt.Errorf("registration ID cannot be zero")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	return &Registration{
		id:          id,
		studentID:   studentID,
		planID:      planID,
		terms:       terms,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Registration) ID() uint                { return r.id }
func (r *Registration) StudentID() uint         { return r.studentID }
func (r *Registration) PlanID() uint            { return r.planID }
func (r *Registration) StartDate() time.Time    { return r.terms.StartDate }
func (r *Registration) EndDate() time.Time      { return r.terms.EndDate }
func (r *Registration) Price() shared.Money     { return r.terms.Price }
func (r *Registration) Terms() Terms            { return r.terms }
func (r *Registration) CancelledAt() *time.Time { return r.cancelledAt }
func (r *Registration) CreatedAt() time.Time    { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time    { return r.updatedAt }

// IsActive reports whether the registration has not been cancelled.
func (r *Registration) IsActive() bool {
	return r.cancelledAt == nil
}

// SetID sets the ID assigned by the store. It may only be called once.
func (r *Registration) SetID(id uint) error {
	if r.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return fmt.Errorf("registration ID cannot be zero")
	}
	r.id = id
	return nil
}

// Reschedule moves the registration onto planID with freshly calculated terms.
// Cancelled registrations can be rescheduled; they stay cancelled.
func (r *Registration) Reschedule(planID uint, terms Terms, now time.Time) error {
	if planID == 0 {
		return fmt.Errorf("plan ID is required")
	}
	if terms.EndDate.Before(terms.StartDate) {
		return fmt.Errorf("end date must not be before start date")
	}

	r.planID = planID
	r.terms = terms
	r.updatedAt = now
	return nil
}

// Cancel marks the registration cancelled at now. Cancelling again moves the
// cancellation timestamp forward.
func (r *Registration) Cancel(now time.Time) {
	cancelledAt := now
	r.cancelledAt = &cancelledAt
	r.updatedAt = now
}
