package registration

import (
	"context"

	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/student"
)

// Details is a registration together with the student and plan it refers to.
type Details struct {
	Registration *Registration
	Student      *student.Student
	Plan         *plan.Plan
}

// Repository persists registrations. Getters return nil, nil when nothing matches.
type Repository interface {
	Create(ctx context.Context, r *Registration) error
	GetByID(ctx context.Context, id uint) (*Registration, error)
	GetByIDWithDetails(ctx context.Context, id uint) (*Details, error)
	// ListActiveByStudentID returns the student's registrations that are not
	// cancelled, ordered by ID.
	ListActiveByStudentID(ctx context.Context, studentID uint) ([]*Registration, error)
	Update(ctx context.Context, r *Registration) error
}
