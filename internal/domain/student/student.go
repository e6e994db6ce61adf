// Package student holds the read-only view of gym students that
// registrations refer to. Students are managed by another part of the system.
package student

import (
	"context"
	"fmt"
	"time"
)

type Student struct {
	id        uint
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

// ReconstructStudent rebuilds a student loaded from persistence.
func ReconstructStudent(id uint, name, email string, createdAt, updatedAt time.Time) (*Student, error) {
	if id == 0 {
		return nil, fmt.Errorf("student ID cannot be zero")
	}
	return &Student{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Student) ID() uint             { return s.id }
func (s *Student) Name() string         { return s.name }
func (s *Student) Email() string        { return s.email }
func (s *Student) CreatedAt() time.Time { return s.createdAt }
func (s *Student) UpdatedAt() time.Time { return s.updatedAt }

// Repository looks students up. GetByID returns nil, nil when the student does not exist.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Student, error)
}
