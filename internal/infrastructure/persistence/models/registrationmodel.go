package models

import (
	"time"

	"gympoint/internal/shared/constants"
)

// RegistrationModel is the persistence model for registrations. Cancellation
// is recorded in CancelledAt; rows are never deleted.
type RegistrationModel struct {
	ID        uint      `gorm:"primarykey"`
	StudentID uint      `gorm:"not null;index:idx_registration_student_active,priority:1"`
	PlanID    uint      `gorm:"not null;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	// Price is the total price in cents.
	Price       int64      `gorm:"not null"`
	Currency    string     `gorm:"not null;size:3;default:BRL"`
	CancelledAt *time.Time `gorm:"index:idx_registration_student_active,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Student *StudentModel `gorm:"foreignKey:StudentID"`
	Plan    *PlanModel    `gorm:"foreignKey:PlanID"`
}

// TableName specifies the table name for GORM
func (RegistrationModel) TableName() string {
	return constants.TableRegistrations
}
