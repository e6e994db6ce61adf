package models

import (
	"time"

	"gympoint/internal/shared/constants"
)

// StudentModel is the persistence model for students. The table is owned by
// the student management side and only read here.
type StudentModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	Email     string `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (StudentModel) TableName() string {
	return constants.TableStudents
}
