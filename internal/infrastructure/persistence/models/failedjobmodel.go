package models

import (
	"time"

	"gorm.io/datatypes"

	"gympoint/internal/shared/constants"
)

// FailedJobModel stores queue jobs that exhausted their retries.
type FailedJobModel struct {
	ID       uint           `gorm:"primarykey"`
	JobID    string         `gorm:"uniqueIndex;not null;size:36"`
	Queue    string         `gorm:"not null;size:100;index"`
	Payload  datatypes.JSON `gorm:"not null"`
	Attempts int            `gorm:"not null"`
	Error    string         `gorm:"type:text"`
	FailedAt time.Time      `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (FailedJobModel) TableName() string {
	return constants.TableFailedJobs
}
