package models

import (
	"time"

	"gympoint/internal/shared/constants"
)

// PlanModel is the persistence model for membership plans.
type PlanModel struct {
	ID       uint   `gorm:"primarykey"`
	Title    string `gorm:"not null;size:255"`
	Duration int    `gorm:"not null;comment:length of the plan in months"`
	// Price is the monthly price in cents.
	Price     int64  `gorm:"not null"`
	Currency  string `gorm:"not null;size:3;default:BRL"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
