// Package db provides reusable gorm query scopes.
package db

import (
	"gorm.io/gorm"
)

// NotCancelled filters out rows whose cancelled_at is set.
//
//	db.Model(&models.RegistrationModel{}).Scopes(db.NotCancelled()).Find(&rows)
func NotCancelled() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("cancelled_at IS NULL")
	}
}

// ByStudent restricts the query to rows owned by studentID.
func ByStudent(studentID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("student_id = ?", studentID)
	}
}

// OrderByID orders rows by primary key, oldest first.
func OrderByID() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}
}
