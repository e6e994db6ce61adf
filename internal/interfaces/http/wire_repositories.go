package http

import (
	"gorm.io/gorm"

	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/registration"
	"gympoint/internal/domain/student"
	"gympoint/internal/infrastructure/repository"
	"gympoint/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	studentRepo      student.Repository
	planRepo         plan.Repository
	registrationRepo registration.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		studentRepo:      repository.NewStudentRepository(db, log),
		planRepo:         repository.NewPlanRepository(db, log),
		registrationRepo: repository.NewRegistrationRepository(db, log),
	}
}
