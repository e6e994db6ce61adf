package http

import (
	"gympoint/internal/application/registration/usecases"
	"gympoint/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	createRegistrationUC *usecases.CreateRegistrationUseCase
	listRegistrationsUC  *usecases.ListActiveRegistrationsUseCase
	updateRegistrationUC *usecases.UpdateRegistrationUseCase
	cancelRegistrationUC *usecases.CancelRegistrationUseCase
}

func newUseCases(repos *repositories, jobs usecases.JobEnqueuer, log logger.Interface) *allUseCases {
	return &allUseCases{
		createRegistrationUC: usecases.NewCreateRegistrationUseCase(
			repos.registrationRepo, repos.studentRepo, repos.planRepo, jobs, log,
		),
		listRegistrationsUC: usecases.NewListActiveRegistrationsUseCase(repos.registrationRepo, log),
		updateRegistrationUC: usecases.NewUpdateRegistrationUseCase(
			repos.registrationRepo, repos.planRepo, log,
		),
		cancelRegistrationUC: usecases.NewCancelRegistrationUseCase(repos.registrationRepo, jobs, log),
	}
}
