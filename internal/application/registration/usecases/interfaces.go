package usecases

import (
	"context"

	"gympoint/internal/application/registration/dto"
)

// JobEnqueuer submits background jobs. Delivery happens out of band.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, key string, payload interface{}) error
}

type CreateRegistrationExecutor interface {
	Execute(ctx context.Context, cmd CreateRegistrationCommand) (*dto.RegistrationDTO, error)
}

type ListActiveRegistrationsExecutor interface {
	Execute(ctx context.Context, query ListActiveRegistrationsQuery) ([]*dto.RegistrationDTO, error)
}

type UpdateRegistrationExecutor interface {
	Execute(ctx context.Context, cmd UpdateRegistrationCommand) (*dto.RegistrationTermsDTO, error)
}

type CancelRegistrationExecutor interface {
	Execute(ctx context.Context, cmd CancelRegistrationCommand) (*dto.RegistrationDTO, error)
}
