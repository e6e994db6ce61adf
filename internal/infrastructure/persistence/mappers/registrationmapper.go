package mappers

import (
	"fmt"

	"gympoint/internal/domain/registration"
	"gympoint/internal/domain/shared"
	"gympoint/internal/infrastructure/persistence/models"
)

// RegistrationMapper handles the conversion between registration entities and persistence models
type RegistrationMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.RegistrationModel) (*registration.Registration, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *registration.Registration) *models.RegistrationModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.RegistrationModel) ([]*registration.Registration, error)

	// ToDetails converts a model with preloaded student and plan
	ToDetails(model *models.RegistrationModel) (*registration.Details, error)
}

type registrationMapper struct {
	students StudentMapper
	plans    PlanMapper
}

func NewRegistrationMapper() RegistrationMapper {
	return &registrationMapper{
		students: NewStudentMapper(),
		plans:    NewPlanMapper(),
	}
}

func (m *registrationMapper) ToEntity(model *models.RegistrationModel) (*registration.Registration, error) {
	if model == nil {
		return nil, nil
	}

	terms := registration.Terms{
		StartDate: model.StartDate.UTC(),
		EndDate:   model.EndDate.UTC(),
		Price:     shared.NewMoney(model.Price, model.Currency),
	}

	var cancelledAt = model.CancelledAt
	if cancelledAt != nil {
		utc := cancelledAt.UTC()
		cancelledAt = &utc
	}

	entity, err := registration.ReconstructRegistration(
		model.ID,
		model.StudentID,
		model.PlanID,
		terms,
		cancelledAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct registration %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *registrationMapper) ToModel(entity *registration.Registration) *models.RegistrationModel {
	if entity == nil {
		return nil
	}

	price := entity.Price()
	return &models.RegistrationModel{
		ID:          entity.ID(),
		StudentID:   entity.StudentID(),
		PlanID:      entity.PlanID(),
		StartDate:   entity.StartDate(),
		EndDate:     entity.EndDate(),
		Price:       price.AmountInCents(),
		Currency:    price.Currency(),
		CancelledAt: entity.CancelledAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *registrationMapper) ToEntities(models []*models.RegistrationModel) ([]*registration.Registration, error) {
	entities := make([]*registration.Registration, 0, len(models))
	for _, model := range models {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *registrationMapper) ToDetails(model *models.RegistrationModel) (*registration.Details, error) {
	entity, err := m.ToEntity(model)
	if err != nil || entity == nil {
		return nil, err
	}

	details := &registration.Details{Registration: entity}
	if model.Student != nil {
		if details.Student, err = m.students.ToEntity(model.Student); err != nil {
			return nil, err
		}
	}
	if model.Plan != nil {
		if details.Plan, err = m.plans.ToEntity(model.Plan); err != nil {
			return nil, err
		}
	}
	return details, nil
}
