package mappers

import (
	"fmt"

	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/shared"
	"gympoint/internal/infrastructure/persistence/models"
)

// PlanMapper converts between plan models and domain entities
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlan(
		model.ID,
		model.Title,
		model.Duration,
		shared.NewMoney(model.Price, model.Currency),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan %d: %w", model.ID, err)
	}
	return entity, nil
}
