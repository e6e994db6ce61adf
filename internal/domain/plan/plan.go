// Package plan holds the membership plans a student can register into.
package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gympoint/internal/domain/shared"
)

var ErrInvalidDuration = errors.New("plan duration must be at least one month")

// Plan is a membership offer: Price is charged per month for Duration months.
type Plan struct {
	id        uint
	title     string
	duration  int
	price     shared.Money
	createdAt time.Time
	updatedAt time.Time
}

// ReconstructPlan rebuilds a plan loaded from persistence.
func ReconstructPlan(id uint, title string, duration int, price shared.Money, createdAt, updatedAt time.Time) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, duration)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("plan price cannot be negative")
	}
	return &Plan{
		id:        id,
		title:     title,
		duration:  duration,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Title() string        { return p.title }
func (p *Plan) Duration() int        { return p.duration }
func (p *Plan) Price() shared.Money  { return p.price }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// TotalPrice is the monthly price times the duration.
func (p *Plan) TotalPrice() shared.Money {
	return p.price.Times(p.duration)
}

// Repository looks plans up. GetByID returns nil, nil when the plan does not exist.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Plan, error)
}
