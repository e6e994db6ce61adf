package registration

import (
	"fmt"
	"time"

	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/shared"
	"gympoint/internal/shared/biztime"
)

// Terms are the derived fields of a registration: when it starts and ends
// and what it costs in total.
type Terms struct {
	StartDate time.Time
	EndDate   time.Time
	Price     shared.Money
}

// CalculateTerms derives the terms of a registration into p starting at
// requestedStart. The start is truncated to the beginning of its hour and must
// not be before now. The end is the start plus the plan's duration in
// calendar months, and the price is the monthly price times the duration.
func CalculateTerms(requestedStart time.Time, p *plan.Plan, now time.Time) (Terms, error) {
	if p == nil {
		return Terms{}, ErrPlanRequired
	}

	start := biztime.StartOfHour(requestedStart)
	if start.Before(now) {
		return Terms{}, fmt.Errorf("%w: %s", ErrPastStartDate, start.Format(time.RFC3339))
	}

	return Terms{
		StartDate: start,
		EndDate:   biztime.AddMonths(start, p.Duration()),
		Price:     p.TotalPrice(),
	}, nil
}
