package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/shared"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed.UTC()
}

func newTestPlan(t *testing.T, id uint, duration int, monthlyCents int64) *plan.Plan {
	t.Helper()
	p, err := plan.ReconstructPlan(id, "Gold", duration, shared.NewMoney(monthlyCents, ""), time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func TestCalculateTerms(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")

	t.Run("truncates start and adds duration", func(t *testing.T) {
		terms, err := CalculateTerms(mustTime(t, "2024-01-10T10:30:00Z"), newTestPlan(t, 1, 3, 10000), now)
		require.NoError(t, err)

		assert.Equal(t, mustTime(t, "2024-01-10T10:00:00Z"), terms.StartDate)
		assert.Equal(t, mustTime(t, "2024-04-10T10:00:00Z"), terms.EndDate)
		assert.Equal(t, int64(30000), terms.Price.AmountInCents())
	})

	t.Run("end of month clamps", func(t *testing.T) {
		terms, err := CalculateTerms(mustTime(t, "2024-01-31T15:00:00Z"), newTestPlan(t, 1, 1, 10000), now)
		require.NoError(t, err)

		assert.Equal(t, mustTime(t, "2024-02-29T15:00:00Z"), terms.EndDate)
	})

	t.Run("past start is rejected", func(t *testing.T) {
		_, err := CalculateTerms(mustTime(t, "2023-12-31T23:59:00Z"), newTestPlan(t, 1, 1, 10000), now)
		assert.ErrorIs(t, err, ErrPastStartDate)
	})

	t.Run("start inside the current hour is rejected once truncated", func(t *testing.T) {
		current := mustTime(t, "2024-01-10T10:20:00Z")
		_, err := CalculateTerms(mustTime(t, "2024-01-10T10:45:00Z"), newTestPlan(t, 1, 1, 10000), current)
		assert.ErrorIs(t, err, ErrPastStartDate)
	})

	t.Run("start exactly now is accepted", func(t *testing.T) {
		current := mustTime(t, "2024-01-10T10:00:00Z")
		_, err := CalculateTerms(current, newTestPlan(t, 1, 1, 10000), current)
		assert.NoError(t, err)
	})

	t.Run("missing plan", func(t *testing.T) {
		_, err := CalculateTerms(now, nil, now)
		assert.ErrorIs(t, err, ErrPlanRequired)
	})
}

func TestNewRegistration(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")
	terms, err := CalculateTerms(mustTime(t, "2024-01-10T10:00:00Z"), newTestPlan(t, 2, 1, 9990), now)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		r, err := NewRegistration(1, 2, terms, now)
		require.NoError(t, err)

		assert.Zero(t, r.ID())
		assert.True(t, r.IsActive())
		assert.Equal(t, terms.StartDate, r.StartDate())
		assert.Equal(t, terms.EndDate, r.EndDate())
		assert.Equal(t, int64(9990), r.Price().AmountInCents())
	})

	t.Run("missing student", func(t *testing.T) {
		_, err := NewRegistration(0, 2, terms, now)
		assert.Error(t, err)
	})

	t.Run("missing plan", func(t *testing.T) {
		_, err := NewRegistration(1, 0, terms, now)
		assert.Error(t, err)
	})
}

func TestRegistration_SetID(t *testing.T) {
	r := &Registration{}

	require.NoError(t, r.SetID(7))
	assert.Equal(t, uint(7), r.ID())
	assert.ErrorIs(t, r.SetID(8), ErrIDAlreadySet)
}

func TestRegistration_Reschedule(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")
	original, err := CalculateTerms(mustTime(t, "2024-01-10T10:00:00Z"), newTestPlan(t, 1, 1, 10000), now)
	require.NoError(t, err)
	r, err := ReconstructRegistration(5, 1, 1, original, nil, now, now)
	require.NoError(t, err)

	later := mustTime(t, "2024-01-05T00:00:00Z")
	updated, err := CalculateTerms(mustTime(t, "2024-02-01T08:00:00Z"), newTestPlan(t, 2, 6, 8000), later)
	require.NoError(t, err)

	require.NoError(t, r.Reschedule(2, updated, later))

	assert.Equal(t, uint(2), r.PlanID())
	assert.Equal(t, mustTime(t, "2024-08-01T08:00:00Z"), r.EndDate())
	assert.Equal(t, int64(48000), r.Price().AmountInCents())
	assert.Equal(t, later, r.UpdatedAt())
	assert.Equal(t, uint(1), r.StudentID())
}

func TestRegistration_Cancel(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")
	terms, err := CalculateTerms(mustTime(t, "2024-01-10T10:00:00Z"), newTestPlan(t, 1, 1, 10000), now)
	require.NoError(t, err)
	r, err := ReconstructRegistration(5, 1, 1, terms, nil, now, now)
	require.NoError(t, err)

	first := mustTime(t, "2024-01-02T00:00:00Z")
	r.Cancel(first)
	require.NotNil(t, r.CancelledAt())
	assert.Equal(t, first, *r.CancelledAt())
	assert.False(t, r.IsActive())

	second := mustTime(t, "2024-01-03T00:00:00Z")
	r.Cancel(second)
	assert.Equal(t, second, *r.CancelledAt())
	assert.Equal(t, second, r.UpdatedAt())
}
