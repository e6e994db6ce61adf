package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gympoint/internal/domain/plan"
	"gympoint/internal/domain/registration"
	"gympoint/internal/domain/shared"
	"gympoint/internal/domain/student"
	"gympoint/internal/shared/logger"
)

type mockRegistrationRepository struct {
	CreateFunc                func(ctx context.Context, r *registration.Registration) error
	GetByIDFunc               func(ctx context.Context, id uint) (*registration.Registration, error)
	GetByIDWithDetailsFunc    func(ctx context.Context, id uint) (*registration.Details, error)
	ListActiveByStudentIDFunc func(ctx context.Context, studentID uint) ([]*registration.Registration, error)
	UpdateFunc                func(ctx context.Context, r *registration.Registration) error

	calls int
}

func (m *mockRegistrationRepository) Create(ctx context.Context, r *registration.Registration) error {
	m.calls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id uint) (*registration.Registration, error) {
	m.calls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) GetByIDWithDetails(ctx context.Context, id uint) (*registration.Details, error) {
	m.calls++
	if m.GetByIDWithDetailsFunc != nil {
		return m.GetByIDWithDetailsFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) ListActiveByStudentID(ctx context.Context, studentID uint) ([]*registration.Registration, error) {
	m.calls++
	if m.ListActiveByStudentIDFunc != nil {
		return m.ListActiveByStudentIDFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *mockRegistrationRepository) Update(ctx context.Context, r *registration.Registration) error {
	m.calls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

type mockStudentRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*student.Student, error)
	calls       int
}

func (m *mockStudentRepository) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	m.calls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockPlanRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*plan.Plan, error)
	calls       int
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	m.calls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type enqueuedJob struct {
	key     string
	payload interface{}
}

type mockJobEnqueuer struct {
	mu          sync.Mutex
	EnqueueFunc func(ctx context.Context, key string, payload interface{}) error
	jobs        []enqueuedJob
}

func (m *mockJobEnqueuer) Enqueue(ctx context.Context, key string, payload interface{}) error {
	m.mu.Lock()
	m.jobs = append(m.jobs, enqueuedJob{key: key, payload: payload})
	m.mu.Unlock()
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, key, payload)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

// fixedNow is the clock used by every test in this package.
var fixedNow = time.Date(2030, 1, 5, 12, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func newTestStudent(t *testing.T, id uint) *student.Student {
	t.Helper()
	s, err := student.ReconstructStudent(id, "Maria Souza", "maria@example.com", fixedNow, fixedNow)
	require.NoError(t, err)
	return s
}

func newTestPlan(t *testing.T, id uint, duration int, monthlyCents int64) *plan.Plan {
	t.Helper()
	p, err := plan.ReconstructPlan(id, "Gold", duration, shared.NewMoney(monthlyCents, "BRL"), fixedNow, fixedNow)
	require.NoError(t, err)
	return p
}

func newTestRegistration(t *testing.T, id, studentID, planID uint, start time.Time, cancelledAt *time.Time) *registration.Registration {
	t.Helper()
	terms := registration.Terms{
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
		Price:     shared.NewMoney(10000, "BRL"),
	}
	r, err := registration.ReconstructRegistration(id, studentID, planID, terms, cancelledAt, fixedNow, fixedNow)
	require.NoError(t, err)
	return r
}
