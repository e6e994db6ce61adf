package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gympoint/internal/domain/registration"
	"gympoint/internal/domain/shared"
	"gympoint/internal/infrastructure/persistence/models"
	"gympoint/internal/infrastructure/queue"
	"gympoint/internal/shared/logger"
)

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

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Every pooled connection to :memory: would see its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.StudentModel{}, &models.PlanModel{}, &models.RegistrationModel{}, &models.FailedJobModel{})
	require.NoError(t, err)

	return db
}

func seedStudentAndPlan(t *testing.T, db *gorm.DB) (*models.StudentModel, *models.PlanModel) {
	t.Helper()
	st := &models.StudentModel{Name: "Maria Souza", Email: "maria@example.com"}
	require.NoError(t, db.Create(st).Error)
	pl := &models.PlanModel{Title: "Gold", Duration: 3, Price: 10900, Currency: "BRL"}
	require.NoError(t, db.Create(pl).Error)
	return st, pl
}

func newRegistration(t *testing.T, studentID, planID uint, start time.Time) *registration.Registration {
	t.Helper()
	terms := registration.Terms{
		StartDate: start,
		EndDate:   start.AddDate(0, 3, 0),
		Price:     shared.NewMoney(32700, "BRL"),
	}
	r, err := registration.NewRegistration(studentID, planID, terms, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func TestStudentAndPlanRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	st, pl := seedStudentAndPlan(t, db)

	students := NewStudentRepository(db, &mockLogger{})
	plans := NewPlanRepository(db, &mockLogger{})

	t.Run("existing student", func(t *testing.T) {
		got, err := students.GetByID(ctx, st.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Maria Souza", got.Name())
		assert.Equal(t, "maria@example.com", got.Email())
	})

	t.Run("missing student returns nil", func(t *testing.T) {
		got, err := students.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("existing plan", func(t *testing.T) {
		got, err := plans.GetByID(ctx, pl.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 3, got.Duration())
		assert.Equal(t, int64(32700), got.TotalPrice().AmountInCents())
	})

	t.Run("missing plan returns nil", func(t *testing.T) {
		got, err := plans.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRegistrationRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	st, pl := seedStudentAndPlan(t, db)
	repo := NewRegistrationRepository(db, &mockLogger{})
	start := time.Date(2030, 1, 10, 13, 0, 0, 0, time.UTC)

	t.Run("create assigns an ID", func(t *testing.T) {
		r := newRegistration(t, st.ID, pl.ID, start)

		require.NoError(t, repo.Create(ctx, r))
		assert.NotZero(t, r.ID())

		found, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, start.Equal(found.StartDate()))
		assert.Equal(t, int64(32700), found.Price().AmountInCents())
		assert.True(t, found.IsActive())
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 12345)
		assert.NoError(t, err)
		assert.Nil(t, found)

		details, err := repo.GetByIDWithDetails(ctx, 12345)
		assert.NoError(t, err)
		assert.Nil(t, details)
	})

	t.Run("details include student and plan", func(t *testing.T) {
		r := newRegistration(t, st.ID, pl.ID, start)
		require.NoError(t, repo.Create(ctx, r))

		details, err := repo.GetByIDWithDetails(ctx, r.ID())
		require.NoError(t, err)
		require.NotNil(t, details)
		require.NotNil(t, details.Student)
		require.NotNil(t, details.Plan)
		assert.Equal(t, "maria@example.com", details.Student.Email())
		assert.Equal(t, "Gold", details.Plan.Title())
	})

	t.Run("update persists rescheduling and cancellation", func(t *testing.T) {
		r := newRegistration(t, st.ID, pl.ID, start)
		require.NoError(t, repo.Create(ctx, r))

		newStart := start.AddDate(0, 1, 0)
		terms := registration.Terms{StartDate: newStart, EndDate: newStart.AddDate(0, 6, 0), Price: shared.NewMoney(60000, "BRL")}
		require.NoError(t, r.Reschedule(pl.ID, terms, time.Now().UTC()))
		cancelledAt := time.Date(2030, 1, 5, 12, 0, 0, 0, time.UTC)
		r.Cancel(cancelledAt)
		require.NoError(t, repo.Update(ctx, r))

		found, err := repo.GetByID(ctx, r.ID())
		require.NoError(t, err)
		assert.True(t, newStart.Equal(found.StartDate()))
		assert.Equal(t, int64(60000), found.Price().AmountInCents())
		require.NotNil(t, found.CancelledAt())
		assert.True(t, cancelledAt.Equal(*found.CancelledAt()))
	})
}

func TestRegistrationRepository_ListActiveByStudentID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	st, pl := seedStudentAndPlan(t, db)
	other := &models.StudentModel{Name: "João", Email: "joao@example.com"}
	require.NoError(t, db.Create(other).Error)
	repo := NewRegistrationRepository(db, &mockLogger{})
	start := time.Date(2030, 1, 10, 13, 0, 0, 0, time.UTC)

	active1 := newRegistration(t, st.ID, pl.ID, start)
	cancelled := newRegistration(t, st.ID, pl.ID, start)
	active2 := newRegistration(t, st.ID, pl.ID, start)
	foreign := newRegistration(t, other.ID, pl.ID, start)
	for _, r := range []*registration.Registration{active1, cancelled, active2, foreign} {
		require.NoError(t, repo.Create(ctx, r))
	}
	cancelled.Cancel(time.Now().UTC())
	require.NoError(t, repo.Update(ctx, cancelled))

	list, err := repo.ListActiveByStudentID(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, active1.ID(), list[0].ID())
	assert.Equal(t, active2.ID(), list[1].ID())

	empty, err := repo.ListActiveByStudentID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFailedJobRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewFailedJobRepository(db, &mockLogger{})

	job, err := queue.NewJob("RegistrationMail", map[string]string{"email": "maria@example.com"}, time.Now())
	require.NoError(t, err)
	job.Attempts = 5

	require.NoError(t, repo.Save(ctx, &queue.DeadLetter{Job: job, Error: "smtp down", FailedAt: time.Now().UTC()}))

	rows, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, job.ID, rows[0].JobID)
	assert.Equal(t, "RegistrationMail", rows[0].Queue)
	assert.Equal(t, 5, rows[0].Attempts)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rows[0].Payload, &payload))
	assert.Equal(t, "maria@example.com", payload["email"])
}
