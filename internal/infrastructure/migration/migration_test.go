package migration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gympoint/internal/infrastructure/persistence/models"
)

func openFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "gympoint.db")), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openFileDB(t)
	strategy := NewGooseStrategy(Scripts)

	require.NoError(t, strategy.Migrate(db))

	for _, table := range []string{"students", "plans", "registrations", "failed_jobs"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	// Running again is a no-op
	require.NoError(t, strategy.Migrate(db))

	require.NoError(t, strategy.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("failed_jobs"))
	assert.True(t, db.Migrator().HasTable("registrations"))

	version, err = strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestGooseStrategy_SchemaMatchesModels(t *testing.T) {
	db := openFileDB(t)
	require.NoError(t, NewGooseStrategy(Scripts).Migrate(db))

	st := &models.StudentModel{Name: "Maria Souza", Email: "maria@example.com"}
	require.NoError(t, db.Create(st).Error)
	pl := &models.PlanModel{Title: "Gold", Duration: 3, Price: 10900, Currency: "BRL"}
	require.NoError(t, db.Create(pl).Error)

	start := time.Date(2030, 1, 10, 13, 0, 0, 0, time.UTC)
	reg := &models.RegistrationModel{
		StudentID: st.ID,
		PlanID:    pl.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 3, 0),
		Price:     32700,
		Currency:  "BRL",
	}
	require.NoError(t, db.Create(reg).Error)

	var loaded models.RegistrationModel
	require.NoError(t, db.Preload("Student").Preload("Plan").First(&loaded, reg.ID).Error)
	assert.Equal(t, "maria@example.com", loaded.Student.Email)
	assert.Equal(t, "Gold", loaded.Plan.Title)
	assert.Nil(t, loaded.CancelledAt)
}

func TestManager_Development(t *testing.T) {
	db := openFileDB(t)
	manager := NewManager("development")

	assert.Equal(t, "gorm_auto_migrate", manager.GetStrategy().GetName())
	require.NoError(t, manager.Migrate(db))
	assert.True(t, db.Migrator().HasTable("registrations"))
	assert.True(t, db.Migrator().HasTable("failed_jobs"))
}

func TestManager_ProductionUsesGoose(t *testing.T) {
	assert.Equal(t, "goose", NewManager("production").GetStrategy().GetName())
}
