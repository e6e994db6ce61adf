package migration

import (
	"database/sql"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"gympoint/internal/infrastructure/persistence/models"
	"gympoint/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB, models ...interface{}) error
	// GetName returns the strategy name
	GetName() string
}

// AutoMigrateModels lists the models GORM AutoMigrate manages.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.StudentModel{},
		&models.PlanModel{},
		&models.RegistrationModel{},
		&models.FailedJobModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
// It never drops columns and is meant for development databases.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy runs the versioned SQL scripts for the connection's dialect.
type GooseStrategy struct {
	fsys   fs.FS
	logger logger.Interface
}

func NewGooseStrategy(fsys fs.FS) *GooseStrategy {
	return &GooseStrategy{
		fsys:   fsys,
		logger: logger.NewLogger().With("component", "migration.goose"),
	}
}

// gooseDialect maps a GORM dialector name to the goose dialect and the
// scripts directory holding its migrations.
func gooseDialect(db *gorm.DB) (string, string, error) {
	switch name := db.Dialector.Name(); name {
	case "mysql":
		return "mysql", path.Join("scripts", "mysql"), nil
	case "postgres":
		return "postgres", path.Join("scripts", "postgres"), nil
	case "sqlite":
		return "sqlite3", path.Join("scripts", "sqlite3"), nil
	default:
		return "", "", fmt.Errorf("no migration scripts for database driver %q", name)
	}
}

func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, string, error) {
	dialect, dir, err := gooseDialect(db)
	if err != nil {
		return nil, "", err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(s.fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return nil, "", fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return sqlDB, dir, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, dir, err := s.prepare(db)
	if err != nil {
		return err
	}

	s.logger.Infow("starting goose migration", "scripts_path", dir)

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, dir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, dir, err := s.prepare(db)
	if err != nil {
		return err
	}

	s.logger.Infow("starting down migration", "steps", steps)

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, dir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, _, err := s.prepare(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status prints the applied state of every migration through goose's logger.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, dir, err := s.prepare(db)
	if err != nil {
		return err
	}

	if err := goose.Status(sqlDB, dir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}
