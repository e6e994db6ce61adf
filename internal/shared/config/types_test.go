package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN(t *testing.T) {
	base := DatabaseConfig{
		Host:     "db",
		Port:     3306,
		Username: "gym",
		Password: "secret",
		Database: "gympoint",
	}

	t.Run("mysql is the default", func(t *testing.T) {
		cfg := base
		assert.Equal(t,
			"gym:secret@tcp(db:3306)/gympoint?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			cfg.GetDSN())
	})

	t.Run("postgres", func(t *testing.T) {
		cfg := base
		cfg.Driver = "postgres"
		cfg.Port = 5432
		assert.Equal(t,
			"host=db port=5432 user=gym password=secret dbname=gympoint sslmode=disable TimeZone=UTC",
			cfg.GetDSN())
	})

	t.Run("sqlite uses the database path", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "sqlite", Database: ":memory:"}
		assert.Equal(t, ":memory:", cfg.GetDSN())
	})
}

func TestQueueConfig_Durations(t *testing.T) {
	cfg := QueueConfig{BackoffSeconds: 30, PollTimeoutSecond: 5, PromoteSeconds: 2}
	assert.Equal(t, 30*time.Second, cfg.Backoff())
	assert.Equal(t, 5*time.Second, cfg.PollTimeout())
	assert.Equal(t, 2*time.Second, cfg.PromoteInterval())
}
