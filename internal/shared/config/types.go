package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Timezone string `mapstructure:"timezone"`
	// LegacyStatusCodes answers lookup and validation failures with the
	// historical 401/400 codes instead of 400/404/422.
	LegacyStatusCodes bool `mapstructure:"legacy_status_codes"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the driver-specific connection string. For sqlite the
// database field is the file path (or ":memory:").
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type QueueConfig struct {
	Prefix            string `mapstructure:"prefix"`
	Concurrency       int    `mapstructure:"concurrency"`
	MaxAttempts       int    `mapstructure:"max_attempts"`
	BackoffSeconds    int    `mapstructure:"backoff_seconds"`
	PollTimeoutSecond int    `mapstructure:"poll_timeout_seconds"`
	PromoteSeconds    int    `mapstructure:"promote_interval_seconds"`
	// WorkerID names the worker's processing lists. It must be stable across
	// restarts so unfinished jobs are picked up again. Defaults to the hostname.
	WorkerID string `mapstructure:"worker_id"`
}

func (q *QueueConfig) Backoff() time.Duration {
	return time.Duration(q.BackoffSeconds) * time.Second
}

func (q *QueueConfig) PollTimeout() time.Duration {
	return time.Duration(q.PollTimeoutSecond) * time.Second
}

func (q *QueueConfig) PromoteInterval() time.Duration {
	return time.Duration(q.PromoteSeconds) * time.Second
}

type MailConfig struct {
	// TemplatesPath overrides the built-in templates when set.
	TemplatesPath string `mapstructure:"templates_path"`
	Locale        string `mapstructure:"locale"`
}
