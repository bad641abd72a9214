package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Bookmarks
		Logging
		Tasks
		Maintenance
		Audit
		Global
	}

	HTTP struct {
		Port               int32
		Host               string
		RequestTimeout     time.Duration
		ReadOnly           bool     // Reject writes except login
		CORSAllowedOrigins []string // "*" allows any origin
	}
	Database struct {
		Driver string // "sqlite" or "postgres"
		URL    string // File path for sqlite, connection URL for postgres
		LogSQL bool
	}
	Auth struct {
		BcryptCost int
	}
	Bookmarks struct {
		DefaultLimit int
		MaxLimit     int // Larger requested limits are clamped
	}
	Logging struct {
		Level  string // debug, info, warn, error
		Format string // json or console
	}
	Tasks struct {
		Enabled         bool
		DatabasePath    string // Separate SQLite file for the task queue
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Maintenance struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Audit struct {
		Enabled       bool
		RetentionDays int // Days to keep audit events (default: 30)
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// NewConfig loads an optional .env file and then reads the environment.
func NewConfig() *Config {
	// A missing .env is fine; real environment variables take precedence.
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("read_only", false)
	v.SetDefault("cors_allowed_origins", "*")

	v.SetDefault("database_driver", DefaultDatabaseDriver)
	v.SetDefault("database_url", DefaultDatabasePath)
	v.SetDefault("database_log_sql", false)

	v.SetDefault("auth_bcrypt_cost", 12)

	v.SetDefault("bookmarks_default_limit", 10)
	v.SetDefault("bookmarks_max_limit", 100)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("tasks_database_path", "")
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("maintenance_enabled", true)
	v.SetDefault("maintenance_schedule", "0 3 * * *") // Daily at 03:00

	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_retention_days", 30)
	return v
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{
			Port:               v.GetInt32("PORT"),
			Host:               v.GetString("HOST"),
			RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
			ReadOnly:           v.GetBool("READ_ONLY"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: Database{
			Driver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
			URL:    v.GetString("DATABASE_URL"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
		Auth: Auth{
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
		Bookmarks: Bookmarks{
			DefaultLimit: v.GetInt("BOOKMARKS_DEFAULT_LIMIT"),
			MaxLimit:     v.GetInt("BOOKMARKS_MAX_LIMIT"),
		},
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			DatabasePath:    v.GetString("TASKS_DATABASE_PATH"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Maintenance: Maintenance{
			Enabled:  v.GetBool("MAINTENANCE_ENABLED"),
			Schedule: v.GetString("MAINTENANCE_SCHEDULE"),
		},
		Audit: Audit{
			Enabled:       v.GetBool("AUDIT_ENABLED"),
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}

	if cfg.Tasks.DatabasePath == "" {
		cfg.Tasks.DatabasePath = deriveTasksDatabasePath(cfg.Database)
	}
	return cfg
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Bookmarks.DefaultLimit < 1 || c.Bookmarks.MaxLimit < c.Bookmarks.DefaultLimit {
		return fmt.Errorf("bookmark limits must satisfy 1 <= default (%d) <= max (%d)",
			c.Bookmarks.DefaultLimit, c.Bookmarks.MaxLimit)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("AUTH_BCRYPT_COST must be between 4 and 31, got %d", c.Auth.BcryptCost)
	}
	return nil
}

// ShutdownTimeout returns the graceful shutdown window.
func (g Global) ShutdownTimeout() time.Duration {
	return time.Duration(g.ShutdownTimeoutInSeconds) * time.Second
}

// RetentionPeriod returns how long audit events are kept.
func (a Audit) RetentionPeriod() time.Duration {
	return time.Duration(a.RetentionDays) * 24 * time.Hour
}

// The task queue sits next to a sqlite database, or in the working
// directory when the main store is postgres.
func deriveTasksDatabasePath(db Database) string {
	if db.Driver == "sqlite" && db.URL != "" && !strings.HasPrefix(db.URL, "file:") && db.URL != ":memory:" {
		path, _, _ := strings.Cut(db.URL, "?")
		ext := filepath.Ext(path)
		return strings.TrimSuffix(path, ext) + "-tasks.db"
	}
	return DefaultTasksDatabasePath
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
