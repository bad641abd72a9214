package database

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/buzzwords/internal/entities"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects and configures the store driver.
type Options struct {
	Driver string // "sqlite" or "postgres"
	DSN    string // file path for sqlite, connection URL for postgres
	LogSQL bool
	Logger *zap.Logger
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the configured store and migrates the schema.
func NewDatabase(opts Options) (*Database, error) {
	dialector, err := Dialector(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	database, err := Open(dialector, opts.LogSQL)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.Info("database initialized", zap.String("driver", opts.Driver))
	}

	return database, nil
}

// Dialector maps a driver name to its gorm dialector.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(driver) {
	case "", DriverSQLite:
		return sqlite.Open(sqliteDSN(dsn)), nil
	case DriverPostgres, "postgresql":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects through an explicit dialector without migrating.
func Open(dialector gorm.Dialector, logSQL bool) (*Database, error) {
	logLevel := logger.Silent
	if logSQL {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		// Bookmarks keep a weak reference to words.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Migrate creates or updates the tables and unique indexes.
func (d *Database) Migrate() error {
	err := d.DB.AutoMigrate(
		&entities.User{},
		&entities.Word{},
		&entities.Bookmark{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN adds a busy timeout so concurrent readers wait on writers
// instead of failing with SQLITE_BUSY.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_busy_timeout=5000"
}
