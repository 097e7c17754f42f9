// Package database opens the request journal database and migrates its schema. PostgreSQL,
// MySQL and SQLite are supported.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	validation "github.com/jellydator/validation"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	customValidation "github.com/pinkoot/AI-Assistant/internal/validation"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

const pingTimeout = 5 * time.Second

type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// Validate rejects unknown drivers and an empty connection string.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverPostgres, DriverMySQL, DriverSQLite)),
		validation.Field(&c.ConnectionString, validation.Required),
		validation.Field(&c.MaxOpenConnections, validation.Min(0)),
		validation.Field(&c.MaxIdleConnections, validation.Min(0)),
	)
	return customValidation.WrapValidationError(err)
}

// configurePool applies the pool limits. SQLite gets exactly one connection that is
// never closed while idle: writers serialize anyway, and a :memory: database lives only
// as long as its connection.
func (c Config) configurePool(db *sql.DB) {
	if c.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
		return
	}
	db.SetMaxOpenConns(c.MaxOpenConnections)
	db.SetMaxIdleConns(c.MaxIdleConnections)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)
}

// Connect opens the pool described by cfg and pings it before returning.
func Connect(cfg Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	db, err := sql.Open(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	cfg.configurePool(db)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}
	return db, nil
}
