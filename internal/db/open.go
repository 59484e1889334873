// Package db provides database connectivity helpers and migration support.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // duckdb driver
	_ "github.com/mattn/go-sqlite3"    // sqlite3 driver

	"payroll-reports/internal/config"
)

// SQLite DSN parameters. Report runs are read-mostly but migrate/seed
// write, so the file is opened with the same hardening everywhere.
const (
	defaultBusyTimeout = "5000" // 5 seconds
	defaultSynchronous = "NORMAL"
	defaultJournalMode = "WAL"
)

// Open opens a *sql.DB for the configured driver and verifies it with a
// ping. A report run uses a single synchronous connection; the pool is
// capped accordingly.
func Open(cfg *config.Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	if cfg.Driver == config.DriverSQLite {
		dsn = buildSQLiteDSN(dsn)
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	// Verify the connection is usable.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	return db, nil
}

// buildSQLiteDSN constructs a SQLite DSN with hardened parameters.
func buildSQLiteDSN(path string) string {
	params := url.Values{}
	params.Set("_journal_mode", defaultJournalMode)
	params.Set("_busy_timeout", defaultBusyTimeout)
	params.Set("_synchronous", defaultSynchronous)
	params.Set("_foreign_keys", "on")

	return path + "?" + params.Encode()
}
