package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"payroll-reports/internal/config"
)

// OpenTestDB opens a SQLite payroll database in t.TempDir(), runs all
// pending migrations, and registers cleanup.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "payroll_test.sqlite"),
	}
	sqlDB, err := Open(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := RunMigrations(sqlDB); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return sqlDB
}

// OpenSeededTestDB opens a migrated test database populated with the demo
// seed data.
func OpenSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB := OpenTestDB(t)
	if err := Seed(context.Background(), sqlDB); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	return sqlDB
}
