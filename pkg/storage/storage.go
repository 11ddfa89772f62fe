package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
)

// Open connects to the document store selected by driver and wraps it in a
// bun.DB with the matching dialect. Supported drivers: "sqlite", "postgres".
func Open(driver, dsn string) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		sqlDB, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open sqlite: %w", err)
		}
		db := bun.NewDB(sqlDB, sqlitedialect.New())
		// SQLite serializes writers; a single connection avoids lock errors.
		db.SetMaxOpenConns(1)
		return db, nil
	case "postgres", "pg":
		sqlDB, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", driver)
	}
}

// CreateSchema provisions the tables the platform needs. Idempotent; safe to
// call on every startup.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*pages.Page)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table %T: %w", model, err)
		}
	}
	return nil
}

// NewSQLiteMemoryDB opens a shared in-memory sqlite database, primarily for
// tests and local scaffolding.
func NewSQLiteMemoryDB() (*bun.DB, error) {
	return Open("sqlite", "file::memory:?cache=shared")
}
