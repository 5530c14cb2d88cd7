// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the catalog schema as goose SQL files embedded in
// the binary: users, manufacturers with their approval requests, products
// and the externally written product_order table.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

const dialect = "pgx"

// ErrNilDB is returned when no connection pool is passed in.
var ErrNilDB = errors.New("db is nil")

//go:embed *.sql
var embedMigrations embed.FS

func prepare(db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)
	// progress is reported by the caller's logger
	goose.SetLogger(goose.NopLogger())

	return goose.SetDialect(dialect)
}

// Migrate applies every pending up-migration.
func Migrate(db *sql.DB) error {
	if err := prepare(db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// SchemaVersion returns the latest applied migration version.
func SchemaVersion(db *sql.DB) (int64, error) {
	if err := prepare(db); err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}

	return version, nil
}
