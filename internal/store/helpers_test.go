// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// productRow returns a products row; manufacturerID may be nil for NULL.
func productRow(id int64, name string, stock int64, manufacturerID driver.Value) []driver.Value {
	return []driver.Value{
		id, name, "desc", "19.99", "home", stock,
		"Berlin", "Acme", "M", "30 days",
		"https://cdn/img.png", "img-key", "", "",
		manufacturerID, testNow, testNow,
	}
}

func productRows(rows ...[]driver.Value) *sqlmock.Rows {
	r := sqlmock.NewRows(productColumns)
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}
