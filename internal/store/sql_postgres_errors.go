// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/jackc/pgerrcode"
)

// isRetryable reports whether a PostgreSQL failure is transient: a lost
// connection, a serialization failure or a server that is not accepting
// connections yet. It is logged alongside query errors.
func isRetryable(err error) bool {
	switch postgresError(err) {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return true
	}
	return false
}

// classifyProductWriteError maps a failed product insert or update to a
// domain error. Unrecognised failures are wrapped with ErrExecutingQuery.
func classifyProductWriteError(err error) error {
	code := postgresError(err)
	switch {
	case code == pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrManufacturerNotFound, err)
	case code == pgerrcode.UndefinedColumn:
		return fmt.Errorf("%w: %w", ErrUnknownColumn, err)
	case code == pgerrcode.NotNullViolation,
		code == pgerrcode.CheckViolation,
		pgerrcode.IsDataException(code):
		return fmt.Errorf("%w: %w", ErrInvalidColumnValue, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
