// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by the repositories.
var (
	// ErrProductNotFound is returned when no product has the requested id.
	ErrProductNotFound = errors.New("product not found")

	// ErrManufacturerNotFound is returned when no manufacturer matches the
	// lookup, or a product references a manufacturer that does not exist.
	ErrManufacturerNotFound = errors.New("manufacturer not found")

	// ErrManufacturerAlreadyExists is returned when a user already owns a
	// manufacturer record.
	ErrManufacturerAlreadyExists = errors.New("manufacturer already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a user with the email exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrRequestNotFound is returned when no manufacturer request matches.
	ErrRequestNotFound = errors.New("manufacturer request not found")

	// ErrRequestAlreadyExists is returned when a request for the email exists.
	ErrRequestAlreadyExists = errors.New("manufacturer request already exists")

	// ErrUnknownColumn is returned when an insert names a column the table
	// does not have.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidColumnValue is returned when a value is rejected by a column
	// type, a NOT NULL or a CHECK constraint.
	ErrInvalidColumnValue = errors.New("invalid column value")

	// ErrStockConflict is returned when a stock adjustment would make the
	// stock negative.
	ErrStockConflict = errors.New("stock adjustment rejected")
)

// Infrastructure errors wrapping database failures.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")
)
