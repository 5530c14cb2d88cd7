// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidationFailed wraps every presence or format failure reported
	// for a request payload.
	ErrValidationFailed = errors.New("validation failed")

	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrMissingQuantity  = errors.New("quantity is required")
	ErrNegativeStock    = errors.New("stock cannot be negative")
)
