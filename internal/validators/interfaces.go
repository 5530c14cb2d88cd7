// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides presence checks for request payloads.
//
// Struct payloads are checked against their `validate` tags with
// go-playground/validator. A few payloads that cannot be described by tags
// alone (partial updates, stock adjustments) get an extra hand-written check.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
