// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("object storage rejected the request")
	ErrUnauthorized        = errors.New("object storage unauthorized")
	ErrObjectNotFound      = errors.New("object or bucket not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrObjectTooLarge      = errors.New("object too large")

	// ErrStorageUnavailable covers transport failures and 5xx responses.
	ErrStorageUnavailable = errors.New("object storage unavailable")

	ErrInvalidBaseURL = errors.New("invalid object storage base url")
)
