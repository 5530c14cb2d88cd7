// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors reported by the authentication middleware while reading the
// "Authorization" header.
var (
	// ErrEmptyAuthorizationHeader means the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not of the form
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the bearer scheme is present but the token is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSON        = errors.New("invalid JSON was passed")
	ErrInvalidID          = errors.New("id must be a positive integer")
	ErrInvalidForm        = errors.New("invalid form data")
	ErrRequestTooLarge    = errors.New("request body is too large")
	ErrMissingIdentity    = errors.New("request is not authenticated")
	ErrInsufficientRights = errors.New("insufficient rights")
)
