// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the HTTP layer
// and the services: typed context keys, JWT issuing and validation,
// password hashing, JSON response writing and object name generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type prevents collisions with keys of other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// IdentityCtxKey stores the [models.Identity] of the authenticated caller.
	IdentityCtxKey = contextKey("identity")

	// UploadFormCtxKey stores the [models.UploadForm] parsed by the upload
	// middleware.
	UploadFormCtxKey = contextKey("uploadForm")
)

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from ctx.
// ok is false when the request was not authenticated.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// WithUploadForm returns a copy of ctx carrying form.
func WithUploadForm(ctx context.Context, form models.UploadForm) context.Context {
	return context.WithValue(ctx, UploadFormCtxKey, form)
}

// GetUploadFormFromContext retrieves the parsed request form from ctx.
func GetUploadFormFromContext(ctx context.Context) (models.UploadForm, bool) {
	form, ok := ctx.Value(UploadFormCtxKey).(models.UploadForm)
	return form, ok
}
