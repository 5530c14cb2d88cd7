// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role carried by a user and its tokens.
type Role string

const (
	// RoleMaster is the single super-admin that manages manufacturer approvals.
	RoleMaster Role = "master"
	// RoleManufacturer is a seller that manages its own products.
	RoleManufacturer Role = "manufacturer"
)

// User represents an account entity used for authentication and authorization.
// PasswordHash must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the password, never plaintext.
	PasswordHash string `json:"-"`

	Role Role `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}

// IsMaster reports whether the caller is the master admin.
func (i Identity) IsMaster() bool {
	return i.Role == RoleMaster
}

// RegisterRequest is the body of the registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the body of the password change endpoint.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
