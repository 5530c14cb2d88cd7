// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Manufacturer is a seller entity linked one-to-one with a user account.
type Manufacturer struct {
	// ID is the storage-assigned identifier.
	ID int64 `json:"id"`

	// UserID links the manufacturer to the account that owns it.
	UserID int64 `json:"user_id"`

	// Name is the display name. Auto-provisioned manufacturers use the
	// owner's email here.
	Name string `json:"name"`

	// Approved is set once the master admin approves the account.
	Approved bool `json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Manufacturer model.
func (m Manufacturer) TableName() string {
	return "manufacturers"
}

// RequestStatus is the lifecycle state of a manufacturer request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// ManufacturerRequest is a pending application from a would-be manufacturer.
// The email is unique across requests.
type ManufacturerRequest struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ManufacturerRequest model.
func (m ManufacturerRequest) TableName() string {
	return "manufacturer_requests"
}

// ApprovalRequest is the body of the master admin approval endpoints.
type ApprovalRequest struct {
	Email string `json:"email" validate:"required,email"`
}
