// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnknownField        = errors.New("unknown field")
	ErrInvalidFieldValue   = errors.New("invalid field value")

	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrWrongPassword           = errors.New("wrong password")
	ErrManufacturerNotApproved = errors.New("manufacturer account is not approved")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Product workflow errors.
var (
	// ErrMasterAdminScope is returned when a master admin calls a
	// manufacturer-scoped operation.
	ErrMasterAdminScope = errors.New("master admin should use the master endpoint")

	ErrNotProductOwner = errors.New("product belongs to another manufacturer")

	// ErrManufacturerNotAuthorized is returned by stock adjustment when the
	// caller has no manufacturer or it does not own the product.
	ErrManufacturerNotAuthorized = errors.New("manufacturer not found or unauthorized")

	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInsertingProduct wraps any store failure of a product insert.
	ErrInsertingProduct = errors.New("error inserting product")

	ErrProvisioningManufacturer = errors.New("error provisioning manufacturer")
	ErrUploadingMedia           = errors.New("error uploading media")
)
