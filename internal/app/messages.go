// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages written into the "message"
// field of HTTP response envelopes. Keeping them in one place keeps the
// wording consistent across handlers and middleware.
package app

// Request and routing messages.
const (
	MsgInvalidJSON           = "Invalid JSON was passed"
	MsgInvalidFormData       = "Invalid form data"
	MsgInvalidGzipData       = "Invalid gzip data"
	MsgRequestTooLarge       = "Request too large"
	MsgInvalidProductID      = "Invalid product id"
	MsgInvalidManufacturerID = "Invalid manufacturer id"
	MsgRouteNotFound         = "Route not found"
	MsgMethodNotAllowed      = "Method not allowed"
)

// Authentication messages.
const (
	MsgUnauthorized = "Unauthorized"
	MsgTokenExpired = "Token expired"

	// MsgAccessDenied is returned when the caller's role does not allow the
	// route.
	MsgAccessDenied = "Access denied"

	MsgRegistrationSucceeded = "Registration successful, awaiting approval"
	MsgRegistrationFailed    = "Registration failed"
	MsgEmailAlreadyExists    = "Email already registered"

	MsgLoginSucceeded          = "Login successful"
	MsgLoginFailed             = "Login failed"
	MsgInvalidEmailOrPassword  = "Invalid email or password"
	MsgManufacturerNotApproved = "Manufacturer account is not approved yet"

	MsgPasswordUpdated       = "Password updated successfully"
	MsgWrongOldPassword      = "Old password is incorrect"
	MsgErrorUpdatingPassword = "Error updating password"
)

// Manufacturer approval messages.
const (
	MsgErrorFetchingPending        = "Error fetching pending manufacturers"
	MsgManufacturerAuthorized      = "Manufacturer authorized"
	MsgManufacturerApproved        = "Manufacturer approved"
	MsgManufacturerDeclined        = "Manufacturer declined"
	MsgManufacturerRequestNotFound = "Manufacturer request not found"
	MsgErrorProcessingManufacturer = "Error processing manufacturer request"
)

// Product messages.
const (
	// MsgProductNotFound is the only field of 404 product responses.
	MsgProductNotFound = "Product not found"

	MsgErrorFetchingProducts = "Error fetching products"
	MsgErrorFetchingProduct  = "Error fetching product"
	MsgErrorCountingProducts = "Error counting products"

	// MsgMasterAdminScope answers a master admin calling a
	// manufacturer-scoped listing.
	MsgMasterAdminScope               = "Master admin should use the master endpoint"
	MsgManufacturerNotFound           = "Manufacturer not found"
	MsgErrorFetchingManufacturerItems = "Error fetching manufacturer products"

	// MsgInsertError answers any failed product insert, owned or unscoped.
	MsgInsertError     = "Insert error"
	MsgProductCreated  = "Product created successfully"
	MsgProductAdded    = "Product added successfully"
	MsgErrorAddingItem = "Error adding product"

	MsgProductUpdated       = "Product updated successfully"
	MsgNotProductOwner      = "Unauthorized to update this product"
	MsgErrorUpdatingProduct = "Error updating product"

	MsgQuantityRequired          = "Quantity is required"
	MsgStockUpdated              = "Stock updated successfully"
	MsgInsufficientStock         = "Insufficient stock"
	MsgManufacturerNotAuthorized = "Manufacturer not found or unauthorized"
	MsgErrorUpdatingStock        = "Error updating stock"

	MsgProductDeleted       = "Product deleted successfully"
	MsgErrorDeletingProduct = "Error deleting product"
)

// Order messages.
const (
	MsgErrorFetchingOrders = "Error fetching orders"
)
