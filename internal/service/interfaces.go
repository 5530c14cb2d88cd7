// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// ProductService covers catalog reads and the manufacturer-owned product
// lifecycle.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	CountProducts(ctx context.Context) (models.ProductCount, error)

	// ListManufacturerProducts returns the products of the caller's
	// manufacturer. Master admins are refused with ErrMasterAdminScope.
	ListManufacturerProducts(ctx context.Context, identity models.Identity) (models.ManufacturerProducts, error)

	// CreateProduct inserts fields as product columns without assigning an
	// owner.
	CreateProduct(ctx context.Context, fields map[string]any) (models.Product, error)

	// AddProduct creates a product owned by the caller's manufacturer,
	// provisioning the manufacturer on first use and uploading media.
	AddProduct(ctx context.Context, identity models.Identity, form models.ProductForm) (models.Product, error)

	// UpdateProduct applies a partial update and replaces submitted media.
	UpdateProduct(ctx context.Context, identity models.Identity, id int64, form models.ProductForm) (models.Product, error)

	// AdjustStock adds delta to the product stock.
	AdjustStock(ctx context.Context, identity models.Identity, id int64, delta int64) (models.Product, error)

	DeleteProduct(ctx context.Context, identity models.Identity, id int64) error
}

// AuthService handles accounts, tokens and the manufacturer approval
// workflow.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	UpdatePassword(ctx context.Context, identity models.Identity, request models.UpdatePasswordRequest) error

	ListPendingManufacturers(ctx context.Context) ([]models.ManufacturerRequest, error)
	// AuthorizeManufacturer marks the request approved.
	AuthorizeManufacturer(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error)
	// ApproveManufacturer marks the request approved and flags (or creates)
	// the manufacturer record of the requesting account.
	ApproveManufacturer(ctx context.Context, request models.ApprovalRequest) (models.Manufacturer, error)
	DeclineManufacturer(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error)

	// EnsureMasterAccount creates or resets the master admin account.
	EnsureMasterAccount(ctx context.Context, email, password string) (models.User, error)
}

// OrderService reads customer orders.
type OrderService interface {
	ListManufacturerOrders(ctx context.Context, manufacturerID int64) ([]models.Order, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppVersion
}
