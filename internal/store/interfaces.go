// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProductRepository persists catalog products.
type ProductRepository interface {
	// ListProducts returns every product matching filter, ordered by id.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	// CountProducts returns the number of products matching filter.
	CountProducts(ctx context.Context, filter models.ProductFilter) (int64, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	// CreateProduct inserts a fully built product.
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	// InsertProductColumns inserts the given column values verbatim.
	InsertProductColumns(ctx context.Context, columns map[string]any) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	// AdjustProductStock adds delta to the stock of a product. It returns
	// ErrStockConflict instead of writing when the result would be negative.
	AdjustProductStock(ctx context.Context, id int64, delta int64) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ManufacturerRepository persists manufacturer records.
type ManufacturerRepository interface {
	FindManufacturerByUserID(ctx context.Context, userID int64) (models.Manufacturer, error)
	CreateManufacturer(ctx context.Context, manufacturer models.Manufacturer) (models.Manufacturer, error)
	ApproveManufacturer(ctx context.Context, id int64) (models.Manufacturer, error)
}

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	// UpsertUser inserts user or, when the email is taken, overwrites the
	// name, password hash and role of the existing account.
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
}

// ManufacturerRequestRepository persists manufacturer applications.
type ManufacturerRequestRepository interface {
	CreateRequest(ctx context.Context, request models.ManufacturerRequest) (models.ManufacturerRequest, error)
	FindRequestByEmail(ctx context.Context, email string) (models.ManufacturerRequest, error)
	ListRequestsByStatus(ctx context.Context, status models.RequestStatus) ([]models.ManufacturerRequest, error)
	UpdateRequestStatus(ctx context.Context, email string, status models.RequestStatus) (models.ManufacturerRequest, error)
}

// OrderRepository reads customer orders.
type OrderRepository interface {
	// ListOrdersByManufacturer returns orders whose items contain at least
	// one entry with the given manufacturer_id.
	ListOrdersByManufacturer(ctx context.Context, manufacturerID int64) ([]models.Order, error)
}
