// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-catalog-keeper/internal/logger"

// Storages aggregates every repository used by the service layer.
type Storages struct {
	ProductRepository             ProductRepository
	ManufacturerRepository        ManufacturerRepository
	UserRepository                UserRepository
	ManufacturerRequestRepository ManufacturerRequestRepository
	OrderRepository               OrderRepository
}

// NewStorages builds all PostgreSQL-backed repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		ProductRepository:             NewProductRepository(db, logger),
		ManufacturerRepository:        NewManufacturerRepository(db, logger),
		UserRepository:                NewUserRepository(db, logger),
		ManufacturerRequestRepository: NewManufacturerRequestRepository(db, logger),
		OrderRepository:               NewOrderRepository(db, logger),
	}
}
