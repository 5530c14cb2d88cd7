// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the catalog use cases on top of the storage
// repositories and the object storage adapter.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-catalog-keeper/internal/adapter"
	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

type Services struct {
	ProductService ProductService
	AuthService    AuthService
	OrderService   OrderService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, objects adapter.ObjectStorage, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ProductService: NewProductService(
			storages.ProductRepository,
			storages.ManufacturerRepository,
			objects,
			utils.NewUUIDGenerator(),
			validator,
			cfg.Storage.Objects,
			logger,
		),
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.ManufacturerRequestRepository,
			storages.ManufacturerRepository,
			validator,
			cfg.App,
			logger,
		),
		OrderService:   NewOrderService(storages.OrderRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
