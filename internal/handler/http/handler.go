// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
)

// Handler serves the catalog REST API on top of the service layer.
type Handler struct {
	services *service.Services

	// maxUploadSize caps multipart and form request bodies.
	maxUploadSize int64
	// requestTimeout bounds handling of a single request. Zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxUploadSize:  cfg.MaxUploadSize,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
