// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

type orderService struct {
	orderRepository store.OrderRepository

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

func (s *orderService) ListManufacturerOrders(ctx context.Context, manufacturerID int64) ([]models.Order, error) {
	if manufacturerID <= 0 {
		return nil, ErrInvalidDataProvided
	}
	return s.orderRepository.ListOrdersByManufacturer(ctx, manufacturerID)
}
