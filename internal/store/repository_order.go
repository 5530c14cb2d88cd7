// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository returns a PostgreSQL-backed [OrderRepository].
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.Status, &o.TotalAmount, &o.Items, &o.CreatedAt)
	return o, err
}

func (r *orderRepository) ListOrdersByManufacturer(ctx context.Context, manufacturerID int64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOrdersByManufacturerQuery(manufacturerID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrdersByManufacturer").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrdersByManufacturer").Bool("retryable", isRetryable(err)).Msg("error selecting orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	orders, err := collectRows(rows, scanOrder)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrdersByManufacturer").Msg("error scanning orders")
		return nil, err
	}

	return orders, nil
}
