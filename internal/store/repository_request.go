// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/jackc/pgerrcode"
)

type manufacturerRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewManufacturerRequestRepository returns a PostgreSQL-backed
// [ManufacturerRequestRepository].
func NewManufacturerRequestRepository(db *DB, logger *logger.Logger) ManufacturerRequestRepository {
	logger.Debug().Msg("creating manufacturer request repository")
	return &manufacturerRequestRepository{
		db:     db,
		logger: logger,
	}
}

func scanRequest(row rowScanner) (models.ManufacturerRequest, error) {
	var m models.ManufacturerRequest
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *manufacturerRequestRepository) CreateRequest(ctx context.Context, request models.ManufacturerRequest) (models.ManufacturerRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRequestQuery(request)
	if err != nil {
		return models.ManufacturerRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanRequest(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*manufacturerRequestRepository.CreateRequest").Msg("error inserting request")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ManufacturerRequest{}, ErrRequestAlreadyExists
		default:
			return models.ManufacturerRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *manufacturerRequestRepository) FindRequestByEmail(ctx context.Context, email string) (models.ManufacturerRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRequestByEmailQuery(email)
	if err != nil {
		return models.ManufacturerRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ManufacturerRequest{}, ErrRequestNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*manufacturerRequestRepository.FindRequestByEmail").Msg("error selecting request")
		return models.ManufacturerRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return request, nil
}

func (r *manufacturerRequestRepository) ListRequestsByStatus(ctx context.Context, status models.RequestStatus) ([]models.ManufacturerRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRequestsByStatusQuery(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*manufacturerRequestRepository.ListRequestsByStatus").Msg("error selecting requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, scanRequest)
}

func (r *manufacturerRequestRepository) UpdateRequestStatus(ctx context.Context, email string, status models.RequestStatus) (models.ManufacturerRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRequestStatusQuery(email, status)
	if err != nil {
		return models.ManufacturerRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ManufacturerRequest{}, ErrRequestNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*manufacturerRequestRepository.UpdateRequestStatus").Str("status", string(status)).Msg("error updating request")
		return models.ManufacturerRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return request, nil
}
