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

type manufacturerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewManufacturerRepository returns a PostgreSQL-backed [ManufacturerRepository].
func NewManufacturerRepository(db *DB, logger *logger.Logger) ManufacturerRepository {
	logger.Debug().Msg("creating manufacturer repository")
	return &manufacturerRepository{
		db:     db,
		logger: logger,
	}
}

func scanManufacturer(row rowScanner) (models.Manufacturer, error) {
	var m models.Manufacturer
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Approved, &m.CreatedAt)
	return m, err
}

func (r *manufacturerRepository) FindManufacturerByUserID(ctx context.Context, userID int64) (models.Manufacturer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectManufacturerByUserIDQuery(userID)
	if err != nil {
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	manufacturer, err := scanManufacturer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Manufacturer{}, ErrManufacturerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*manufacturerRepository.FindManufacturerByUserID").Int64("user_id", userID).Msg("error selecting manufacturer")
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return manufacturer, nil
}

func (r *manufacturerRepository) CreateManufacturer(ctx context.Context, manufacturer models.Manufacturer) (models.Manufacturer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertManufacturerQuery(manufacturer)
	if err != nil {
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanManufacturer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*manufacturerRepository.CreateManufacturer").Msg("error inserting manufacturer")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Manufacturer{}, ErrManufacturerAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Manufacturer{}, ErrUserNotFound
		default:
			return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *manufacturerRepository) ApproveManufacturer(ctx context.Context, id int64) (models.Manufacturer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildApproveManufacturerQuery(id)
	if err != nil {
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	manufacturer, err := scanManufacturer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Manufacturer{}, ErrManufacturerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*manufacturerRepository.ApproveManufacturer").Int64("manufacturer_id", id).Msg("error approving manufacturer")
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return manufacturer, nil
}
