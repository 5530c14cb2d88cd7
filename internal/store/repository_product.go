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
)

type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository returns a PostgreSQL-backed [ProductRepository].
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p              models.Product
		manufacturerID sql.NullInt64
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock,
		&p.Location, &p.Company, &p.Size, &p.ReturnPolicy,
		&p.ImageURL, &p.ImageKey, &p.VideoURL, &p.VideoKey,
		&manufacturerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}

	if manufacturerID.Valid {
		id := manufacturerID.Int64
		p.ManufacturerID = &id
	}

	return p, nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Bool("retryable", isRetryable(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	products, err := collectRows(rows, scanProduct)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error scanning rows")
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CountProducts(ctx context.Context, filter models.ProductFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountProductsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CountProducts").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*productRepository.CountProducts").Msg("error counting products")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Int64("product_id", id).Msg("error selecting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return r.insert(ctx, "*productRepository.CreateProduct", productInsertColumns(product))
}

func (r *productRepository) InsertProductColumns(ctx context.Context, columns map[string]any) (models.Product, error) {
	return r.insert(ctx, "*productRepository.InsertProductColumns", columns)
}

func (r *productRepository) insert(ctx context.Context, funcName string, columns map[string]any) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(columns)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error inserting product")
		return models.Product{}, classifyProductWriteError(err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Int64("product_id", id).Msg("error updating product")
		return models.Product{}, classifyProductWriteError(err)
	}

	return product, nil
}

func (r *productRepository) AdjustProductStock(ctx context.Context, id int64, delta int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAdjustProductStockQuery(id, delta)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.AdjustProductStock").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		// the product was read by the caller, so a missing row means the guard rejected the delta
		return models.Product{}, ErrStockConflict
	}
	if err != nil {
		log.Err(err).Str("func", "*productRepository.AdjustProductStock").Int64("product_id", id).Msg("error adjusting stock")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return product, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Int64("product_id", id).Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
