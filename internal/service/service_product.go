// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-catalog-keeper/internal/adapter"
	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

// autoManufacturerName names provisioned manufacturers when the caller's
// identity carries no email.
const autoManufacturerName = "Auto Manufacturer"

// idGenerator produces the random prefix of object names.
type idGenerator interface {
	Generate() string
}

type productService struct {
	productRepository      store.ProductRepository
	manufacturerRepository store.ManufacturerRepository
	objects                adapter.ObjectStorage
	ids                    idGenerator
	validator              validators.Validator

	imageBucket string
	videoBucket string

	logger *logger.Logger
}

func NewProductService(
	productRepository store.ProductRepository,
	manufacturerRepository store.ManufacturerRepository,
	objects adapter.ObjectStorage,
	ids idGenerator,
	validator validators.Validator,
	cfg config.Objects,
	logger *logger.Logger,
) ProductService {
	return &productService{
		productRepository:      productRepository,
		manufacturerRepository: manufacturerRepository,
		objects:                objects,
		ids:                    ids,
		validator:              validator,
		imageBucket:            cfg.ImageBucket,
		videoBucket:            cfg.VideoBucket,
		logger:                 logger,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepository.ListProducts(ctx, models.ProductFilter{})
}

func (s *productService) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepository.ListProducts(ctx, models.ProductFilter{Category: category})
}

func (s *productService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return s.productRepository.GetProduct(ctx, id)
}

func (s *productService) CountProducts(ctx context.Context) (models.ProductCount, error) {
	total, err := s.productRepository.CountProducts(ctx, models.ProductFilter{})
	if err != nil {
		return models.ProductCount{}, err
	}
	return models.ProductCount{TotalProducts: total}, nil
}

func (s *productService) ListManufacturerProducts(ctx context.Context, identity models.Identity) (models.ManufacturerProducts, error) {
	if identity.IsMaster() {
		return models.ManufacturerProducts{}, ErrMasterAdminScope
	}

	manufacturer, err := s.manufacturerRepository.FindManufacturerByUserID(ctx, identity.UserID)
	if err != nil {
		return models.ManufacturerProducts{}, err
	}

	products, err := s.productRepository.ListProducts(ctx, models.ProductFilter{ManufacturerID: &manufacturer.ID})
	if err != nil {
		return models.ManufacturerProducts{}, err
	}

	return models.ManufacturerProducts{
		TotalProducts: int64(len(products)),
		Products:      products,
	}, nil
}

func (s *productService) CreateProduct(ctx context.Context, fields map[string]any) (models.Product, error) {
	if len(fields) == 0 {
		return models.Product{}, ErrInvalidDataProvided
	}

	columns, err := insertColumns(fields)
	if err != nil {
		return models.Product{}, err
	}

	created, err := s.productRepository.InsertProductColumns(ctx, columns)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInsertingProduct, err)
	}
	return created, nil
}

func (s *productService) AddProduct(ctx context.Context, identity models.Identity, form models.ProductForm) (models.Product, error) {
	log := logger.FromContext(ctx)

	input, err := parseProductInput(form.Fields)
	if err != nil {
		return models.Product{}, err
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Product{}, err
	}

	manufacturer, err := s.resolveManufacturer(ctx, identity)
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Category:       input.Category,
		Stock:          input.Stock,
		Location:       input.Location,
		Company:        input.Company,
		Size:           input.Size,
		ReturnPolicy:   input.ReturnPolicy,
		ManufacturerID: &manufacturer.ID,
	}

	if form.Image != nil {
		image, err := s.upload(ctx, s.imageBucket, *form.Image)
		if err != nil {
			return models.Product{}, err
		}
		product.ImageURL, product.ImageKey = image.URL, image.Key
	}

	if form.Video != nil {
		video, err := s.upload(ctx, s.videoBucket, *form.Video)
		if err != nil {
			return models.Product{}, err
		}
		product.VideoURL, product.VideoKey = video.URL, video.Key
	}

	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		if product.ImageKey != "" || product.VideoKey != "" {
			log.Warn().
				Str("func", "*productService.AddProduct").
				Str("image_key", product.ImageKey).
				Str("video_key", product.VideoKey).
				Msg("product insert failed after media upload, objects left in storage")
		}
		return models.Product{}, fmt.Errorf("%w: %w", ErrInsertingProduct, err)
	}

	return created, nil
}

// resolveManufacturer returns the caller's manufacturer, creating one named
// after the caller's email when none exists.
func (s *productService) resolveManufacturer(ctx context.Context, identity models.Identity) (models.Manufacturer, error) {
	log := logger.FromContext(ctx)

	manufacturer, err := s.manufacturerRepository.FindManufacturerByUserID(ctx, identity.UserID)
	if err == nil {
		return manufacturer, nil
	}
	if !errors.Is(err, store.ErrManufacturerNotFound) {
		return models.Manufacturer{}, err
	}

	name := identity.Email
	if name == "" {
		name = autoManufacturerName
	}

	manufacturer, err = s.manufacturerRepository.CreateManufacturer(ctx, models.Manufacturer{
		UserID: identity.UserID,
		Name:   name,
	})
	if err != nil {
		log.Err(err).Str("func", "*productService.resolveManufacturer").Int64("user_id", identity.UserID).Msg("error creating manufacturer")
		return models.Manufacturer{}, fmt.Errorf("%w: %w", ErrProvisioningManufacturer, err)
	}

	log.Info().Int64("user_id", identity.UserID).Int64("manufacturer_id", manufacturer.ID).Msg("manufacturer provisioned")
	return manufacturer, nil
}

func (s *productService) upload(ctx context.Context, bucket string, file models.MediaFile) (models.StoredObject, error) {
	key := utils.ObjectName(s.ids.Generate(), file.FileName)

	object, err := s.objects.Upload(ctx, bucket, key, file)
	if err != nil {
		return models.StoredObject{}, fmt.Errorf("%w: %w", ErrUploadingMedia, err)
	}
	return object, nil
}

// removeObject deletes a replaced media object. Failures only get logged:
// the product update goes ahead and the old object stays behind.
func (s *productService) removeObject(ctx context.Context, bucket, key string) {
	if key == "" {
		return
	}

	if err := s.objects.Delete(ctx, bucket, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*productService.removeObject").
			Str("bucket", bucket).
			Str("key", key).
			Msg("error removing replaced media")
	}
}

func (s *productService) UpdateProduct(ctx context.Context, identity models.Identity, id int64, form models.ProductForm) (models.Product, error) {
	product, err := s.productRepository.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	// Ownership is checked against the caller's user id, not their
	// manufacturer id. AdjustStock resolves the manufacturer first.
	if !product.OwnedBy(identity.UserID) {
		return models.Product{}, ErrNotProductOwner
	}

	update, err := parseProductUpdate(form.Fields)
	if err != nil {
		return models.Product{}, err
	}

	hasMedia := form.Image != nil || form.Video != nil
	if err = s.validator.Validate(ctx, update); err != nil && !(hasMedia && errors.Is(err, validators.ErrNoFieldsToUpdate)) {
		return models.Product{}, err
	}

	if form.Image != nil {
		s.removeObject(ctx, s.imageBucket, product.ImageKey)

		image, err := s.upload(ctx, s.imageBucket, *form.Image)
		if err != nil {
			return models.Product{}, err
		}
		update.ImageURL, update.ImageKey = &image.URL, &image.Key
	}

	if form.Video != nil {
		s.removeObject(ctx, s.videoBucket, product.VideoKey)

		video, err := s.upload(ctx, s.videoBucket, *form.Video)
		if err != nil {
			return models.Product{}, err
		}
		update.VideoURL, update.VideoKey = &video.URL, &video.Key
	}

	return s.productRepository.UpdateProduct(ctx, id, update)
}

func (s *productService) AdjustStock(ctx context.Context, identity models.Identity, id int64, delta int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := s.productRepository.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	manufacturer, err := s.manufacturerRepository.FindManufacturerByUserID(ctx, identity.UserID)
	if errors.Is(err, store.ErrManufacturerNotFound) {
		return models.Product{}, ErrManufacturerNotAuthorized
	}
	if err != nil {
		return models.Product{}, err
	}

	if !product.OwnedBy(manufacturer.ID) {
		return models.Product{}, ErrManufacturerNotAuthorized
	}

	if delta > 0 && product.Stock > 0 && delta > math.MaxInt64-product.Stock {
		return models.Product{}, fmt.Errorf("%w: stock adjustment overflows", ErrInvalidDataProvided)
	}
	if (product.Stock < 0 && delta < 0) || product.Stock+delta < 0 {
		return models.Product{}, ErrInsufficientStock
	}

	adjusted, err := s.productRepository.AdjustProductStock(ctx, id, delta)
	if errors.Is(err, store.ErrStockConflict) {
		// stock changed between the read above and the guarded write
		log.Warn().Int64("product_id", id).Int64("delta", delta).Msg("concurrent stock change rejected adjustment")
		return models.Product{}, ErrInsufficientStock
	}
	if err != nil {
		return models.Product{}, err
	}

	return adjusted, nil
}

// DeleteProduct removes the product for any authenticated caller. Media
// objects of the product are not removed.
func (s *productService) DeleteProduct(ctx context.Context, identity models.Identity, id int64) error {
	if _, err := s.productRepository.GetProduct(ctx, id); err != nil {
		return err
	}

	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("product_id", id).Int64("user_id", identity.UserID).Msg("product deleted")
	return nil
}
