// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/mock"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testImageBucket = "product-images"
	testVideoBucket = "product-videos"
)

// sequenceIDs hands out ids in order, repeating the last one when exhausted.
type sequenceIDs struct {
	ids []string
	n   int
}

func (s *sequenceIDs) Generate() string {
	id := s.ids[min(s.n, len(s.ids)-1)]
	s.n++
	return id
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

type productSvcMocks struct {
	products      *mock.MockProductRepository
	manufacturers *mock.MockManufacturerRepository
	objects       *mock.MockObjectStorage
}

func newTestProductSvc(t *testing.T, ids ...string) (ProductService, productSvcMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := productSvcMocks{
		products:      mock.NewMockProductRepository(ctrl),
		manufacturers: mock.NewMockManufacturerRepository(ctrl),
		objects:       mock.NewMockObjectStorage(ctrl),
	}
	if len(ids) == 0 {
		ids = []string{"id-1"}
	}

	svc := NewProductService(
		m.products,
		m.manufacturers,
		m.objects,
		&sequenceIDs{ids: ids},
		validators.NewRequestValidator(),
		config.Objects{ImageBucket: testImageBucket, VideoBucket: testVideoBucket},
		logger.Nop(),
	)

	return svc, m
}

var (
	manufacturerIdentity = models.Identity{UserID: 7, Email: "maker@example.com", Role: models.RoleManufacturer}
	masterIdentity       = models.Identity{UserID: 1, Email: "root@example.com", Role: models.RoleMaster}
)

// ── reads ────────────────────────────────────────────────────────────────────

func TestProductService_ListProducts_NoFilter(t *testing.T) {
	svc, m := newTestProductSvc(t)
	want := []models.Product{{ID: 1, Name: "Chair"}}

	m.products.EXPECT().ListProducts(gomock.Any(), models.ProductFilter{}).Return(want, nil)

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_ListProductsByCategory(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().ListProducts(gomock.Any(), models.ProductFilter{Category: "garden"}).Return([]models.Product{}, nil)

	got, err := svc.ListProductsByCategory(context.Background(), "garden")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(404)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_CountProducts(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().CountProducts(gomock.Any(), models.ProductFilter{}).Return(int64(12), nil)

	got, err := svc.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ProductCount{TotalProducts: 12}, got)
}

func TestProductService_CountProducts_Error(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().CountProducts(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrExecutingQuery)

	_, err := svc.CountProducts(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestProductService_ListManufacturerProducts_MasterRefused(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	_, err := svc.ListManufacturerProducts(context.Background(), masterIdentity)
	assert.ErrorIs(t, err, ErrMasterAdminScope)
}

func TestProductService_ListManufacturerProducts_NoManufacturer(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{}, store.ErrManufacturerNotFound)

	_, err := svc.ListManufacturerProducts(context.Background(), manufacturerIdentity)
	assert.ErrorIs(t, err, store.ErrManufacturerNotFound)
}

func TestProductService_ListManufacturerProducts_Success(t *testing.T) {
	svc, m := newTestProductSvc(t)
	products := []models.Product{{ID: 1, ManufacturerID: int64Ptr(3)}, {ID: 2, ManufacturerID: int64Ptr(3)}}

	gomock.InOrder(
		m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3, UserID: 7}, nil),
		m.products.EXPECT().ListProducts(gomock.Any(), models.ProductFilter{ManufacturerID: int64Ptr(3)}).Return(products, nil),
	)

	got, err := svc.ListManufacturerProducts(context.Background(), manufacturerIdentity)
	require.NoError(t, err)
	assert.Equal(t, models.ManufacturerProducts{TotalProducts: 2, Products: products}, got)
}

// ── CreateProduct ────────────────────────────────────────────────────────────

func TestProductService_CreateProduct_Empty(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	_, err := svc.CreateProduct(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProductService_CreateProduct_UnknownColumn(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	_, err := svc.CreateProduct(context.Background(), map[string]any{"name": "Desk", "colour": "red"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestProductService_CreateProduct_InsertsNormalizedColumns(t *testing.T) {
	svc, m := newTestProductSvc(t)

	want := map[string]any{
		"name":            "Desk",
		"return_policy":   "30 days",
		"price":           decimal.RequireFromString("19.99"),
		"stock":           int64(4),
		"manufacturer_id": nil,
	}
	m.products.EXPECT().InsertProductColumns(gomock.Any(), want).Return(models.Product{ID: 10, Name: "Desk"}, nil)

	got, err := svc.CreateProduct(context.Background(), map[string]any{
		"name":            "Desk",
		"returnPolicy":    "30 days",
		"price":           json.Number("19.99"),
		"stock":           json.Number("4"),
		"manufacturer_id": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
}

func TestProductService_CreateProduct_StoreError(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().InsertProductColumns(gomock.Any(), gomock.Any()).Return(models.Product{}, store.ErrManufacturerNotFound)

	_, err := svc.CreateProduct(context.Background(), map[string]any{"name": "Desk", "manufacturer_id": json.Number("999")})
	assert.ErrorIs(t, err, ErrInsertingProduct)
	assert.ErrorIs(t, err, store.ErrManufacturerNotFound)
}

// ── AddProduct ───────────────────────────────────────────────────────────────

func TestProductService_AddProduct_ExistingManufacturerWithImage(t *testing.T) {
	svc, m := newTestProductSvc(t, "uuid-1")
	image := models.MediaFile{FieldName: "imageFile", FileName: "photo.png", ContentType: "image/png", Data: []byte("png")}

	gomock.InOrder(
		m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3, UserID: 7}, nil),
		m.objects.EXPECT().Upload(gomock.Any(), testImageBucket, "uuid-1-photo.png", image).Return(models.StoredObject{
			Bucket: testImageBucket,
			Key:    "uuid-1-photo.png",
			URL:    "https://cdn/product-images/uuid-1-photo.png",
		}, nil),
		m.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Product) (models.Product, error) {
				assert.Equal(t, "Lamp", p.Name)
				assert.Equal(t, int64(5), p.Stock)
				assert.True(t, decimal.RequireFromString("12.50").Equal(p.Price))
				assert.Equal(t, "14 days", p.ReturnPolicy)
				require.NotNil(t, p.ManufacturerID)
				assert.Equal(t, int64(3), *p.ManufacturerID)
				assert.Equal(t, "https://cdn/product-images/uuid-1-photo.png", p.ImageURL)
				assert.Equal(t, "uuid-1-photo.png", p.ImageKey)
				assert.Empty(t, p.VideoURL)
				p.ID = 40
				return p, nil
			},
		),
	)

	got, err := svc.AddProduct(context.Background(), manufacturerIdentity, models.ProductForm{
		Fields: map[string]string{"name": "Lamp", "price": "12.50", "stock": "5", "returnPolicy": "14 days"},
		Image:  &image,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.ID)
}

func TestProductService_AddProduct_ProvisionsManufacturerNamedAfterEmail(t *testing.T) {
	svc, m := newTestProductSvc(t)

	gomock.InOrder(
		m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{}, store.ErrManufacturerNotFound),
		m.manufacturers.EXPECT().CreateManufacturer(gomock.Any(), models.Manufacturer{UserID: 7, Name: "maker@example.com"}).
			Return(models.Manufacturer{ID: 99, UserID: 7, Name: "maker@example.com"}, nil),
		m.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Product) (models.Product, error) {
				return p, nil
			},
		),
	)

	got, err := svc.AddProduct(context.Background(), manufacturerIdentity, models.ProductForm{
		Fields: map[string]string{"name": "Lamp"},
	})
	require.NoError(t, err)
	require.NotNil(t, got.ManufacturerID)
	assert.Equal(t, int64(99), *got.ManufacturerID)
}

func TestProductService_AddProduct_ProvisionsPlaceholderNameWithoutEmail(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(8)).Return(models.Manufacturer{}, store.ErrManufacturerNotFound)
	m.manufacturers.EXPECT().CreateManufacturer(gomock.Any(), models.Manufacturer{UserID: 8, Name: "Auto Manufacturer"}).
		Return(models.Manufacturer{ID: 5, UserID: 8}, nil)
	m.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(models.Product{ID: 1}, nil)

	_, err := svc.AddProduct(context.Background(), models.Identity{UserID: 8}, models.ProductForm{
		Fields: map[string]string{"name": "Lamp"},
	})
	require.NoError(t, err)
}

func TestProductService_AddProduct_ProvisioningFails(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), gomock.Any()).Return(models.Manufacturer{}, store.ErrManufacturerNotFound)
	m.manufacturers.EXPECT().CreateManufacturer(gomock.Any(), gomock.Any()).Return(models.Manufacturer{}, store.ErrManufacturerAlreadyExists)

	_, err := svc.AddProduct(context.Background(), manufacturerIdentity, models.ProductForm{
		Fields: map[string]string{"name": "Lamp"},
	})
	assert.ErrorIs(t, err, ErrProvisioningManufacturer)
	assert.ErrorIs(t, err, store.ErrManufacturerAlreadyExists)
}

func TestProductService_AddProduct_ManufacturerLookupFails(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), gomock.Any()).Return(models.Manufacturer{}, store.ErrExecutingQuery)

	_, err := svc.AddProduct(context.Background(), manufacturerIdentity, models.ProductForm{
		Fields: map[string]string{"name": "Lamp"},
	})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestProductService_AddProduct_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		wantErr error
	}{
		{"missing name", map[string]string{"price": "1"}, validators.ErrValidationFailed},
		{"negative stock", map[string]string{"name": "Lamp", "stock": "-1"}, validators.ErrValidationFailed},
		{"bad price", map[string]string{"name": "Lamp", "price": "cheap"}, ErrInvalidFieldValue},
		{"bad stock", map[string]string{"name": "Lamp", "stock": "1.5"}, ErrInvalidFieldValue},
		{"unknown field", map[string]string{"name": "Lamp", "colour": "red"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestProductSvc(t)

			_, err := svc.AddProduct(context.Background(), manufacturerIdentity, models.ProductForm{Fields: tt.fields})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_AddProduct_UploadFails(t *testing.T) {
	svc, m := newTestProductSvc(t)
	video := models.MediaFile{FileName: "clip.mp4", Data: []byte("mp4")}

	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), gomock.Any()).Return(models.Manufacturer{ID: 3}, nil)
	m.objects.EXPECT().Upload(gomock.Any(), testVideoBucket, "id-1-clip.mp4", video).
		Return(models.StoredObject{}, errors.New("storage down"))

	_, err := svc.AddProduct(context.Background(), manufacturerIdentity, models.ProductForm{
		Fields: map[string]string{"name": "Lamp"},
		Video:  &video,
	})
	assert.ErrorIs(t, err, ErrUploadingMedia)
}

func TestProductService_AddProduct_InsertFailsAfterUpload(t *testing.T) {
	svc, m := newTestProductSvc(t)
	image := models.MediaFile{FileName: "a.png", Data: []byte("png")}

	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), gomock.Any()).Return(models.Manufacturer{ID: 3}, nil)
	m.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.StoredObject{Key: "id-1-a.png", URL: "u"}, nil)
	m.products.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(models.Product{}, store.ErrInvalidColumnValue)

	_, err := svc.AddProduct(context.Background(), manufacturerIdentity, models.ProductForm{
		Fields: map[string]string{"name": "Lamp"},
		Image:  &image,
	})
	assert.ErrorIs(t, err, ErrInsertingProduct)
	assert.ErrorIs(t, err, store.ErrInvalidColumnValue)
}

// ── UpdateProduct ────────────────────────────────────────────────────────────

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{
		Fields: map[string]string{"name": "x"},
	})
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(3)}, nil)

	_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{
		Fields: map[string]string{"name": "x"},
	})
	assert.ErrorIs(t, err, ErrNotProductOwner)
}

// The update path compares the product's manufacturer_id with the caller's
// user id directly. A product whose manufacturer_id happens to equal the
// user id is accepted without resolving the manufacturer record.
func TestProductService_UpdateProduct_OwnershipComparesUserID(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7)}, nil)
	m.products.EXPECT().UpdateProduct(gomock.Any(), int64(9), models.ProductUpdate{Name: strPtr("Renamed")}).
		Return(models.Product{ID: 9, Name: "Renamed"}, nil)

	got, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{
		Fields: map[string]string{"name": "Renamed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestProductService_UpdateProduct_UnownedProductRejected(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9}, nil)

	_, err := svc.UpdateProduct(context.Background(), masterIdentity, 9, models.ProductForm{
		Fields: map[string]string{"name": "x"},
	})
	assert.ErrorIs(t, err, ErrNotProductOwner)
}

func TestProductService_UpdateProduct_CoercesAndRenames(t *testing.T) {
	svc, m := newTestProductSvc(t)
	price := decimal.RequireFromString("9.99")

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7)}, nil)
	m.products.EXPECT().UpdateProduct(gomock.Any(), int64(9), models.ProductUpdate{
		Price:        &price,
		Stock:        int64Ptr(3),
		ReturnPolicy: strPtr("none"),
	}).Return(models.Product{ID: 9}, nil)

	_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{
		Fields: map[string]string{"price": "9.99", "stock": "3", "returnPolicy": "none", "return_policy": "ignored"},
	})
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_EmptyNumbersIgnored(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7)}, nil)
	m.products.EXPECT().UpdateProduct(gomock.Any(), int64(9), models.ProductUpdate{Size: strPtr("XL")}).Return(models.Product{ID: 9}, nil)

	_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{
		Fields: map[string]string{"price": "", "stock": " ", "size": "XL"},
	})
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		wantErr error
	}{
		{"unknown field", map[string]string{"colour": "red"}, ErrUnknownField},
		{"bad price", map[string]string{"price": "abc"}, ErrInvalidFieldValue},
		{"negative stock", map[string]string{"stock": "-3"}, validators.ErrNegativeStock},
		{"nothing to update", map[string]string{}, validators.ErrNoFieldsToUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestProductSvc(t)
			m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7)}, nil)

			_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{Fields: tt.fields})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_UpdateProduct_ReplacesImageByStoredKey(t *testing.T) {
	svc, m := newTestProductSvc(t, "uuid-2")
	image := models.MediaFile{FileName: "new.png", ContentType: "image/png", Data: []byte("new")}
	existing := models.Product{
		ID:             9,
		ManufacturerID: int64Ptr(7),
		ImageURL:       "https://cdn/product-images/uuid-1-old.png",
		ImageKey:       "uuid-1-old.png",
	}

	gomock.InOrder(
		m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(existing, nil),
		m.objects.EXPECT().Delete(gomock.Any(), testImageBucket, "uuid-1-old.png").Return(nil),
		m.objects.EXPECT().Upload(gomock.Any(), testImageBucket, "uuid-2-new.png", image).
			Return(models.StoredObject{Bucket: testImageBucket, Key: "uuid-2-new.png", URL: "https://cdn/product-images/uuid-2-new.png"}, nil),
		m.products.EXPECT().UpdateProduct(gomock.Any(), int64(9), models.ProductUpdate{
			ImageURL: strPtr("https://cdn/product-images/uuid-2-new.png"),
			ImageKey: strPtr("uuid-2-new.png"),
		}).Return(models.Product{ID: 9, ImageURL: "https://cdn/product-images/uuid-2-new.png", ImageKey: "uuid-2-new.png"}, nil),
	)

	got, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{Image: &image})
	require.NoError(t, err)
	assert.NotEqual(t, existing.ImageURL, got.ImageURL)
}

func TestProductService_UpdateProduct_DeleteFailureIsNotFatal(t *testing.T) {
	svc, m := newTestProductSvc(t)
	video := models.MediaFile{FileName: "clip.mp4", Data: []byte("mp4")}

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).
		Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7), VideoKey: "old.mp4"}, nil)
	m.objects.EXPECT().Delete(gomock.Any(), testVideoBucket, "old.mp4").Return(errors.New("storage down"))
	m.objects.EXPECT().Upload(gomock.Any(), testVideoBucket, "id-1-clip.mp4", video).
		Return(models.StoredObject{Key: "id-1-clip.mp4", URL: "https://cdn/v"}, nil)
	m.products.EXPECT().UpdateProduct(gomock.Any(), int64(9), gomock.Any()).Return(models.Product{ID: 9}, nil)

	_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{Video: &video})
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_EmptyKeySkipsDelete(t *testing.T) {
	svc, m := newTestProductSvc(t)
	image := models.MediaFile{FileName: "a.png", Data: []byte("png")}

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7)}, nil)
	m.objects.EXPECT().Upload(gomock.Any(), testImageBucket, gomock.Any(), image).Return(models.StoredObject{Key: "k", URL: "u"}, nil)
	m.products.EXPECT().UpdateProduct(gomock.Any(), int64(9), gomock.Any()).Return(models.Product{ID: 9}, nil)

	_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{Image: &image})
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_UploadFails(t *testing.T) {
	svc, m := newTestProductSvc(t)
	image := models.MediaFile{FileName: "a.png", Data: []byte("png")}

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7)}, nil)
	m.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.StoredObject{}, errors.New("boom"))

	_, err := svc.UpdateProduct(context.Background(), manufacturerIdentity, 9, models.ProductForm{Image: &image})
	assert.ErrorIs(t, err, ErrUploadingMedia)
}

// ── AdjustStock ──────────────────────────────────────────────────────────────

func TestProductService_AdjustStock_Success(t *testing.T) {
	svc, m := newTestProductSvc(t)

	gomock.InOrder(
		m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, Stock: 5, ManufacturerID: int64Ptr(3)}, nil),
		m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3, UserID: 7}, nil),
		m.products.EXPECT().AdjustProductStock(gomock.Any(), int64(9), int64(-2)).Return(models.Product{ID: 9, Stock: 3}, nil),
	)

	got, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, -2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Stock)
}

func TestProductService_AdjustStock_InsufficientStockWritesNothing(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, Stock: 1, ManufacturerID: int64Ptr(3)}, nil)
	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3}, nil)

	_, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, -2)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestProductService_AdjustStock_NoManufacturer(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(3)}, nil)
	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{}, store.ErrManufacturerNotFound)

	_, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, 1)
	assert.ErrorIs(t, err, ErrManufacturerNotAuthorized)
}

func TestProductService_AdjustStock_ManufacturerMismatch(t *testing.T) {
	svc, m := newTestProductSvc(t)

	// manufacturer_id equals the user id, but stock adjustment compares
	// against the resolved manufacturer id
	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(7)}, nil)
	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3, UserID: 7}, nil)

	_, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, 1)
	assert.ErrorIs(t, err, ErrManufacturerNotAuthorized)
}

func TestProductService_AdjustStock_ConcurrentChangeRejected(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, Stock: 2, ManufacturerID: int64Ptr(3)}, nil)
	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3}, nil)
	m.products.EXPECT().AdjustProductStock(gomock.Any(), int64(9), int64(-2)).Return(models.Product{}, store.ErrStockConflict)

	_, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, -2)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestProductService_AdjustStock_OverflowRejected(t *testing.T) {
	tests := []struct {
		name  string
		stock int64
		delta int64
	}{
		{name: "max delta", stock: 1, delta: math.MaxInt64},
		{name: "one past max", stock: math.MaxInt64 - 4, delta: 5},
		{name: "already at max", stock: math.MaxInt64, delta: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestProductSvc(t)

			// AdjustProductStock must not be reached
			m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, Stock: tt.stock, ManufacturerID: int64Ptr(3)}, nil)
			m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3}, nil)

			_, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, tt.delta)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestProductService_AdjustStock_UpToMaxAllowed(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, Stock: math.MaxInt64 - 5, ManufacturerID: int64Ptr(3)}, nil)
	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3}, nil)
	m.products.EXPECT().AdjustProductStock(gomock.Any(), int64(9), int64(5)).Return(models.Product{ID: 9, Stock: math.MaxInt64}, nil)

	got, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got.Stock)
}

func TestProductService_AdjustStock_NegativeStockCannotDecrease(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, Stock: -1, ManufacturerID: int64Ptr(3)}, nil)
	m.manufacturers.EXPECT().FindManufacturerByUserID(gomock.Any(), int64(7)).Return(models.Manufacturer{ID: 3}, nil)

	_, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, math.MinInt64)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestProductService_AdjustStock_ProductNotFound(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.AdjustStock(context.Background(), manufacturerIdentity, 9, 1)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

// ── DeleteProduct ────────────────────────────────────────────────────────────

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	svc, m := newTestProductSvc(t)

	m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{}, store.ErrProductNotFound)

	err := svc.DeleteProduct(context.Background(), manufacturerIdentity, 9)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_DeleteProduct_AnyCallerMayDelete(t *testing.T) {
	svc, m := newTestProductSvc(t)

	gomock.InOrder(
		m.products.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{ID: 9, ManufacturerID: int64Ptr(42)}, nil),
		m.products.EXPECT().DeleteProduct(gomock.Any(), int64(9)).Return(nil),
	)

	err := svc.DeleteProduct(context.Background(), manufacturerIdentity, 9)
	require.NoError(t, err)
}
