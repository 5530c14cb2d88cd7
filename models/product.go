// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item as it is stored in the products table.
//
// ImageURL and VideoURL are the public links handed out to clients.
// ImageKey and VideoKey hold the object names inside their buckets and are
// the only values used when a media file has to be removed.
type Product struct {
	// ID is the storage-assigned identifier.
	ID int64 `json:"id"`

	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int64           `json:"stock"`
	Location    string          `json:"location"`
	Company     string          `json:"company"`
	Size        string          `json:"size"`

	// ReturnPolicy is accepted from clients as "returnPolicy" and stored
	// in the return_policy column.
	ReturnPolicy string `json:"return_policy"`

	ImageURL string `json:"image_url"`
	ImageKey string `json:"image_key,omitempty"`
	VideoURL string `json:"video_url"`
	VideoKey string `json:"video_key,omitempty"`

	// ManufacturerID references the owning manufacturer. It is nil for
	// products created through the master endpoint without an owner.
	ManufacturerID *int64 `json:"manufacturer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// OwnedBy reports whether the product's manufacturer_id equals id.
func (p Product) OwnedBy(id int64) bool {
	return p.ManufacturerID != nil && *p.ManufacturerID == id
}

// ProductFilter narrows list and count queries. Zero values disable a filter.
type ProductFilter struct {
	Category       string
	ManufacturerID *int64
}

// ProductInput is the validated payload of an owned product creation.
type ProductInput struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Stock        int64           `json:"stock" validate:"gte=0"`
	Location     string          `json:"location"`
	Company      string          `json:"company"`
	Size         string          `json:"size"`
	ReturnPolicy string          `json:"returnPolicy"`
}

// ProductUpdate describes a partial product update.
// Nil fields are left untouched in storage.
type ProductUpdate struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	Category     *string
	Stock        *int64
	Location     *string
	Company      *string
	Size         *string
	ReturnPolicy *string

	ImageURL *string
	ImageKey *string
	VideoURL *string
	VideoKey *string
}

// IsEmpty reports whether the update carries no changes.
func (u ProductUpdate) IsEmpty() bool {
	return len(u.Columns()) == 0
}

// Columns returns the storage column names and values of the non-nil fields.
func (u ProductUpdate) Columns() map[string]any {
	columns := make(map[string]any)

	setString := func(column string, value *string) {
		if value != nil {
			columns[column] = *value
		}
	}

	setString("name", u.Name)
	setString("description", u.Description)
	setString("category", u.Category)
	setString("location", u.Location)
	setString("company", u.Company)
	setString("size", u.Size)
	setString("return_policy", u.ReturnPolicy)
	setString("image_url", u.ImageURL)
	setString("image_key", u.ImageKey)
	setString("video_url", u.VideoURL)
	setString("video_key", u.VideoKey)

	if u.Price != nil {
		columns["price"] = *u.Price
	}
	if u.Stock != nil {
		columns["stock"] = *u.Stock
	}

	return columns
}

// ProductForm is the raw form submitted to the owned create and update
// operations: text fields plus optional media files.
type ProductForm struct {
	Fields map[string]string
	Image  *MediaFile
	Video  *MediaFile
}

// ProductCount is the body of the count endpoint.
type ProductCount struct {
	TotalProducts int64 `json:"totalProducts"`
}

// ManufacturerProducts is the body of the manufacturer-scoped list endpoint.
type ManufacturerProducts struct {
	TotalProducts int64     `json:"totalProducts"`
	Products      []Product `json:"products"`
}

// StockAdjustment is the body of the stock update endpoint.
type StockAdjustment struct {
	Quantity *int64 `json:"quantity"`
}
