// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains clients for external services used by the
// catalog. Currently that is the object storage holding product media.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ObjectStorage stores media files in named buckets and exposes them under
// public URLs.
type ObjectStorage interface {
	// Upload stores file under key in bucket and returns the stored object
	// with its public URL. Existing objects are never overwritten.
	Upload(ctx context.Context, bucket, key string, file models.MediaFile) (models.StoredObject, error)

	// Delete removes the object key from bucket.
	Delete(ctx context.Context, bucket, key string) error

	// PublicURL returns the public URL of key in bucket without contacting
	// the storage.
	PublicURL(bucket, key string) string
}
