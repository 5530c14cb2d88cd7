// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	objectPath       = "/storage/v1/object/"
	publicObjectPath = "/storage/v1/object/public/"
)

// httpObjectStorage talks to a Supabase-compatible storage REST API.
type httpObjectStorage struct {
	client  *resty.Client
	baseURL string
}

// NewObjectStorage constructs an [ObjectStorage] for cfg.BaseURL. Every
// request is authenticated with cfg.ServiceKey and bounded by
// cfg.RequestTimeout.
func NewObjectStorage(cfg config.Objects, logger *logger.Logger) (ObjectStorage, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.ServiceKey).
		SetAuthToken(cfg.ServiceKey)

	log := logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", "object-storage")
	})
	log.Info().
		Str("base_url", baseURL).
		Str("image_bucket", cfg.ImageBucket).
		Str("video_bucket", cfg.VideoBucket).
		Dur("timeout", cfg.RequestTimeout).
		Msg("object storage client configured")

	return &httpObjectStorage{client: client, baseURL: baseURL}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func objectURLPath(bucket, key string) string {
	return url.PathEscape(bucket) + "/" + url.PathEscape(key)
}

// Upload implements [ObjectStorage]. It POSTs the raw file bytes to
// /storage/v1/object/{bucket}/{key} with upsert disabled.
func (s *httpObjectStorage) Upload(ctx context.Context, bucket, key string, file models.MediaFile) (models.StoredObject, error) {
	log := logger.FromContext(ctx)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(file.Data).
		Post(objectPath + objectURLPath(bucket, key))
	if err != nil {
		log.Err(err).Str("func", "*httpObjectStorage.Upload").Str("bucket", bucket).Msg("upload request failed")
		return models.StoredObject{}, fmt.Errorf("%w: upload request: %w", ErrStorageUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpObjectStorage.Upload").Str("bucket", bucket).Str("key", key).Msg("upload rejected")
		return models.StoredObject{}, err
	}

	log.Debug().Str("bucket", bucket).Str("key", key).Int("size", len(file.Data)).Msg("object uploaded")

	return models.StoredObject{
		Bucket: bucket,
		Key:    key,
		URL:    s.PublicURL(bucket, key),
	}, nil
}

// Delete implements [ObjectStorage]. The storage API removes objects by
// prefix list: DELETE /storage/v1/object/{bucket} {"prefixes": [key]}.
func (s *httpObjectStorage) Delete(ctx context.Context, bucket, key string) error {
	log := logger.FromContext(ctx)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"prefixes": {key}}).
		Delete(objectPath + url.PathEscape(bucket))
	if err != nil {
		log.Err(err).Str("func", "*httpObjectStorage.Delete").Str("bucket", bucket).Msg("delete request failed")
		return fmt.Errorf("%w: delete request: %w", ErrStorageUnavailable, err)
	}

	return mapHTTPError(resp)
}

// PublicURL implements [ObjectStorage].
func (s *httpObjectStorage) PublicURL(bucket, key string) string {
	return s.baseURL + publicObjectPath + objectURLPath(bucket, key)
}
