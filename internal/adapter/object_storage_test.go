// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, handler http.HandlerFunc) (ObjectStorage, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	storage, err := NewObjectStorage(config.Objects{
		BaseURL:        srv.URL + "/",
		ServiceKey:     "service-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return storage, srv
}

// ── NewObjectStorage ──────────────────────────────────────────────────────────

func TestNewObjectStorage_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "localhost:9000", "://bad"} {
		_, err := NewObjectStorage(config.Objects{BaseURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidBaseURL, "base url %q", raw)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" https://xyz.supabase.co/// ")
	require.NoError(t, err)
	assert.Equal(t, "https://xyz.supabase.co", got)
}

// ── Upload ────────────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	var (
		gotMethod, gotPath, gotAuth, gotKey, gotType, gotUpsert string
		gotBody                                                 []byte
	)

	storage, srv := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		gotType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Key":"product-images/abc-photo.png"}`))
	})

	obj, err := storage.Upload(context.Background(), "product-images", "abc-photo.png", models.MediaFile{
		FieldName:   "image",
		FileName:    "photo.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/storage/v1/object/product-images/abc-photo.png", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "service-key", gotKey)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "false", gotUpsert)
	assert.Equal(t, []byte("png-bytes"), gotBody)

	assert.Equal(t, models.StoredObject{
		Bucket: "product-images",
		Key:    "abc-photo.png",
		URL:    srv.URL + "/storage/v1/object/public/product-images/abc-photo.png",
	}, obj)
}

func TestUpload_DefaultContentType(t *testing.T) {
	var gotType string
	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	})

	_, err := storage.Upload(context.Background(), "b", "k", models.MediaFile{Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", gotType)
}

func TestUpload_EscapesKey(t *testing.T) {
	var gotPath string
	storage, srv := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	})

	obj, err := storage.Upload(context.Background(), "b", "id-my photo.png", models.MediaFile{Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/b/id-my%20photo.png", gotPath)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/b/id-my%20photo.png", obj.URL)
}

func TestUpload_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"bucket not found", http.StatusNotFound, ErrObjectNotFound},
		{"duplicate", http.StatusConflict, ErrObjectAlreadyExists},
		{"too large", http.StatusRequestEntityTooLarge, ErrObjectTooLarge},
		{"server error", http.StatusInternalServerError, ErrStorageUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"nope"}`, tt.status)
			})

			_, err := storage.Upload(context.Background(), "b", "k", models.MediaFile{Data: []byte("x")})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestUpload_UnmappedStatus(t *testing.T) {
	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := storage.Upload(context.Background(), "b", "k", models.MediaFile{Data: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestUpload_TransportError(t *testing.T) {
	storage, srv := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := storage.Upload(context.Background(), "b", "k", models.MediaFile{Data: []byte("x")})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestUpload_ContextCanceled(t *testing.T) {
	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Upload(ctx, "b", "k", models.MediaFile{Data: []byte("x")})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	var (
		gotMethod, gotPath string
		gotBody            map[string][]string
	)

	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})

	err := storage.Delete(context.Background(), "product-videos", "abc-clip.mp4")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/product-videos", gotPath)
	assert.Equal(t, map[string][]string{"prefixes": {"abc-clip.mp4"}}, gotBody)
}

func TestDelete_NotFound(t *testing.T) {
	storage, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := storage.Delete(context.Background(), "b", "k")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestDelete_TransportError(t *testing.T) {
	storage, srv := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := storage.Delete(context.Background(), "b", "k")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// ── PublicURL ─────────────────────────────────────────────────────────────────

func TestPublicURL(t *testing.T) {
	storage, err := NewObjectStorage(config.Objects{BaseURL: "https://xyz.supabase.co/"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t,
		"https://xyz.supabase.co/storage/v1/object/public/product-images/id-a.png",
		storage.PublicURL("product-images", "id-a.png"),
	)
}
