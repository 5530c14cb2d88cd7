// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the root server configuration.
//
// Every section maps to an env prefix so that, for example,
// Storage.Objects.BaseURL is read from STORAGE_OBJECTS_BASE_URL.
type StructuredConfig struct {
	// App holds token and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and object storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath points to an optional JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

// App contains authentication and general application settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWTs.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by the version endpoint when no build info is linked.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`

	// MasterEmail and MasterPassword describe the master admin account that
	// is created, or reset to these credentials, on startup. Both empty
	// skips the step.
	MasterEmail    string `env:"MASTER_EMAIL"`
	MasterPassword string `env:"MASTER_PASSWORD"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	Objects Objects `envPrefix:"OBJECTS_"`
}

// DB contains the relational database settings.
type DB struct {
	// DSN is the PostgreSQL connection string.
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool. Zero leaves the driver default.
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// AutoMigrate applies embedded migrations on startup.
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Objects contains the object storage settings.
type Objects struct {
	// BaseURL is the root of the storage REST API, e.g. https://xyz.supabase.co.
	BaseURL string `env:"BASE_URL"`

	// ServiceKey authenticates uploads and deletions.
	ServiceKey string `env:"SERVICE_KEY"`

	ImageBucket string `env:"IMAGE_BUCKET"`
	VideoBucket string `env:"VIDEO_BUCKET"`

	// RequestTimeout bounds every storage API call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server contains HTTP listener settings.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds request handling through the timeout middleware.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps multipart request bodies, in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig assembles the server configuration from env, flags and
// an optional JSON file, fills defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
