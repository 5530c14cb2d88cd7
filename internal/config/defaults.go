// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress     = ":5000"
	defaultTokenIssuer     = "go-catalog-keeper"
	defaultTokenDuration   = 24 * time.Hour
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxUploadSize   = 50 << 20
	defaultImageBucket     = "product-images"
	defaultVideoBucket     = "product-videos"
	defaultStorageTimeout  = 60 * time.Second
	defaultLogLevel        = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			Objects: Objects{
				ImageBucket:    defaultImageBucket,
				VideoBucket:    defaultVideoBucket,
				RequestTimeout: defaultStorageTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			MaxUploadSize:   defaultMaxUploadSize,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
