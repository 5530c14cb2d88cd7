// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/rs/zerolog"
)

// minMasterPasswordLength matches the password rule applied on registration.
const minMasterPasswordLength = 6

func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return ErrInvalidAppConfigs
	}

	if (cfg.App.MasterEmail == "") != (cfg.App.MasterPassword == "") {
		return ErrInvalidMasterAccountConfigs
	}
	if cfg.App.MasterPassword != "" && len(cfg.App.MasterPassword) < minMasterPasswordLength {
		return ErrInvalidMasterAccountConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	objects := cfg.Storage.Objects
	if objects.BaseURL == "" || objects.ImageBucket == "" || objects.VideoBucket == "" {
		return ErrInvalidObjectStorageConfigs
	}
	if u, err := url.Parse(objects.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidObjectStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
