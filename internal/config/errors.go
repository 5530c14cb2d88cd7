// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when token settings or the log level
	// are missing or malformed.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidMasterAccountConfigs is returned when only one of the master
	// credentials is set or the password is too short.
	ErrInvalidMasterAccountConfigs = errors.New("invalid master account configuration")

	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidObjectStorageConfigs is returned when the object storage URL
	// or bucket names are missing or malformed.
	ErrInvalidObjectStorageConfigs = errors.New("invalid object storage configuration")

	// ErrInvalidServerConfigs is returned when listener settings are unusable.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
