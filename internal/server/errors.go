// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPHandler means the catalog router was not built.
	errNoHTTPHandler = errors.New("no HTTP handler to serve")

	errNoListenAddress = errors.New("no listen address configured")
)
