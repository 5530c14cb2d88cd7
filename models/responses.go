// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the JSON envelope written by every HTTP handler.
//
// Successful mutations carry Message and usually Data. Failures carry
// Message and, for non-404 failures, the underlying Error text.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
