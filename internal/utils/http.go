// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

const contentTypeJSON = "application/json"

// encodingFailureBody is written when a payload cannot be marshaled, so
// clients still receive the response envelope.
var encodingFailureBody = []byte(`{"message":"Internal server error","error":"response encoding failed"}`)

// WriteJSON marshals data and writes it with statusCode. A marshal failure
// turns into a 500 envelope and is returned wrapped.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(encodingFailureBody)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteMessage writes {message}.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) (int, error) {
	return WriteJSON(w, models.Response{Message: message}, statusCode)
}

// WriteError writes {message, error}; the error field is omitted for nil err.
func WriteError(w http.ResponseWriter, statusCode int, message string, err error) (int, error) {
	resp := models.Response{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return WriteJSON(w, resp, statusCode)
}
