// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is matched in order. Service errors wrap storage and adapter
// errors, so they come first.
var errorStatuses = []errorStatus{
	{service.ErrMasterAdminScope, http.StatusForbidden},
	{service.ErrNotProductOwner, http.StatusForbidden},
	{service.ErrManufacturerNotAuthorized, http.StatusForbidden},
	{service.ErrManufacturerNotApproved, http.StatusForbidden},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrUnknownField, http.StatusBadRequest},
	{service.ErrInvalidFieldValue, http.StatusBadRequest},
	{service.ErrInsufficientStock, http.StatusBadRequest},
	{service.ErrInsertingProduct, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusBadRequest},

	{service.ErrProvisioningManufacturer, http.StatusInternalServerError},
	{service.ErrUploadingMedia, http.StatusBadGateway},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{validators.ErrValidationFailed, http.StatusBadRequest},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{validators.ErrMissingQuantity, http.StatusBadRequest},
	{validators.ErrNegativeStock, http.StatusBadRequest},

	{store.ErrProductNotFound, http.StatusNotFound},
	{store.ErrManufacturerNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrRequestNotFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrRequestAlreadyExists, http.StatusConflict},
	{store.ErrManufacturerAlreadyExists, http.StatusConflict},

	{store.ErrUnknownColumn, http.StatusBadRequest},
	{store.ErrInvalidColumnValue, http.StatusBadRequest},
}

// statusFromError returns the status of the first sentinel err wraps, or
// fallback when none matches.
func statusFromError(err error, fallback int) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return fallback
}

// writeServiceError logs err and writes it as an error envelope.
// Not-found responses carry only the message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string, fallback int) {
	status := statusFromError(err, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	if status == http.StatusNotFound {
		utils.WriteError(w, status, message, nil)
		return
	}
	utils.WriteError(w, status, message, err)
}
