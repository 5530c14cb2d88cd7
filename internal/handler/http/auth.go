// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/app"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists), errors.Is(err, store.ErrRequestAlreadyExists):
			utils.WriteError(w, http.StatusConflict, app.MsgEmailAlreadyExists, err)
		default:
			writeServiceError(w, r, err, app.MsgRegistrationFailed, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("manufacturer registered, awaiting approval")
	utils.WriteJSON(w, models.Response{Message: app.MsgRegistrationSucceeded, Data: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			utils.WriteError(w, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword, err)
		case errors.Is(err, service.ErrManufacturerNotApproved):
			utils.WriteError(w, http.StatusForbidden, app.MsgManufacturerNotApproved, err)
		default:
			writeServiceError(w, r, err, app.MsgLoginFailed, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.Response{
		Message: app.MsgLoginSucceeded,
		Data:    models.AuthResponse{Token: token.SignedString, User: user},
	}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var request models.UpdatePasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, err)
		return
	}

	if err := h.services.AuthService.UpdatePassword(r.Context(), identity, request); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			utils.WriteError(w, http.StatusBadRequest, app.MsgWrongOldPassword, err)
			return
		}
		writeServiceError(w, r, err, app.MsgErrorUpdatingPassword, http.StatusInternalServerError)
		return
	}

	utils.WriteMessage(w, http.StatusOK, app.MsgPasswordUpdated)
}

func (h *Handler) listPendingManufacturers(w http.ResponseWriter, r *http.Request) {
	requests, err := h.services.AuthService.ListPendingManufacturers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, app.MsgErrorFetchingPending, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Data: requests}, http.StatusOK)
}

func (h *Handler) authorizeManufacturer(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeApprovalRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.services.AuthService.AuthorizeManufacturer(r.Context(), request)
	if err != nil {
		writeApprovalError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgManufacturerAuthorized, Data: updated}, http.StatusOK)
}

func (h *Handler) approveManufacturer(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeApprovalRequest(w, r)
	if !ok {
		return
	}

	manufacturer, err := h.services.AuthService.ApproveManufacturer(r.Context(), request)
	if err != nil {
		writeApprovalError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("manufacturer_id", manufacturer.ID).Msg("manufacturer approved")
	utils.WriteJSON(w, models.Response{Message: app.MsgManufacturerApproved, Data: manufacturer}, http.StatusOK)
}

func (h *Handler) declineManufacturer(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeApprovalRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.services.AuthService.DeclineManufacturer(r.Context(), request)
	if err != nil {
		writeApprovalError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgManufacturerDeclined, Data: updated}, http.StatusOK)
}

func decodeApprovalRequest(w http.ResponseWriter, r *http.Request) (models.ApprovalRequest, bool) {
	var request models.ApprovalRequest
	if err := decodeJSON(r, &request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, err)
		return request, false
	}
	return request, true
}

func writeApprovalError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrRequestNotFound) || errors.Is(err, store.ErrUserNotFound) {
		utils.WriteMessage(w, http.StatusNotFound, app.MsgManufacturerRequestNotFound)
		return
	}
	writeServiceError(w, r, err, app.MsgErrorProcessingManufacturer, http.StatusInternalServerError)
}
