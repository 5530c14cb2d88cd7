// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/app"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

func (h *Handler) listManufacturerOrders(w http.ResponseWriter, r *http.Request) {
	manufacturerID, err := idParam(r, "id")
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid manufacturer id")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidManufacturerID, err)
		return
	}

	orders, err := h.services.OrderService.ListManufacturerOrders(r.Context(), manufacturerID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgErrorFetchingOrders, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Data: orders}, http.StatusOK)
}
