// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/app"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ProductService.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err, app.MsgErrorFetchingProducts, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Data: products}, http.StatusOK)
}

func (h *Handler) listProductsByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ProductService.ListProductsByCategory(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err, app.MsgErrorFetchingProducts, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Data: products}, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidProductID, err)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.WriteMessage(w, http.StatusNotFound, app.MsgProductNotFound)
			return
		}
		writeServiceError(w, r, err, app.MsgErrorFetchingProduct, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Data: product}, http.StatusOK)
}

func (h *Handler) countProducts(w http.ResponseWriter, r *http.Request) {
	count, err := h.services.ProductService.CountProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err, app.MsgErrorCountingProducts, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{Data: count}, http.StatusOK)
}

func (h *Handler) listManufacturerProducts(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	products, err := h.services.ProductService.ListManufacturerProducts(r.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMasterAdminScope):
			utils.WriteError(w, http.StatusForbidden, app.MsgMasterAdminScope, err)
		case errors.Is(err, store.ErrManufacturerNotFound):
			utils.WriteMessage(w, http.StatusNotFound, app.MsgManufacturerNotFound)
		default:
			writeServiceError(w, r, err, app.MsgErrorFetchingManufacturerItems, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.Response{Data: products}, http.StatusOK)
}

// createProduct inserts the JSON body as product columns. Numbers are kept
// as json.Number so that prices keep their exact decimal text.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, ErrInvalidJSON)
		return
	}

	product, err := h.services.ProductService.CreateProduct(r.Context(), fields)
	if err != nil {
		writeServiceError(w, r, err, app.MsgInsertError, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgProductCreated, Data: product}, http.StatusCreated)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	product, err := h.services.ProductService.AddProduct(r.Context(), identity, productFormFromRequest(r))
	if errors.Is(err, service.ErrInsertingProduct) {
		writeServiceError(w, r, err, app.MsgInsertError, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, app.MsgErrorAddingItem, http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Int64("product_id", product.ID).Int64("user_id", identity.UserID).Msg("product added")
	utils.WriteJSON(w, models.Response{Message: app.MsgProductAdded, Data: product}, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidProductID, err)
		return
	}

	product, err := h.services.ProductService.UpdateProduct(r.Context(), identity, id, productFormFromRequest(r))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			utils.WriteMessage(w, http.StatusNotFound, app.MsgProductNotFound)
		case errors.Is(err, service.ErrNotProductOwner):
			utils.WriteError(w, http.StatusForbidden, app.MsgNotProductOwner, err)
		default:
			writeServiceError(w, r, err, app.MsgErrorUpdatingProduct, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgProductUpdated, Data: product}, http.StatusOK)
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidProductID, err)
		return
	}

	var adjustment models.StockAdjustment
	if err = decodeJSON(r, &adjustment); err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidJSON, err)
		return
	}
	if adjustment.Quantity == nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgQuantityRequired, nil)
		return
	}

	product, err := h.services.ProductService.AdjustStock(r.Context(), identity, id, *adjustment.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			utils.WriteMessage(w, http.StatusNotFound, app.MsgProductNotFound)
		case errors.Is(err, service.ErrManufacturerNotAuthorized):
			utils.WriteError(w, http.StatusForbidden, app.MsgManufacturerNotAuthorized, err)
		case errors.Is(err, service.ErrInsufficientStock):
			utils.WriteError(w, http.StatusBadRequest, app.MsgInsufficientStock, err)
		default:
			writeServiceError(w, r, err, app.MsgErrorUpdatingStock, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgStockUpdated, Data: product}, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidProductID, err)
		return
	}

	if err = h.services.ProductService.DeleteProduct(r.Context(), identity, id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.WriteMessage(w, http.StatusNotFound, app.MsgProductNotFound)
			return
		}
		writeServiceError(w, r, err, app.MsgErrorDeletingProduct, http.StatusInternalServerError)
		return
	}

	utils.WriteMessage(w, http.StatusOK, app.MsgProductDeleted)
}
