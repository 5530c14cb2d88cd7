// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-keeper/internal/app"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/all", h.listProducts)
		r.Get("/count", h.countProducts)
		r.Get("/by-category/{name}", h.listProductsByCategory)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/list", h.listProducts)
			r.Get("/fmanufacturer", h.listManufacturerProducts)
			r.With(h.withUpload).Post("/addProduct", h.addProduct)
			r.Put("/update-stock/{id}", h.adjustStock)
			r.With(h.withUpload).Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)

			r.With(requireRole(models.RoleMaster)).Post("/", h.createProduct)
		})

		r.Get("/{id}", h.getProduct)
	})

	router.Get("/orders/manufacturer/{id}", h.listManufacturerOrders)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Put("/update-password", h.updatePassword)

			r.Group(func(r chi.Router) {
				r.Use(requireRole(models.RoleMaster))
				r.Get("/pending-manufacturers", h.listPendingManufacturers)
				r.Post("/authorize", h.authorizeManufacturer)
				r.Post("/approveMf", h.approveManufacturer)
				r.Post("/decline-manufacturer", h.declineManufacturer)
			})
		})
	})

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusNotFound, app.MsgRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed, nil)
}
