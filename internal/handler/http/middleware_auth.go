// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/internal/app"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

// auth enforces bearer token authentication.
//
// The token from the "Authorization" header is verified through
// [service.AuthService.ParseToken] and the caller's [models.Identity] is
// stored in the request context. Missing, malformed, expired or otherwise
// invalid tokens are answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("rejected request without usable token")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Debug().Err(err).Msg("token expired")
				utils.WriteError(w, http.StatusUnauthorized, app.MsgTokenExpired, service.ErrTokenIsExpired)
				return
			}
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity())))
	})
}

// requireRole lets through only authenticated callers with role. It must be
// mounted after auth.
func requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, ErrMissingIdentity)
				return
			}

			if identity.Role != role {
				logger.FromRequest(r).Debug().
					Int64("user_id", identity.UserID).
					Str("role", string(identity.Role)).
					Str("required_role", string(role)).
					Msg("access denied")
				utils.WriteError(w, http.StatusForbidden, app.MsgAccessDenied, ErrInsufficientRights)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the token of a "Bearer <token>" header.
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// identityFromRequest returns the caller identity stored by auth.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, ErrMissingIdentity)
	}
	return identity, ok
}
