// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

const masterAccountName = "Master Admin"

// EnsureMasterAccount creates the master admin account or resets an existing
// account with the same email to the master role and the given password.
//
// It runs once on startup with the configured credentials; the approval
// endpoints are reachable only through this account.
func (a *authService) EnsureMasterAccount(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials := models.RegisterRequest{Name: masterAccountName, Email: email, Password: password}
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*authService.EnsureMasterAccount").Msg("error hashing password")
		return models.User{}, err
	}

	master, err := a.userRepository.UpsertUser(ctx, models.User{
		Email:        email,
		Name:         masterAccountName,
		PasswordHash: passwordHash,
		Role:         models.RoleMaster,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.EnsureMasterAccount").Str("email", email).Msg("error saving master account")
		return models.User{}, fmt.Errorf("error saving master account: %w", err)
	}

	log.Info().Int64("user_id", master.ID).Str("email", master.Email).Msg("master account ready")
	return master, nil
}
