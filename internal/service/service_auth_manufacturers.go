// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

func (a *authService) ListPendingManufacturers(ctx context.Context) ([]models.ManufacturerRequest, error) {
	return a.requestRepository.ListRequestsByStatus(ctx, models.RequestStatusPending)
}

func (a *authService) AuthorizeManufacturer(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error) {
	return a.setRequestStatus(ctx, request, models.RequestStatusApproved)
}

func (a *authService) DeclineManufacturer(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error) {
	return a.setRequestStatus(ctx, request, models.RequestStatusRejected)
}

func (a *authService) setRequestStatus(ctx context.Context, request models.ApprovalRequest, status models.RequestStatus) (models.ManufacturerRequest, error) {
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.ManufacturerRequest{}, err
	}

	updated, err := a.requestRepository.UpdateRequestStatus(ctx, request.Email, status)
	if err != nil {
		return models.ManufacturerRequest{}, err
	}

	logger.FromContext(ctx).Info().Str("email", request.Email).Str("status", string(status)).Msg("manufacturer request updated")
	return updated, nil
}

// ApproveManufacturer approves the request of request.Email and makes sure
// the account owns an approved manufacturer record.
func (a *authService) ApproveManufacturer(ctx context.Context, request models.ApprovalRequest) (models.Manufacturer, error) {
	log := logger.FromContext(ctx)

	approved, err := a.setRequestStatus(ctx, request, models.RequestStatusApproved)
	if err != nil {
		return models.Manufacturer{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return models.Manufacturer{}, err
	}

	manufacturer, err := a.manufacturerRepository.FindManufacturerByUserID(ctx, user.ID)
	if errors.Is(err, store.ErrManufacturerNotFound) {
		manufacturer, err = a.manufacturerRepository.CreateManufacturer(ctx, models.Manufacturer{
			UserID:   user.ID,
			Name:     approved.Name,
			Approved: true,
		})
		if err != nil {
			log.Err(err).Str("func", "*authService.ApproveManufacturer").Int64("user_id", user.ID).Msg("error creating manufacturer")
			return models.Manufacturer{}, err
		}
		return manufacturer, nil
	}
	if err != nil {
		return models.Manufacturer{}, err
	}

	if manufacturer.Approved {
		return manufacturer, nil
	}

	return a.manufacturerRepository.ApproveManufacturer(ctx, manufacturer.ID)
}
