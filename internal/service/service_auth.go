// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/internal/validators"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It registers manufacturer accounts, verifies bcrypt password hashes,
// issues JWTs and drives the approval workflow of manufacturer requests.
type authService struct {
	userRepository         store.UserRepository
	requestRepository      store.ManufacturerRequestRepository
	manufacturerRepository store.ManufacturerRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	requestRepository store.ManufacturerRequestRepository,
	manufacturerRepository store.ManufacturerRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:         userRepository,
		requestRepository:      requestRepository,
		manufacturerRepository: manufacturerRepository,
		validator:              validator,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		logger:                 logger,
	}
}

// Register creates a manufacturer account and its pending approval request.
//
// The two writes are not wrapped in a transaction: when the request insert
// fails the account stays without a request and cannot log in.
//
// Returns the created user or:
//   - a validators.ErrValidationFailed error for missing or malformed fields.
//   - store.ErrEmailAlreadyExists / store.ErrRequestAlreadyExists on duplicates.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Name:         request.Name,
		PasswordHash: passwordHash,
		Role:         models.RoleManufacturer,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	_, err = a.requestRepository.CreateRequest(ctx, models.ManufacturerRequest{
		Name:   request.Name,
		Email:  request.Email,
		Status: models.RequestStatusPending,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("manufacturer request creation ended with error")
		return models.User{}, fmt.Errorf("manufacturer request creation ended with error: %w", err)
	}

	return user, nil
}

// Login authenticates an account by email and password.
//
// Manufacturer accounts must have an approved request. Returns:
//   - ErrInvalidCredentials for an unknown email or a wrong password.
//   - ErrManufacturerNotApproved when the request is missing, pending or rejected.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, request.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Int64("id", user.ID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if user.Role == models.RoleManufacturer {
		approvalRequest, err := a.requestRepository.FindRequestByEmail(ctx, user.Email)
		if errors.Is(err, store.ErrRequestNotFound) {
			return models.User{}, ErrManufacturerNotApproved
		}
		if err != nil {
			return models.User{}, err
		}
		if approvalRequest.Status != models.RequestStatusApproved {
			return models.User{}, fmt.Errorf("%w: request is %s", ErrManufacturerNotApproved, approvalRequest.Status)
		}
	}

	return user, nil
}

// CreateToken issues a signed JWT carrying the user's id, email and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	identity := models.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Expired tokens yield
// ErrTokenIsExpired; every other failure yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UpdatePassword replaces the caller's password after checking the old one.
func (a *authService) UpdatePassword(ctx context.Context, identity models.Identity, request models.UpdatePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return err
	}

	if err = utils.ComparePassword(user.PasswordHash, request.OldPassword); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return ErrWrongPassword
		}
		return err
	}

	passwordHash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("error updating password")
		return err
	}

	return nil
}
