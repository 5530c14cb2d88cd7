// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates incoming payloads.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator reporting field names by their
// JSON tag.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks obj. When fields are given only those struct fields
// (by Go name) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProductUpdate:
		return v.validateProductUpdate(value)
	case *models.ProductUpdate:
		return v.validateProductUpdate(*value)

	case models.StockAdjustment:
		return v.validateStockAdjustment(value)
	case *models.StockAdjustment:
		return v.validateStockAdjustment(*value)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return v.mapError(err)
}

func (v *RequestValidator) validateProductUpdate(update models.ProductUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Stock != nil && *update.Stock < 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, ErrNegativeStock)
	}
	return nil
}

func (v *RequestValidator) validateStockAdjustment(adjustment models.StockAdjustment) error {
	if adjustment.Quantity == nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, ErrMissingQuantity)
	}
	return nil
}

func (v *RequestValidator) mapError(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Type)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
