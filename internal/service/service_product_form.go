// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/shopspring/decimal"
)

// Form field names accepted by the owned create and update operations.
const (
	fieldName         = "name"
	fieldDescription  = "description"
	fieldPrice        = "price"
	fieldCategory     = "category"
	fieldStock        = "stock"
	fieldLocation     = "location"
	fieldCompany      = "company"
	fieldSize         = "size"
	fieldReturnPolicy = "returnPolicy"

	// columnReturnPolicy is the storage name of returnPolicy. It is also
	// accepted as input; returnPolicy wins when both are sent.
	columnReturnPolicy = "return_policy"
)

var productFormFields = map[string]struct{}{
	fieldName:          {},
	fieldDescription:   {},
	fieldPrice:         {},
	fieldCategory:      {},
	fieldStock:         {},
	fieldLocation:      {},
	fieldCompany:       {},
	fieldSize:          {},
	fieldReturnPolicy:  {},
	columnReturnPolicy: {},
}

// insertableProductColumns lists the columns an unscoped create may set.
var insertableProductColumns = map[string]struct{}{
	"name":             {},
	"description":      {},
	"price":            {},
	"category":         {},
	"stock":            {},
	"location":         {},
	"company":          {},
	"size":             {},
	columnReturnPolicy: {},
	"image_url":        {},
	"image_key":        {},
	"video_url":        {},
	"video_key":        {},
	"manufacturer_id":  {},
}

func checkFormFields(fields map[string]string) error {
	for name := range fields {
		if _, ok := productFormFields[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return nil
}

func returnPolicyField(fields map[string]string) (string, bool) {
	if value, ok := fields[fieldReturnPolicy]; ok {
		return value, true
	}
	value, ok := fields[columnReturnPolicy]
	return value, ok
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: price %q", ErrInvalidFieldValue, raw)
	}
	return price, nil
}

func parseStock(raw string) (int64, error) {
	stock, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: stock %q", ErrInvalidFieldValue, raw)
	}
	return stock, nil
}

// parseProductInput builds the payload of an owned create. Empty price and
// stock mean zero.
func parseProductInput(fields map[string]string) (models.ProductInput, error) {
	if err := checkFormFields(fields); err != nil {
		return models.ProductInput{}, err
	}

	input := models.ProductInput{
		Name:        fields[fieldName],
		Description: fields[fieldDescription],
		Category:    fields[fieldCategory],
		Location:    fields[fieldLocation],
		Company:     fields[fieldCompany],
		Size:        fields[fieldSize],
	}
	input.ReturnPolicy, _ = returnPolicyField(fields)

	if raw := strings.TrimSpace(fields[fieldPrice]); raw != "" {
		price, err := parsePrice(raw)
		if err != nil {
			return models.ProductInput{}, err
		}
		input.Price = price
	}

	if raw := strings.TrimSpace(fields[fieldStock]); raw != "" {
		stock, err := parseStock(raw)
		if err != nil {
			return models.ProductInput{}, err
		}
		input.Stock = stock
	}

	return input, nil
}

// parseProductUpdate builds a partial update from the submitted fields.
// Text fields are applied even when empty; price and stock only when they
// carry a value.
func parseProductUpdate(fields map[string]string) (models.ProductUpdate, error) {
	if err := checkFormFields(fields); err != nil {
		return models.ProductUpdate{}, err
	}

	var update models.ProductUpdate

	text := func(name string) *string {
		value, ok := fields[name]
		if !ok {
			return nil
		}
		return &value
	}

	update.Name = text(fieldName)
	update.Description = text(fieldDescription)
	update.Category = text(fieldCategory)
	update.Location = text(fieldLocation)
	update.Company = text(fieldCompany)
	update.Size = text(fieldSize)
	if value, ok := returnPolicyField(fields); ok {
		update.ReturnPolicy = &value
	}

	if raw := strings.TrimSpace(fields[fieldPrice]); raw != "" {
		price, err := parsePrice(raw)
		if err != nil {
			return models.ProductUpdate{}, err
		}
		update.Price = &price
	}

	if raw := strings.TrimSpace(fields[fieldStock]); raw != "" {
		stock, err := parseStock(raw)
		if err != nil {
			return models.ProductUpdate{}, err
		}
		update.Stock = &stock
	}

	return update, nil
}

// insertColumns maps a decoded JSON object onto product columns for the
// unscoped create.
func insertColumns(fields map[string]any) (map[string]any, error) {
	columns := make(map[string]any, len(fields))

	for name, value := range fields {
		column := name
		if name == fieldReturnPolicy {
			column = columnReturnPolicy
		}
		if _, ok := insertableProductColumns[column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if name == columnReturnPolicy {
			if _, ok := fields[fieldReturnPolicy]; ok {
				continue
			}
		}

		normalized, err := columnValue(column, value)
		if err != nil {
			return nil, err
		}
		columns[column] = normalized
	}

	return columns, nil
}

func columnValue(column string, value any) (any, error) {
	switch v := value.(type) {
	case nil, string, bool:
		return v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFieldValue, column)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFieldValue, column)
	}
}
