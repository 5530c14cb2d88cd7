// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order. Orders are written by an external checkout;
// this service only reads them.
type Order struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Items        OrderItems      `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "product_order"
}

// OrderItems is the items column exactly as stored: a JSON array of line
// items, each carrying a manufacturer_id next to whatever fields the checkout
// wrote. The bytes are passed through unchanged.
type OrderItems json.RawMessage

var emptyOrderItems = []byte("[]")

// Scan implements [sql.Scanner] for jsonb columns. The source is copied
// since drivers may reuse the buffer.
func (o *OrderItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*o = nil
	case []byte:
		*o = append(OrderItems(nil), v...)
	case string:
		*o = OrderItems(v)
	default:
		return fmt.Errorf("order items: unsupported source type %T", src)
	}

	if len(*o) > 0 && !json.Valid(*o) {
		return errors.New("order items: invalid json")
	}
	return nil
}

// Value implements [driver.Valuer].
func (o OrderItems) Value() (driver.Value, error) {
	if len(o) == 0 {
		return emptyOrderItems, nil
	}
	return []byte(o), nil
}

// MarshalJSON writes the stored array verbatim; a NULL column becomes [].
func (o OrderItems) MarshalJSON() ([]byte, error) {
	if len(o) == 0 {
		return emptyOrderItems, nil
	}
	return o, nil
}

// UnmarshalJSON keeps a copy of the raw array.
func (o *OrderItems) UnmarshalJSON(data []byte) error {
	*o = append(OrderItems(nil), data...)
	return nil
}
