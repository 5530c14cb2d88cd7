// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	productColumns = []string{
		"id", "name", "description", "price", "category", "stock",
		"location", "company", "size", "return_policy",
		"image_url", "image_key", "video_url", "video_key",
		"manufacturer_id", "created_at", "updated_at",
	}
	manufacturerColumns = []string{"id", "user_id", "name", "approved", "created_at"}
	userColumns         = []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}
	requestColumns      = []string{"id", "name", "email", "status", "created_at", "updated_at"}
	orderColumns        = []string{"id", "customer_name", "status", "total_amount", "items", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── products ──────────────────────────────────────────────────────────────────

func applyProductFilter(where sq.SelectBuilder, filter models.ProductFilter) sq.SelectBuilder {
	if filter.Category != "" {
		where = where.Where(sq.Eq{"category": filter.Category})
	}
	if filter.ManufacturerID != nil {
		where = where.Where(sq.Eq{"manufacturer_id": *filter.ManufacturerID})
	}
	return where
}

func buildSelectProductsQuery(filter models.ProductFilter) (string, []any, error) {
	query := psql.Select(productColumns...).From(models.Product{}.TableName())
	return applyProductFilter(query, filter).OrderBy("id").ToSql()
}

func buildCountProductsQuery(filter models.ProductFilter) (string, []any, error) {
	query := psql.Select("COUNT(*)").From(models.Product{}.TableName())
	return applyProductFilter(query, filter).ToSql()
}

func buildSelectProductByIDQuery(id int64) (string, []any, error) {
	return psql.Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertProductQuery(columns map[string]any) (string, []any, error) {
	return psql.Insert(models.Product{}.TableName()).
		SetMap(columns).
		Suffix(returning(productColumns)).
		ToSql()
}

// productInsertColumns lists the values of an owned product insert.
// Timestamps and id are left to column defaults.
func productInsertColumns(p models.Product) map[string]any {
	return map[string]any{
		"name":            p.Name,
		"description":     p.Description,
		"price":           p.Price,
		"category":        p.Category,
		"stock":           p.Stock,
		"location":        p.Location,
		"company":         p.Company,
		"size":            p.Size,
		"return_policy":   p.ReturnPolicy,
		"image_url":       p.ImageURL,
		"image_key":       p.ImageKey,
		"video_url":       p.VideoURL,
		"video_key":       p.VideoKey,
		"manufacturer_id": p.ManufacturerID,
	}
}

func buildUpdateProductQuery(id int64, update models.ProductUpdate) (string, []any, error) {
	return psql.Update(models.Product{}.TableName()).
		SetMap(update.Columns()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(productColumns)).
		ToSql()
}

// buildAdjustProductStockQuery adds delta to stock only when the result stays
// non-negative, so the check and the write happen in one statement.
func buildAdjustProductStockQuery(id int64, delta int64) (string, []any, error) {
	return psql.Update(models.Product{}.TableName()).
		Set("stock", sq.Expr("stock + ?", delta)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("stock + ? >= 0", delta)).
		Suffix(returning(productColumns)).
		ToSql()
}

func buildDeleteProductQuery(id int64) (string, []any, error) {
	return psql.Delete(models.Product{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── manufacturers ─────────────────────────────────────────────────────────────

func buildSelectManufacturerByUserIDQuery(userID int64) (string, []any, error) {
	return psql.Select(manufacturerColumns...).
		From(models.Manufacturer{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildInsertManufacturerQuery(m models.Manufacturer) (string, []any, error) {
	return psql.Insert(models.Manufacturer{}.TableName()).
		Columns("user_id", "name", "approved").
		Values(m.UserID, m.Name, m.Approved).
		Suffix(returning(manufacturerColumns)).
		ToSql()
}

func buildApproveManufacturerQuery(id int64) (string, []any, error) {
	return psql.Update(models.Manufacturer{}.TableName()).
		Set("approved", true).
		Where(sq.Eq{"id": id}).
		Suffix(returning(manufacturerColumns)).
		ToSql()
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(u models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("email", "name", "password_hash", "role").
		Values(u.Email, u.Name, u.PasswordHash, u.Role).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildUpsertUserQuery(u models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("email", "name", "password_hash", "role").
		Values(u.Email, u.Name, u.PasswordHash, u.Role).
		Suffix("ON CONFLICT (email) DO UPDATE SET " +
			"name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, role = EXCLUDED.role, updated_at = NOW() " +
			returning(userColumns)).
		ToSql()
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildUpdateUserPasswordQuery(id int64, passwordHash string) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── manufacturer requests ─────────────────────────────────────────────────────

func buildInsertRequestQuery(r models.ManufacturerRequest) (string, []any, error) {
	return psql.Insert(models.ManufacturerRequest{}.TableName()).
		Columns("name", "email", "status").
		Values(r.Name, r.Email, r.Status).
		Suffix(returning(requestColumns)).
		ToSql()
}

func buildSelectRequestByEmailQuery(email string) (string, []any, error) {
	return psql.Select(requestColumns...).
		From(models.ManufacturerRequest{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectRequestsByStatusQuery(status models.RequestStatus) (string, []any, error) {
	return psql.Select(requestColumns...).
		From(models.ManufacturerRequest{}.TableName()).
		Where(sq.Eq{"status": status}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildUpdateRequestStatusQuery(email string, status models.RequestStatus) (string, []any, error) {
	return psql.Update(models.ManufacturerRequest{}.TableName()).
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"email": email}).
		Suffix(returning(requestColumns)).
		ToSql()
}

// ── orders ────────────────────────────────────────────────────────────────────

// buildSelectOrdersByManufacturerQuery matches orders by JSON containment.
// Checkouts store manufacturer_id either as a number or as a string, so both
// forms are matched: items @> '[{"manufacturer_id": 7}]' OR
// items @> '[{"manufacturer_id": "7"}]'.
func buildSelectOrdersByManufacturerQuery(manufacturerID int64) (string, []any, error) {
	numeric, err := json.Marshal([]map[string]int64{{"manufacturer_id": manufacturerID}})
	if err != nil {
		return "", nil, err
	}
	text, err := json.Marshal([]map[string]string{{"manufacturer_id": strconv.FormatInt(manufacturerID, 10)}})
	if err != nil {
		return "", nil, err
	}

	return psql.Select(orderColumns...).
		From(models.Order{}.TableName()).
		Where(sq.Or{
			sq.Expr("items @> ?::jsonb", string(numeric)),
			sq.Expr("items @> ?::jsonb", string(text)),
		}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}
