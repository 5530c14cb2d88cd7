// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/stretchr/testify/require"
)

// mockProductService implements service.ProductService. Unset functions
// panic when called, which fails the test that reached them.
type mockProductService struct {
	listProductsFn             func(ctx context.Context) ([]models.Product, error)
	listProductsByCategoryFn   func(ctx context.Context, category string) ([]models.Product, error)
	getProductFn               func(ctx context.Context, id int64) (models.Product, error)
	countProductsFn            func(ctx context.Context) (models.ProductCount, error)
	listManufacturerProductsFn func(ctx context.Context, identity models.Identity) (models.ManufacturerProducts, error)
	createProductFn            func(ctx context.Context, fields map[string]any) (models.Product, error)
	addProductFn               func(ctx context.Context, identity models.Identity, form models.ProductForm) (models.Product, error)
	updateProductFn            func(ctx context.Context, identity models.Identity, id int64, form models.ProductForm) (models.Product, error)
	adjustStockFn              func(ctx context.Context, identity models.Identity, id int64, delta int64) (models.Product, error)
	deleteProductFn            func(ctx context.Context, identity models.Identity, id int64) error
}

func (m *mockProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return m.listProductsFn(ctx)
}

func (m *mockProductService) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return m.listProductsByCategoryFn(ctx, category)
}

func (m *mockProductService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return m.getProductFn(ctx, id)
}

func (m *mockProductService) CountProducts(ctx context.Context) (models.ProductCount, error) {
	return m.countProductsFn(ctx)
}

func (m *mockProductService) ListManufacturerProducts(ctx context.Context, identity models.Identity) (models.ManufacturerProducts, error) {
	return m.listManufacturerProductsFn(ctx, identity)
}

func (m *mockProductService) CreateProduct(ctx context.Context, fields map[string]any) (models.Product, error) {
	return m.createProductFn(ctx, fields)
}

func (m *mockProductService) AddProduct(ctx context.Context, identity models.Identity, form models.ProductForm) (models.Product, error) {
	return m.addProductFn(ctx, identity, form)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, identity models.Identity, id int64, form models.ProductForm) (models.Product, error) {
	return m.updateProductFn(ctx, identity, id, form)
}

func (m *mockProductService) AdjustStock(ctx context.Context, identity models.Identity, id int64, delta int64) (models.Product, error) {
	return m.adjustStockFn(ctx, identity, id, delta)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, identity models.Identity, id int64) error {
	return m.deleteProductFn(ctx, identity, id)
}

// mockAuthService implements service.AuthService.
type mockAuthService struct {
	registerFn                 func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn                    func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn              func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn               func(ctx context.Context, tokenString string) (models.Token, error)
	updatePasswordFn           func(ctx context.Context, identity models.Identity, request models.UpdatePasswordRequest) error
	listPendingManufacturersFn func(ctx context.Context) ([]models.ManufacturerRequest, error)
	authorizeManufacturerFn    func(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error)
	approveManufacturerFn      func(ctx context.Context, request models.ApprovalRequest) (models.Manufacturer, error)
	declineManufacturerFn      func(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error)
	ensureMasterAccountFn      func(ctx context.Context, email, password string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, identity models.Identity, request models.UpdatePasswordRequest) error {
	return m.updatePasswordFn(ctx, identity, request)
}

func (m *mockAuthService) ListPendingManufacturers(ctx context.Context) ([]models.ManufacturerRequest, error) {
	return m.listPendingManufacturersFn(ctx)
}

func (m *mockAuthService) AuthorizeManufacturer(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error) {
	return m.authorizeManufacturerFn(ctx, request)
}

func (m *mockAuthService) ApproveManufacturer(ctx context.Context, request models.ApprovalRequest) (models.Manufacturer, error) {
	return m.approveManufacturerFn(ctx, request)
}

func (m *mockAuthService) DeclineManufacturer(ctx context.Context, request models.ApprovalRequest) (models.ManufacturerRequest, error) {
	return m.declineManufacturerFn(ctx, request)
}

func (m *mockAuthService) EnsureMasterAccount(ctx context.Context, email, password string) (models.User, error) {
	return m.ensureMasterAccountFn(ctx, email, password)
}

// mockOrderService implements service.OrderService.
type mockOrderService struct {
	listManufacturerOrdersFn func(ctx context.Context, manufacturerID int64) ([]models.Order, error)
}

func (m *mockOrderService) ListManufacturerOrders(ctx context.Context, manufacturerID int64) ([]models.Order, error) {
	return m.listManufacturerOrdersFn(ctx, manufacturerID)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version models.AppVersion
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) models.AppVersion {
	return m.version
}

// Tokens understood by tokenParser.
const (
	masterToken       = "master-token"
	manufacturerToken = "manufacturer-token"
	expiredToken      = "expired-token"
)

var (
	masterIdentity       = models.Identity{UserID: 1, Email: "admin@example.com", Role: models.RoleMaster}
	manufacturerIdentity = models.Identity{UserID: 7, Email: "maker@example.com", Role: models.RoleManufacturer}
)

// tokenParser resolves the fixed test tokens to identities.
func tokenParser(_ context.Context, tokenString string) (models.Token, error) {
	var identity models.Identity
	switch tokenString {
	case masterToken:
		identity = masterIdentity
	case manufacturerToken:
		identity = manufacturerIdentity
	case expiredToken:
		return models.Token{}, service.ErrTokenIsExpired
	default:
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}

	return models.Token{
		Claims: models.Claims{Email: identity.Email, Role: identity.Role},
		UserID: identity.UserID,
	}, nil
}

var testServerConfig = config.Server{
	HTTPAddress:   ":0",
	MaxUploadSize: 1 << 20,
}

// newTestHandler builds a Handler over the given fakes. Nil arguments are
// replaced by empty fakes.
func newTestHandler(products *mockProductService, auth *mockAuthService, orders *mockOrderService) *Handler {
	if products == nil {
		products = &mockProductService{}
	}
	if auth == nil {
		auth = &mockAuthService{}
	}
	if auth.parseTokenFn == nil {
		auth.parseTokenFn = tokenParser
	}
	if orders == nil {
		orders = &mockOrderService{}
	}

	services := &service.Services{
		ProductService: products,
		AuthService:    auth,
		OrderService:   orders,
		AppInfoService: &mockAppInfoService{version: models.AppVersion{Version: "1.2.3"}},
	}
	return NewHandler(services, testServerConfig, logger.Nop())
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// envelope is the decoded form of models.Response with raw data.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

func decodeRawBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw), "body: %s", rec.Body.String())
	return raw
}
