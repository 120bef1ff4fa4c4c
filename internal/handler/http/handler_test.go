// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/service"
	"github.com/MKhiriev/lost-and-found/internal/utils"
	"github.com/MKhiriev/lost-and-found/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn     func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn        func(ctx context.Context, login, password string) (models.Token, error)
	logoutFn       func(ctx context.Context, sessionID string) error
	authenticateFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (models.Token, error) {
	return m.loginFn(ctx, login, password)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.logoutFn(ctx, sessionID)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	return m.authenticateFn(ctx, tokenString)
}

// mockResetService implements service.ResetService for unit tests.
type mockResetService struct {
	requestResetFn func(ctx context.Context, email string) error
	consumeResetFn func(ctx context.Context, rawToken, newPassword string) error
}

func (m *mockResetService) RequestReset(ctx context.Context, email string) error {
	return m.requestResetFn(ctx, email)
}

func (m *mockResetService) ConsumeReset(ctx context.Context, rawToken, newPassword string) error {
	return m.consumeResetFn(ctx, rawToken, newPassword)
}

// mockItemService implements service.ItemService for unit tests.
type mockItemService struct {
	reportFn    func(ctx context.Context, item models.Item, image *models.ImageUpload) (models.Item, error)
	setStatusFn func(ctx context.Context, userID, itemID int64, status models.ItemStatus) (models.Item, error)
	deleteFn    func(ctx context.Context, userID, itemID int64) error
	listFn      func(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	getFn       func(ctx context.Context, itemID int64) (models.Item, error)
	statsFn     func(ctx context.Context, userID int64) (models.DashboardStats, error)
}

func (m *mockItemService) Report(ctx context.Context, item models.Item, image *models.ImageUpload) (models.Item, error) {
	return m.reportFn(ctx, item, image)
}

func (m *mockItemService) SetStatus(ctx context.Context, userID, itemID int64, status models.ItemStatus) (models.Item, error) {
	return m.setStatusFn(ctx, userID, itemID, status)
}

func (m *mockItemService) Delete(ctx context.Context, userID, itemID int64) error {
	return m.deleteFn(ctx, userID, itemID)
}

func (m *mockItemService) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return m.listFn(ctx, filter)
}

func (m *mockItemService) Get(ctx context.Context, itemID int64) (models.Item, error) {
	return m.getFn(ctx, itemID)
}

func (m *mockItemService) Stats(ctx context.Context, userID int64) (models.DashboardStats, error) {
	return m.statsFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks; nil mocks are
// allowed for services the test never reaches.
func newTestHandler(t *testing.T, auth service.AuthService, reset service.ResetService, items service.ItemService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  auth,
		ResetService: reset,
		ItemService:  items,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// authedContext returns a context carrying the given authenticated identity,
// mimicking what the auth middleware injects.
func authedContext(userID int64, sessionID string) context.Context {
	ctx := context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
	return context.WithValue(ctx, utils.SessionIDCtxKey, sessionID)
}

// stubToken returns a models.Token with the given identity.
func stubToken(userID int64, sessionID string) models.Token {
	return models.Token{SignedString: "signed.jwt.token", UserID: userID, SessionID: sessionID}
}
