// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lost-and-found/internal/service"
	"github.com/MKhiriev/lost-and-found/internal/store"
	"github.com/MKhiriev/lost-and-found/models"
)

// withItemID injects a chi route parameter so handlers can be called without
// a full router.
func withItemID(req *http.Request, itemID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("itemID", itemID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// TestReportItem_JSON verifies a plain JSON report without an image.
func TestReportItem_JSON(t *testing.T) {
	items := &mockItemService{
		reportFn: func(_ context.Context, item models.Item, image *models.ImageUpload) (models.Item, error) {
			assert.Equal(t, int64(7), item.UserID)
			assert.Equal(t, "Black umbrella", item.Title)
			assert.Equal(t, models.KindLost, item.Kind)
			assert.Nil(t, image)
			item.ItemID = 1
			item.Status = models.StatusUnresolved
			return item, nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	body := jsonBody(t, models.ReportItemRequest{Title: "Black umbrella", Kind: models.KindLost, Location: "main library"})
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(body)).
		WithContext(authedContext(7, "session-abc"))
	rec := httptest.NewRecorder()

	h.reportItem(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ItemID)
	assert.Equal(t, models.StatusUnresolved, created.Status)
}

// TestReportItem_Multipart verifies that an attached image reaches the
// service alongside the form fields.
func TestReportItem_Multipart(t *testing.T) {
	items := &mockItemService{
		reportFn: func(_ context.Context, item models.Item, image *models.ImageUpload) (models.Item, error) {
			assert.Equal(t, "Keys", item.Title)
			assert.Equal(t, models.KindFound, item.Kind)
			require.NotNil(t, image)
			assert.Equal(t, "keys.jpg", image.Ext)

			data, err := io.ReadAll(image.Data)
			require.NoError(t, err)
			assert.Equal(t, "image-bytes", string(data))

			item.ItemID = 2
			return item, nil
		},
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Keys"))
	require.NoError(t, mw.WriteField("kind", "found"))
	part, err := mw.CreateFormFile("image", "keys.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	h := newTestHandler(t, nil, nil, items)
	req := httptest.NewRequest(http.MethodPost, "/api/items", &buf).
		WithContext(authedContext(7, "session-abc"))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.reportItem(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// TestReportItem_Unauthenticated verifies 401 without middleware context.
func TestReportItem_Unauthenticated(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockItemService{})
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.reportItem(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestListItems_Filters verifies query parameter parsing.
func TestListItems_Filters(t *testing.T) {
	items := &mockItemService{
		listFn: func(_ context.Context, filter models.ItemFilter) ([]models.Item, error) {
			require.NotNil(t, filter.Kind)
			assert.Equal(t, models.KindLost, *filter.Kind)
			require.NotNil(t, filter.Status)
			assert.Equal(t, models.StatusUnresolved, *filter.Status)
			assert.Equal(t, uint64(5), filter.Limit)
			return []models.Item{{ItemID: 1}}, nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := httptest.NewRequest(http.MethodGet, "/api/items?kind=lost&status=unresolved&limit=5", nil)
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

// TestListItems_BadLimit verifies 400 for a non-numeric limit.
func TestListItems_BadLimit(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockItemService{})
	req := httptest.NewRequest(http.MethodGet, "/api/items?limit=lots", nil)
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGetItem_Success verifies a single item lookup.
func TestGetItem_Success(t *testing.T) {
	items := &mockItemService{
		getFn: func(_ context.Context, itemID int64) (models.Item, error) {
			assert.Equal(t, int64(42), itemID)
			return models.Item{ItemID: 42, Title: "Black umbrella"}, nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := withItemID(httptest.NewRequest(http.MethodGet, "/api/items/42", nil), "42")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestGetItem_NotFound verifies 404 for a missing item.
func TestGetItem_NotFound(t *testing.T) {
	items := &mockItemService{
		getFn: func(_ context.Context, _ int64) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := withItemID(httptest.NewRequest(http.MethodGet, "/api/items/404", nil), "404")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestGetItem_BadID verifies 400 for a non-numeric item ID.
func TestGetItem_BadID(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockItemService{})
	req := withItemID(httptest.NewRequest(http.MethodGet, "/api/items/umbrella", nil), "umbrella")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSetItemStatus_Success verifies the owner can resolve an item.
func TestSetItemStatus_Success(t *testing.T) {
	items := &mockItemService{
		setStatusFn: func(_ context.Context, userID, itemID int64, status models.ItemStatus) (models.Item, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(1), itemID)
			assert.Equal(t, models.StatusResolved, status)
			return models.Item{ItemID: 1, UserID: 7, Status: status}, nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	body := jsonBody(t, models.SetStatusRequest{Status: models.StatusResolved})
	req := httptest.NewRequest(http.MethodPost, "/api/items/1/status", strings.NewReader(body)).
		WithContext(authedContext(7, "session-abc"))
	req = withItemID(req, "1")
	rec := httptest.NewRecorder()

	h.setItemStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestSetItemStatus_NotOwner verifies 403 for someone else's item.
func TestSetItemStatus_NotOwner(t *testing.T) {
	items := &mockItemService{
		setStatusFn: func(_ context.Context, _, _ int64, _ models.ItemStatus) (models.Item, error) {
			return models.Item{}, service.ErrNotOwner
		},
	}

	h := newTestHandler(t, nil, nil, items)
	body := jsonBody(t, models.SetStatusRequest{Status: models.StatusResolved})
	req := httptest.NewRequest(http.MethodPost, "/api/items/1/status", strings.NewReader(body)).
		WithContext(authedContext(9, "session-abc"))
	req = withItemID(req, "1")
	rec := httptest.NewRecorder()

	h.setItemStatus(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestDeleteItem_Success verifies 204 on deletion.
func TestDeleteItem_Success(t *testing.T) {
	items := &mockItemService{
		deleteFn: func(_ context.Context, userID, itemID int64) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(1), itemID)
			return nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := httptest.NewRequest(http.MethodDelete, "/api/items/1", nil).
		WithContext(authedContext(7, "session-abc"))
	req = withItemID(req, "1")
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// TestDeleteItem_NotOwner verifies 403 for someone else's item.
func TestDeleteItem_NotOwner(t *testing.T) {
	items := &mockItemService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return service.ErrNotOwner
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := httptest.NewRequest(http.MethodDelete, "/api/items/1", nil).
		WithContext(authedContext(9, "session-abc"))
	req = withItemID(req, "1")
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
