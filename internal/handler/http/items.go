// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/utils"
	"github.com/MKhiriev/lost-and-found/models"
)

// maxImageMemory bounds the in-memory part of a multipart item report; the
// image itself streams to the image store.
const maxImageMemory = 10 << 20

// reportItem creates a new item report for the authenticated user. The
// request is either a plain JSON body or, when an image is attached, a
// multipart form with the report fields and an "image" file part.
func (h *Handler) reportItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ReportItemRequest
	var image *models.ImageUpload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImageMemory); err != nil {
			log.Err(err).Msg("invalid multipart form")
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		req.Title = r.FormValue("title")
		req.Kind = models.ItemKind(r.FormValue("kind"))
		req.Location = r.FormValue("location")
		req.Description = r.FormValue("description")

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			image = &models.ImageUpload{Ext: header.Filename, Data: file}
		case err == http.ErrMissingFile:
			// report without a photo
		default:
			log.Err(err).Msg("invalid image part")
			http.Error(w, "invalid image part", http.StatusBadRequest)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	item := models.Item{
		UserID:      userID,
		Title:       req.Title,
		Kind:        req.Kind,
		Location:    req.Location,
		Description: req.Description,
	}

	createdItem, err := h.services.ItemService.Report(ctx, item, image)
	if err != nil {
		log.Err(err).Msg("item report failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Info().Int64("item_id", createdItem.ItemID).Int64("user_id", userID).Msg("item reported")

	utils.WriteJSON(w, createdItem, http.StatusCreated)
}

// listItems returns the public item feed, optionally filtered by kind and
// status via query parameters.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var filter models.ItemFilter

	if value := r.URL.Query().Get("kind"); value != "" {
		kind := models.ItemKind(value)
		filter.Kind = &kind
	}
	if value := r.URL.Query().Get("status"); value != "" {
		status := models.ItemStatus(value)
		filter.Status = &status
	}
	if value := r.URL.Query().Get("limit"); value != "" {
		limit, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	items, err := h.services.ItemService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("item listing failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// getItem returns a single item report.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID, err := itemIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Get(ctx, itemID)
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item lookup failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// setItemStatus changes the status of an item owned by the authenticated
// user.
func (h *Handler) setItemStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req models.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedItem, err := h.services.ItemService.SetStatus(ctx, userID, itemID, req.Status)
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item status update failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedItem, http.StatusOK)
}

// deleteItem removes an item owned by the authenticated user.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromURL(r)
	if err != nil {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	if err := h.services.ItemService.Delete(ctx, userID, itemID); err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item deletion failed")
		http.Error(w, messageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func itemIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
}
