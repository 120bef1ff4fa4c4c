// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/store"
	"github.com/MKhiriev/lost-and-found/models"
)

// itemService is the concrete implementation of ItemService.
//
// Ownership is enforced here, not in the repositories: every mutating
// operation loads the record first and compares its UserID against the acting
// user before any change is made.
type itemService struct {
	itemRepository store.ItemRepository
	imageStore     store.ImageStore

	logger *logger.Logger
}

// NewItemService constructs an ItemService wired to the given repository and
// image store.
func NewItemService(itemRepository store.ItemRepository, imageStore store.ImageStore, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		imageStore:     imageStore,
		logger:         logger,
	}
}

// Report creates a new item report for the acting user. A new report always
// starts unresolved regardless of what the caller supplied. The optional
// image is written to the image store first; if the database insert then
// fails the stored file is removed again.
func (i *itemService) Report(ctx context.Context, item models.Item, image *models.ImageUpload) (models.Item, error) {
	log := logger.FromContext(ctx)

	if item.UserID == 0 || item.Title == "" || !item.Kind.Valid() {
		log.Error().Int64("user_id", item.UserID).Str("title", item.Title).Msg("invalid item data provided")
		return models.Item{}, ErrInvalidDataProvided
	}

	item.Status = models.StatusUnresolved
	item.CreatedAt = time.Now()

	if image != nil {
		ref, err := i.imageStore.SaveImage(ctx, *image)
		if err != nil {
			log.Err(err).Int64("user_id", item.UserID).Msg("image upload failed")
			return models.Item{}, fmt.Errorf("image upload failed: %w", err)
		}
		item.ImageRef = ref
	}

	createdItem, err := i.itemRepository.CreateItem(ctx, item)
	if err != nil {
		if item.ImageRef != "" {
			if removeErr := i.imageStore.RemoveImage(ctx, item.ImageRef); removeErr != nil {
				log.Err(removeErr).Str("image_ref", item.ImageRef).Msg("orphaned image cleanup failed")
			}
		}
		log.Err(err).Int64("user_id", item.UserID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// SetStatus changes the status of an item owned by userID.
//
// Returns the updated item or:
//   - ErrInvalidDataProvided for an unknown status value.
//   - store.ErrItemNotFound when the item does not exist.
//   - ErrNotOwner when the item belongs to another user.
func (i *itemService) SetStatus(ctx context.Context, userID, itemID int64, status models.ItemStatus) (models.Item, error) {
	log := logger.FromContext(ctx)

	if !status.Valid() {
		return models.Item{}, ErrInvalidDataProvided
	}

	if _, err := i.authorize(ctx, userID, itemID); err != nil {
		return models.Item{}, err
	}

	updatedItem, err := i.itemRepository.UpdateItemStatus(ctx, itemID, status)
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item status update failed")
		return models.Item{}, fmt.Errorf("item status update failed: %w", err)
	}

	return updatedItem, nil
}

// Delete removes an item owned by userID along with its stored image. A
// failed image removal is logged but does not undo the already deleted
// record.
func (i *itemService) Delete(ctx context.Context, userID, itemID int64) error {
	log := logger.FromContext(ctx)

	item, err := i.authorize(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := i.itemRepository.DeleteItem(ctx, itemID); err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item deletion failed")
		return fmt.Errorf("item deletion failed: %w", err)
	}

	if item.ImageRef != "" {
		if err := i.imageStore.RemoveImage(ctx, item.ImageRef); err != nil {
			log.Err(err).Str("image_ref", item.ImageRef).Msg("image removal failed")
		}
	}

	return nil
}

// List returns item reports matching the filter, newest first. Listing and
// reading are public: no ownership check applies.
func (i *itemService) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	if filter.Kind != nil && !filter.Kind.Valid() {
		return nil, ErrInvalidDataProvided
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, ErrInvalidDataProvided
	}

	items, err := i.itemRepository.ListItems(ctx, filter)
	if err != nil {
		log.Err(err).Msg("item listing failed")
		return nil, fmt.Errorf("item listing failed: %w", err)
	}

	return items, nil
}

// Get returns a single item report by ID.
func (i *itemService) Get(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := i.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item lookup failed")
		return models.Item{}, err
	}

	return item, nil
}

// Stats aggregates the dashboard counters: totals across all reports plus
// the acting user's own count.
func (i *itemService) Stats(ctx context.Context, userID int64) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	var stats models.DashboardStats

	kindLost := models.KindLost
	kindFound := models.KindFound
	statusResolved := models.StatusResolved

	counts := []struct {
		dest   *int64
		filter models.ItemFilter
	}{
		{&stats.Total, models.ItemFilter{}},
		{&stats.Lost, models.ItemFilter{Kind: &kindLost}},
		{&stats.Found, models.ItemFilter{Kind: &kindFound}},
		{&stats.Resolved, models.ItemFilter{Status: &statusResolved}},
		{&stats.Mine, models.ItemFilter{UserID: &userID}},
	}

	for _, c := range counts {
		count, err := i.itemRepository.CountItems(ctx, c.filter)
		if err != nil {
			log.Err(err).Msg("item count failed")
			return models.DashboardStats{}, fmt.Errorf("item count failed: %w", err)
		}
		*c.dest = count
	}

	return stats, nil
}

// authorize loads the item and verifies it belongs to userID.
func (i *itemService) authorize(ctx context.Context, userID, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := i.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("item lookup failed")
		return models.Item{}, err
	}

	if item.UserID != userID {
		log.Error().Int64("item_id", itemID).Int64("owner_id", item.UserID).Int64("user_id", userID).Msg("ownership check failed")
		return models.Item{}, ErrNotOwner
	}

	return item, nil
}
