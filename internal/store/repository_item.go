// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository] over
// the "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new item report and returns it with the
// server-assigned ItemID.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem,
		item.UserID, item.Title, item.Kind, item.Status, item.Location, item.Description, item.ImageRef, item.CreatedAt)

	if err := row.Scan(&item.ItemID, &item.UserID, &item.Title, &item.Kind, &item.Status, &item.Location, &item.Description, &item.ImageRef, &item.CreatedAt); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// GetItemByID retrieves a single item report.
//
// Error handling:
//   - empty result set → [ErrItemNotFound]
func (r *itemRepository) GetItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, getItemByID, itemID)

	if err := row.Scan(&item.ItemID, &item.UserID, &item.Title, &item.Kind, &item.Status, &item.Location, &item.Description, &item.ImageRef, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.GetItemByID").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// ListItems returns item reports matching the filter, newest first. An empty
// result is a nil-error empty slice, not a failure.
func (r *itemRepository) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ItemID, &item.UserID, &item.Title, &item.Kind, &item.Status, &item.Location, &item.Description, &item.ImageRef, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// CountItems returns the number of item reports matching the filter.
func (r *itemRepository) CountItems(ctx context.Context, filter models.ItemFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountItemsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CountItems").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*itemRepository.CountItems").Msg("error: scanning error")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// UpdateItemStatus sets the status of an existing item and returns the
// updated record. Ownership is checked by the caller; the repository only
// guarantees the row exists.
//
// Error handling:
//   - empty result set → [ErrItemNotFound]
func (r *itemRepository) UpdateItemStatus(ctx context.Context, itemID int64, status models.ItemStatus) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.db.QueryRowContext(ctx, updateItemStatus, status, itemID)

	if err := row.Scan(&item.ItemID, &item.UserID, &item.Title, &item.Kind, &item.Status, &item.Location, &item.Description, &item.ImageRef, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.UpdateItemStatus").Msg("error: scanning error")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// DeleteItem removes an item report.
//
// Error handling:
//   - zero rows affected → [ErrItemNotFound]
func (r *itemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteItem, itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
