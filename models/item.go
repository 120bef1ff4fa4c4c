// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemKind distinguishes reports about lost belongings from reports about
// found ones.
type ItemKind string

// ItemStatus reflects whether an item report is still open.
type ItemStatus string

const (
	KindLost  ItemKind = "lost"
	KindFound ItemKind = "found"

	StatusUnresolved ItemStatus = "unresolved"
	StatusResolved   ItemStatus = "resolved"
)

// Valid reports whether k is one of the known item kinds.
func (k ItemKind) Valid() bool {
	return k == KindLost || k == KindFound
}

// Valid reports whether s is one of the known item statuses.
func (s ItemStatus) Valid() bool {
	return s == StatusUnresolved || s == StatusResolved
}

// Item represents a single lost-or-found report created by a user.
//
// UserID is a back-reference to the reporting user and is immutable after
// creation: no update path may change the owner of an existing item.
type Item struct {
	// ItemID is the server-assigned unique identifier of the report.
	ItemID int64 `json:"item_id"`

	// UserID identifies the owner — the user who created the report.
	// Only the owner may change the status of an item or delete it.
	UserID int64 `json:"user_id"`

	// Title is a short human-readable summary of the item.
	Title string `json:"title"`

	// Kind records whether the item was lost or found.
	Kind ItemKind `json:"kind"`

	// Status is "unresolved" for open reports and "resolved" once the
	// owner marks the item as returned/claimed.
	Status ItemStatus `json:"status"`

	// Location is a free-form description of where the item was lost
	// or found.
	Location string `json:"location"`

	// Description holds the detailed report text.
	Description string `json:"description"`

	// ImageRef is an opaque reference to an externally stored image file.
	// Empty when no image was attached. The server never interprets the
	// referenced bytes.
	ImageRef string `json:"image_ref,omitempty"`

	// CreatedAt is the timestamp the report was submitted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemFilter narrows List queries. Nil fields are not applied.
type ItemFilter struct {
	Kind   *ItemKind
	Status *ItemStatus
	UserID *int64

	// Limit caps the number of returned items; zero means no limit.
	Limit uint64
}
