// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResetToken is a single-use, time-limited credential permitting a password
// change without the original password.
//
// The raw token value handed to the user is never persisted; only its SHA-256
// digest (TokenHash) is stored, so a database leak does not expose usable
// reset links.
type ResetToken struct {
	// TokenID is the server-assigned unique identifier of the record.
	TokenID int64 `json:"-"`

	// UserID identifies the account the token can reset.
	UserID int64 `json:"-"`

	// TokenHash is the hex-encoded SHA-256 digest of the raw token value.
	TokenHash string `json:"-"`

	// ExpiresAt is the instant after which the token is no longer usable.
	ExpiresAt time.Time `json:"expires_at"`

	// ConsumedAt is nil while the token is still usable and set exactly
	// once on successful consumption. A consumed token can never be
	// resurrected.
	ConsumedAt *time.Time `json:"-"`

	// CreatedAt is the issuance timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ResetToken model.
func (t ResetToken) TableName() string {
	return "reset_tokens"
}

// Expired reports whether the token's lifetime has passed at the given instant.
func (t ResetToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Consumed reports whether the token has already been used.
func (t ResetToken) Consumed() bool {
	return t.ConsumedAt != nil
}
