package models

import "time"

// Session is the server-tracked binding of a bearer token to an
// authenticated user.
//
// The SessionID doubles as the "jti" claim of the issued JWT. Keeping a row
// per session makes logout deterministic: a revoked session fails
// authentication even while the bearer token itself is still within its
// validity window.
type Session struct {
	// SessionID is a UUID assigned at login.
	SessionID string `json:"-"`

	// UserID identifies the authenticated user.
	UserID int64 `json:"-"`

	// ExpiresAt mirrors the expiry of the issued token.
	ExpiresAt time.Time `json:"-"`

	// RevokedAt is nil for live sessions and set on logout.
	RevokedAt *time.Time `json:"-"`

	// CreatedAt is the login timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Active reports whether the session is usable at the given instant:
// not revoked and not past its expiry.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
