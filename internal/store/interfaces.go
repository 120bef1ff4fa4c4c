package store

import (
	"context"
	"time"

	"github.com/MKhiriev/lost-and-found/models"
)

// UserRepository persists user accounts and credential hashes.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// ItemRepository persists lost-and-found item reports.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, itemID int64) (models.Item, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	CountItems(ctx context.Context, filter models.ItemFilter) (int64, error)
	UpdateItemStatus(ctx context.Context, itemID int64, status models.ItemStatus) (models.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

// ResetTokenRepository persists password reset tokens.
//
// ConsumeResetToken is the only operation in the application that requires
// atomicity beyond a single-record write: checking that a token is unconsumed
// and unexpired and marking it consumed happen in one conditional UPDATE.
type ResetTokenRepository interface {
	CreateResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error)
	FindResetTokenByHash(ctx context.Context, tokenHash string) (models.ResetToken, error)
	ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time) (int64, error)
	PurgeResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// SessionRepository persists login sessions so that logout is deterministic.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, sessionID string) (models.Session, error)
	RevokeSession(ctx context.Context, sessionID string, now time.Time) error
	PurgeSessions(ctx context.Context, now time.Time) (int64, error)
}

// ImageStore persists uploaded item images outside the relational database
// and hands back an opaque reference. The server never interprets the
// stored bytes.
type ImageStore interface {
	SaveImage(ctx context.Context, upload models.ImageUpload) (string, error)
	RemoveImage(ctx context.Context, ref string) error
}
