package service

import (
	"context"

	"github.com/MKhiriev/lost-and-found/models"
)

// AuthService handles account registration, credential verification and the
// session token lifecycle.
type AuthService interface {
	Register(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, login, password string) (models.Token, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, tokenString string) (models.Token, error)
}

// ResetService handles the password recovery flow: issuing single-use reset
// tokens and exchanging them for a new password.
type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	ConsumeReset(ctx context.Context, rawToken, newPassword string) error
}

// ItemService handles lost-and-found item reports. Mutating operations take
// the acting user's ID and enforce ownership before touching the record.
type ItemService interface {
	Report(ctx context.Context, item models.Item, image *models.ImageUpload) (models.Item, error)
	SetStatus(ctx context.Context, userID, itemID int64, status models.ItemStatus) (models.Item, error)
	Delete(ctx context.Context, userID, itemID int64) error
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	Get(ctx context.Context, itemID int64) (models.Item, error)
	Stats(ctx context.Context, userID int64) (models.DashboardStats, error)
}
