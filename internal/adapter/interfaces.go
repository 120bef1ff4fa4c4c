package adapter

import (
	"context"

	"github.com/MKhiriev/lost-and-found/models"
)

// ResetNotifier delivers password reset links to users out of band. The
// application itself never renders the link to the requester; delivery always
// goes through an external channel.
type ResetNotifier interface {
	SendResetLink(ctx context.Context, user models.User, resetToken string) error
}
