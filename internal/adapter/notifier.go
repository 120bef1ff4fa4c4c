package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/models"
)

// WebhookNotifierConfig configures the outbound reset-link delivery.
type WebhookNotifierConfig struct {
	// WebhookURL receives a JSON payload for every reset request. Empty
	// disables delivery; the notifier then only logs that a token was
	// issued.
	WebhookURL string
	Timeout    time.Duration
}

// resetLinkPayload is the body POSTed to the webhook. The raw token appears
// here and nowhere else; the database only holds its digest.
type resetLinkPayload struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	ResetToken string `json:"reset_token"`
}

// webhookNotifier implements [ResetNotifier] over an HTTP webhook, typically
// a mail-sending relay.
type webhookNotifier struct {
	client     *resty.Client
	webhookURL string
	logger     *logger.Logger
}

// NewWebhookNotifier constructs a [ResetNotifier] that POSTs reset tokens to
// the configured webhook.
func NewWebhookNotifier(cfg WebhookNotifierConfig, log *logger.Logger) ResetNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout)

	return &webhookNotifier{
		client:     cli,
		webhookURL: strings.TrimSpace(cfg.WebhookURL),
		logger:     log,
	}
}

// SendResetLink delivers the raw reset token for the given user. With no
// webhook configured the token is acknowledged in the log by user ID only and
// delivery is reported as successful, so a missing relay never leaks whether
// an account exists through response timing.
func (n *webhookNotifier) SendResetLink(ctx context.Context, user models.User, resetToken string) error {
	log := logger.FromContext(ctx)

	if n.webhookURL == "" {
		log.Info().Str("func", "*webhookNotifier.SendResetLink").Int64("user_id", user.UserID).Msg("no reset webhook configured, skipping delivery")
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(resetLinkPayload{
			Email:      user.Email,
			Name:       user.Name,
			ResetToken: resetToken,
		}).
		Post(n.webhookURL)
	if err != nil {
		log.Err(err).Str("func", "*webhookNotifier.SendResetLink").Msg("reset link delivery failed")
		return fmt.Errorf("reset link request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		err := fmt.Errorf("reset link delivery: unexpected status %d", resp.StatusCode())
		log.Err(err).Str("func", "*webhookNotifier.SendResetLink").Msg("reset link delivery failed")
		return err
	}

	return nil
}
