package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lost-and-found/internal/adapter"
	"github.com/MKhiriev/lost-and-found/internal/config"
	"github.com/MKhiriev/lost-and-found/internal/crypto"
	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/store"
	"github.com/MKhiriev/lost-and-found/models"
)

// resetService is the concrete implementation of ResetService.
//
// Reset tokens are opaque random strings; only their SHA-256 digest is
// persisted, so a database leak exposes no usable tokens. Consumption is
// at-most-once: the repository's conditional update guarantees that of any
// number of concurrent attempts with the same token exactly one succeeds.
type resetService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	notifier             adapter.ResetNotifier

	// resetTokenTTL is the window during which an issued token may be
	// exchanged for a new password.
	resetTokenTTL time.Duration

	logger *logger.Logger
}

// NewResetService constructs a ResetService wired to the given repositories
// and outbound notifier.
func NewResetService(userRepository store.UserRepository, resetTokenRepository store.ResetTokenRepository, notifier adapter.ResetNotifier, cfg config.Auth, logger *logger.Logger) ResetService {
	return &resetService{
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		notifier:             notifier,
		resetTokenTTL:        cfg.ResetTokenTTL,
		logger:               logger,
	}
}

// RequestReset issues a reset token for the account behind email and hands the
// raw token to the notifier. The outcome is deliberately uniform: an unknown
// email, a stored token and a failed delivery all report success to the
// caller, so the endpoint cannot be used to probe which addresses have
// accounts. Failures are only logged.
func (r *resetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := r.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Msg("reset requested for unknown email")
			return nil
		}
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	raw, digest, err := crypto.NewResetToken()
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset token generation failed")
		return fmt.Errorf("reset token generation failed: %w", err)
	}

	now := time.Now()
	token := models.ResetToken{
		UserID:    user.UserID,
		TokenHash: digest,
		ExpiresAt: now.Add(r.resetTokenTTL),
		CreatedAt: now,
	}
	if _, err := r.resetTokenRepository.CreateResetToken(ctx, token); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset token creation failed")
		return fmt.Errorf("reset token creation failed: %w", err)
	}

	if err := r.notifier.SendResetLink(ctx, user, raw); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("reset link delivery failed")
	}

	return nil
}

// ConsumeReset exchanges a raw reset token for a new password. The token is
// consumed atomically before the password changes, so replaying the same
// token, sequentially or concurrently, fails with ErrResetTokenUsed.
//
// Errors distinguish why a token was rejected:
//   - ErrResetTokenInvalid: no such token was ever issued
//   - ErrResetTokenUsed: the token was already exchanged
//   - ErrResetTokenExpired: the token aged out before use
func (r *resetService) ConsumeReset(ctx context.Context, rawToken, newPassword string) error {
	log := logger.FromContext(ctx)

	if rawToken == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	digest := crypto.HashResetToken(rawToken)
	now := time.Now()

	userID, err := r.resetTokenRepository.ConsumeResetToken(ctx, digest, now)
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotConsumed) {
			return r.classifyRejectedToken(ctx, digest, now)
		}
		log.Err(err).Msg("reset token consumption failed")
		return fmt.Errorf("reset token consumption failed: %w", err)
	}

	passwordHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := r.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// classifyRejectedToken decides why the conditional consumption update
// matched no row. The follow-up read is diagnostic only; the consumption
// decision itself was already made atomically.
func (r *resetService) classifyRejectedToken(ctx context.Context, digest string, now time.Time) error {
	log := logger.FromContext(ctx)

	token, err := r.resetTokenRepository.FindResetTokenByHash(ctx, digest)
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrResetTokenInvalid
		}
		log.Err(err).Msg("reset token lookup failed")
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	if token.Consumed() {
		return ErrResetTokenUsed
	}
	if token.Expired(now) {
		return ErrResetTokenExpired
	}

	// The row exists, unconsumed and unexpired, yet the update missed it.
	// Another consumer may have purged it between the two statements.
	return ErrResetTokenInvalid
}
