package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/models"
)

// resetTokenRepository is the SQL-backed implementation of
// [ResetTokenRepository] over the "reset_tokens" table. Only SHA-256 digests
// of reset tokens are stored; the raw token never reaches this layer.
type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs a [ResetTokenRepository] backed by the
// provided database connection and logger.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

// CreateResetToken persists a new reset token record and returns it with the
// server-assigned TokenID.
func (r *resetTokenRepository) CreateResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createResetToken, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt)

	if err := row.Scan(&token.TokenID, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.ConsumedAt, &token.CreatedAt); err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.CreateResetToken").Msg("error: scanning error")
		return models.ResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// FindResetTokenByHash retrieves a reset token record by its digest.
//
// Error handling:
//   - empty result set → [ErrResetTokenNotFound]
func (r *resetTokenRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	var token models.ResetToken
	row := r.db.QueryRowContext(ctx, findResetTokenByHash, tokenHash)

	if err := row.Scan(&token.TokenID, &token.UserID, &token.TokenHash, &token.ExpiresAt, &token.ConsumedAt, &token.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}

		log.Err(err).Str("func", "*resetTokenRepository.FindResetTokenByHash").Msg("error: scanning error")
		return models.ResetToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// ConsumeResetToken atomically marks the token consumed and returns the owning
// user's ID. The conditional UPDATE matches only an unconsumed token whose
// expiry is after now, so of any number of concurrent attempts on the same
// token exactly one receives the user ID.
//
// Error handling:
//   - no row matched → [ErrResetTokenNotConsumed]; the caller distinguishes
//     missing, already-consumed, and expired with a follow-up read
func (r *resetTokenRepository) ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var userID int64
	row := r.db.QueryRowContext(ctx, consumeResetToken, now, tokenHash)

	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrResetTokenNotConsumed
		}

		log.Err(err).Str("func", "*resetTokenRepository.ConsumeResetToken").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return userID, nil
}

// PurgeResetTokens deletes expired and consumed tokens and reports how many
// rows were removed.
func (r *resetTokenRepository) PurgeResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeResetTokens, now)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.PurgeResetTokens").Msg("error executing delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.PurgeResetTokens").Msg("error reading rows affected")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
