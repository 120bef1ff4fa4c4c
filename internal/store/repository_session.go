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

// sessionRepository is the SQL-backed implementation of [SessionRepository]
// over the "sessions" table. A session row exists for every issued access
// token; revoking the row invalidates the token before its natural expiry.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new login session.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSession, session.SessionID, session.UserID, session.ExpiresAt, session.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error executing insert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindSession retrieves a session by its identifier.
//
// Error handling:
//   - empty result set → [ErrSessionNotFound]
func (r *sessionRepository) FindSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, findSession, sessionID)

	if err := row.Scan(&session.SessionID, &session.UserID, &session.ExpiresAt, &session.RevokedAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// RevokeSession marks the session revoked. Revoking an already revoked or
// unknown session returns [ErrSessionNotFound]; logout treats that as
// success.
func (r *sessionRepository) RevokeSession(ctx context.Context, sessionID string, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, revokeSession, now, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// PurgeSessions deletes expired and revoked sessions and reports how many
// rows were removed.
func (r *sessionRepository) PurgeSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.PurgeSessions").Msg("error executing delete")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.PurgeSessions").Msg("error reading rows affected")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
