package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lost-and-found/models"
)

const (
	createUser = `INSERT INTO users (login, email, name, password_hash, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, login, email, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, email, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	findUserByEmail = `SELECT user_id, login, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, login, email, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`

	createItem = `INSERT INTO items (user_id, title, kind, status, location, description, image_ref, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING item_id, user_id, title, kind, status, location, description, image_ref, created_at;`

	getItemByID = `SELECT item_id, user_id, title, kind, status, location, description, image_ref, created_at
    FROM items
    WHERE item_id = $1;`

	updateItemStatus = `UPDATE items
    SET status = $1
    WHERE item_id = $2
    RETURNING item_id, user_id, title, kind, status, location, description, image_ref, created_at;`

	deleteItem = `DELETE FROM items
    WHERE item_id = $1;`

	createResetToken = `INSERT INTO reset_tokens (user_id, token_hash, expires_at, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING token_id, user_id, token_hash, expires_at, consumed_at, created_at;`

	findResetTokenByHash = `SELECT token_id, user_id, token_hash, expires_at, consumed_at, created_at
    FROM reset_tokens
    WHERE token_hash = $1;`

	// consumeResetToken is the single conditional UPDATE that makes token
	// consumption at-most-once: only an unconsumed, unexpired token matches,
	// and concurrent attempts race on the same row so exactly one wins.
	consumeResetToken = `UPDATE reset_tokens
    SET consumed_at = $1
    WHERE token_hash = $2 AND consumed_at IS NULL AND expires_at > $1
    RETURNING user_id;`

	purgeResetTokens = `DELETE FROM reset_tokens
    WHERE expires_at <= $1 OR consumed_at IS NOT NULL;`

	createSession = `INSERT INTO sessions (session_id, user_id, expires_at, created_at)
    VALUES ($1, $2, $3, $4);`

	findSession = `SELECT session_id, user_id, expires_at, revoked_at, created_at
    FROM sessions
    WHERE session_id = $1;`

	revokeSession = `UPDATE sessions
    SET revoked_at = $1
    WHERE session_id = $2 AND revoked_at IS NULL;`

	purgeSessions = `DELETE FROM sessions
    WHERE expires_at <= $1 OR revoked_at IS NOT NULL;`
)

// psql builds queries with $N placeholders, which both the pgx and the
// go-sqlite3 drivers accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListItemsQuery assembles the filtered item listing. Results come back
// newest first, matching the public feed order.
func buildListItemsQuery(filter models.ItemFilter) (string, []any, error) {
	builder := psql.
		Select("item_id", "user_id", "title", "kind", "status", "location", "description", "image_ref", "created_at").
		From("items").
		OrderBy("created_at DESC", "item_id DESC")

	builder = applyItemFilter(builder, filter)

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}

// buildCountItemsQuery assembles the COUNT variant of the same filter; the
// dashboard issues one of these per stat.
func buildCountItemsQuery(filter models.ItemFilter) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("items")

	builder = applyItemFilter(builder, filter)

	return builder.ToSql()
}

func applyItemFilter(builder sq.SelectBuilder, filter models.ItemFilter) sq.SelectBuilder {
	if filter.Kind != nil {
		builder = builder.Where(sq.Eq{"kind": *filter.Kind})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	return builder
}
