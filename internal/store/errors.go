package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrItemNotFound is returned when a query or mutation targets an item
	// that does not exist in the database.
	ErrItemNotFound = errors.New("item was not found")

	// ErrResetTokenNotFound is returned when no reset token with the given
	// hash exists.
	ErrResetTokenNotFound = errors.New("reset token was not found")

	// ErrResetTokenNotConsumed is returned by the conditional consumption
	// update when no row matched — the token is missing, already consumed,
	// or past its expiry. The caller classifies the precise cause with a
	// follow-up read.
	ErrResetTokenNotConsumed = errors.New("reset token was not consumed")

	// ErrSessionNotFound is returned when no session with the given
	// identifier exists.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrImageStorageDisabled is returned when an image upload arrives but
	// no image directory is configured.
	ErrImageStorageDisabled = errors.New("image storage is not configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
