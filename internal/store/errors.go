package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when inserting a user violates the
	// unique constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup or update targets a user
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound is returned when a read, update or delete targets a
	// post id that does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrUnsupportedDialect is returned by [NewDB] for an unknown dialect.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT (or an INSERT ...
	// RETURNING read through QueryRow) fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an UPDATE or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)
