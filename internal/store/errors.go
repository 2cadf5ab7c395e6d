package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should match them with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when registering a new user fails
	// because a user with the same email already exists. The database
	// unique constraint guarantees at most one of two concurrent
	// registrations can succeed; the loser receives this error.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSchemeNotFound is returned when a query, update or delete
	// targets a scheme record that does not exist.
	ErrSchemeNotFound = errors.New("scheme was not found")
)

// Low-level database operation errors, returned (or wrapped) when a SQL
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a
	// single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
