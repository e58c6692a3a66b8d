package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSubscriptionAlreadyExists is returned when an INSERT into
	// "subscriptions" violates the unique constraint on email.
	ErrSubscriptionAlreadyExists = errors.New("subscription with this email already exists")

	// ErrSubscriptionNotFound is returned when a lookup expected to match a
	// subscription produces an empty result set.
	ErrSubscriptionNotFound = errors.New("subscription was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan subscription row")
)
