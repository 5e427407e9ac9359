package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an account with the same email
	// already exists.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStoreUnavailable wraps every unexpected driver-level failure.
	ErrStoreUnavailable = errors.New("credential store unavailable")

	// ErrUnsupportedDSN is returned when the DSN scheme names no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrHashingPassword is returned when the password hasher fails.
	ErrHashingPassword = errors.New("error hashing password")

	// ErrUnknownRole is returned when a stored row carries a role outside
	// the known set.
	ErrUnknownRole = errors.New("unknown role in user row")
)
