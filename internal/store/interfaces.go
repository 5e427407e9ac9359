package store

import (
	"context"
	"time"

	"github.com/MKhiriev/campus-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store. It owns password hashing: every
// method taking a plaintext password hashes it before it reaches the
// database.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// store-assigned fields filled in. A taken email yields
	// ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)

	// FindUserByEmail and FindUserByID return ErrNoUserWasFound when no row
	// matches. The password hash is only loaded with WithPasswordHash.
	FindUserByEmail(ctx context.Context, email string, opts ...FindOption) (models.User, error)
	FindUserByID(ctx context.Context, userID string, opts ...FindOption) (models.User, error)

	// SetPasswordResetToken stores digest and expiresAt together, replacing
	// any pending reset of the user.
	SetPasswordResetToken(ctx context.Context, userID, digest string, expiresAt time.Time) error

	// ResetPasswordByToken sets newPassword on the user whose pending digest
	// equals digest and expires after now, clearing the reset in the same
	// statement. ErrNoUserWasFound means no such pending reset exists.
	ResetPasswordByToken(ctx context.Context, digest, newPassword string, now time.Time) (models.User, error)

	// UpdatePassword sets newPassword and clears any pending reset.
	UpdatePassword(ctx context.Context, userID, newPassword string) (models.User, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
// The store itself never retries; the classification is logged so that
// callers and operators can tell transient outages from bugs.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator assigns identifiers to new records.
type IDGenerator interface {
	Generate() string
}

type findOptions struct {
	withPasswordHash bool
}

// FindOption tunes the projection of a lookup.
type FindOption func(*findOptions)

// WithPasswordHash includes the password hash in the loaded record.
func WithPasswordHash() FindOption {
	return func(o *findOptions) { o.withPasswordHash = true }
}
