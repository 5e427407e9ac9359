package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/campus-auth/internal/crypto"
	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/utils"
	"github.com/MKhiriev/campus-auth/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// against PostgreSQL and SQLite; the dialect of db picks placeholders and
// the unique-violation check.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	hasher crypto.PasswordHasher
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db. Passwords
// are hashed with hasher and new users get UUIDv7 identifiers.
func NewUserRepository(db *DB, hasher crypto.PasswordHasher, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect.name).Msg("creating user repository")
	return &userRepository{
		db:     db,
		hasher: hasher,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// CreateUser implements [UserRepository]. The email is normalized before
// insertion.
func (r *userRepository) CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := r.hasher.Hash(newUser.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	now := r.timestamp()
	user := models.User{
		UserID:       r.ids.Generate(),
		UserName:     newUser.UserName,
		Email:        utils.NormalizeEmail(newUser.Email),
		PasswordHash: hash,
		PhoneNumber:  newUser.PhoneNumber,
		Role:         newUser.Role,
		BranchID:     newUser.BranchID,
		Year:         newUser.Year,
		StudentCode:  newUser.StudentCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		if r.db.dialect.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.unexpected(ctx, "*userRepository.CreateUser", err)
	}

	return created, nil
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string, opts ...FindOption) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", colEmail, utils.NormalizeEmail(email), opts)
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, userID string, opts ...FindOption) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", colUserID, userID, opts)
}

func (r *userRepository) findUser(ctx context.Context, fn, column string, value any, opts []FindOption) (models.User, error) {
	var o findOptions
	for _, opt := range opts {
		opt(&o)
	}

	query, args, err := buildSelectUserQuery(r.db.builder(), column, value, o.withPasswordHash)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...), o.withPasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, r.unexpected(ctx, fn, err)
	}

	return user, nil
}

// SetPasswordResetToken implements [UserRepository].
func (r *userRepository) SetPasswordResetToken(ctx context.Context, userID, digest string, expiresAt time.Time) error {
	query, args, err := buildSetResetTokenQuery(r.db.builder(), userID, digest, expiresAt.UTC(), r.timestamp())
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.unexpected(ctx, "*userRepository.SetPasswordResetToken", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.unexpected(ctx, "*userRepository.SetPasswordResetToken", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ResetPasswordByToken implements [UserRepository]. The password is hashed
// before the statement runs so the row is never held while Argon2 works.
func (r *userRepository) ResetPasswordByToken(ctx context.Context, digest, newPassword string, now time.Time) (models.User, error) {
	hash, err := r.hasher.Hash(newPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	query, args, err := buildResetPasswordByTokenQuery(r.db.builder(), digest, hash, now.UTC())
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, r.unexpected(ctx, "*userRepository.ResetPasswordByToken", err)
	}

	return user, nil
}

// UpdatePassword implements [UserRepository].
func (r *userRepository) UpdatePassword(ctx context.Context, userID, newPassword string) (models.User, error) {
	hash, err := r.hasher.Hash(newPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	query, args, err := buildUpdatePasswordQuery(r.db.builder(), userID, hash, r.timestamp())
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, r.unexpected(ctx, "*userRepository.UpdatePassword", err)
	}

	return user, nil
}

// timestamp is the store clock in UTC. SQLite compares timestamps as text,
// which only orders correctly within one zone.
func (r *userRepository) timestamp() time.Time {
	return r.now().UTC()
}

// unexpected logs a driver failure with its retry classification and wraps
// it as ErrStoreUnavailable.
func (r *userRepository) unexpected(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Stringer("classification", r.db.classify(err)).
		Msg("unexpected DB error")
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
