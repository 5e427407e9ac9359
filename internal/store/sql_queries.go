package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/campus-auth/models"
	"github.com/Masterminds/squirrel"
)

const usersTable = "users"

const (
	colUserID            = "user_id"
	colUserName          = "user_name"
	colEmail             = "email"
	colPasswordHash      = "password_hash"
	colPhoneNumber       = "phone_number"
	colRole              = "role"
	colBranchID          = "branch_id"
	colYear              = "year"
	colStudentCode       = "student_code"
	colResetTokenDigest  = "password_reset_token_digest"
	colResetExpiresAt    = "password_reset_expires_at"
	colPasswordChangedAt = "password_changed_at"
	colCreatedAt         = "created_at"
	colUpdatedAt         = "updated_at"
)

// publicColumns is the default projection; the password hash is opt-in.
var publicColumns = []string{
	colUserID,
	colUserName,
	colEmail,
	colPhoneNumber,
	colRole,
	colBranchID,
	colYear,
	colStudentCode,
	colResetTokenDigest,
	colResetExpiresAt,
	colPasswordChangedAt,
	colCreatedAt,
	colUpdatedAt,
}

func userColumns(withPasswordHash bool) []string {
	if !withPasswordHash {
		return publicColumns
	}
	return append(append(make([]string, 0, len(publicColumns)+1), publicColumns...), colPasswordHash)
}

func returning(withPasswordHash bool) string {
	return "RETURNING " + strings.Join(userColumns(withPasswordHash), ", ")
}

func buildInsertUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns(
			colUserID,
			colUserName,
			colEmail,
			colPasswordHash,
			colPhoneNumber,
			colRole,
			colBranchID,
			colYear,
			colStudentCode,
			colCreatedAt,
			colUpdatedAt,
		).
		Values(
			user.UserID,
			user.UserName,
			user.Email,
			user.PasswordHash,
			user.PhoneNumber,
			string(user.Role),
			user.BranchID,
			user.Year,
			user.StudentCode,
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix(returning(false)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert user: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(b squirrel.StatementBuilderType, column string, value any, withPasswordHash bool) (string, []any, error) {
	query, args, err := b.Select(userColumns(withPasswordHash)...).
		From(usersTable).
		Where(squirrel.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select user by %s: %w", ErrBuildingSQLQuery, column, err)
	}
	return query, args, nil
}

func buildSetResetTokenQuery(b squirrel.StatementBuilderType, userID, digest string, expiresAt, now time.Time) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set(colResetTokenDigest, digest).
		Set(colResetExpiresAt, expiresAt).
		Set(colUpdatedAt, now).
		Where(squirrel.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: set reset token: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildResetPasswordByTokenQuery matches the digest, checks the expiry,
// writes the new hash and clears the reset in one statement.
func buildResetPasswordByTokenQuery(b squirrel.StatementBuilderType, digest, passwordHash string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set(colPasswordHash, passwordHash).
		Set(colResetTokenDigest, nil).
		Set(colResetExpiresAt, nil).
		Set(colPasswordChangedAt, now).
		Set(colUpdatedAt, now).
		Where(squirrel.Eq{colResetTokenDigest: digest}).
		Where(squirrel.Gt{colResetExpiresAt: now}).
		Suffix(returning(false)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: reset password: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePasswordQuery(b squirrel.StatementBuilderType, userID, passwordHash string, now time.Time) (string, []any, error) {
	query, args, err := b.Update(usersTable).
		Set(colPasswordHash, passwordHash).
		Set(colResetTokenDigest, nil).
		Set(colResetExpiresAt, nil).
		Set(colPasswordChangedAt, now).
		Set(colUpdatedAt, now).
		Where(squirrel.Eq{colUserID: userID}).
		Suffix(returning(false)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: update password: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads a row produced by userColumns(withPasswordHash).
func scanUser(row rowScanner, withPasswordHash bool) (models.User, error) {
	var (
		user          models.User
		role          string
		resetDigest   sql.NullString
		resetExpires  sql.NullTime
		passwordSetAt sql.NullTime
	)

	dest := []any{
		&user.UserID,
		&user.UserName,
		&user.Email,
		&user.PhoneNumber,
		&role,
		&user.BranchID,
		&user.Year,
		&user.StudentCode,
		&resetDigest,
		&resetExpires,
		&passwordSetAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	}
	if withPasswordHash {
		dest = append(dest, &user.PasswordHash)
	}

	if err := row.Scan(dest...); err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	if !user.Role.IsValid() {
		return models.User{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if resetDigest.Valid && resetExpires.Valid {
		user.PasswordResetTokenDigest = &resetDigest.String
		expires := resetExpires.Time
		user.PasswordResetExpiresAt = &expires
	}
	if passwordSetAt.Valid {
		changed := passwordSetAt.Time
		user.PasswordChangedAt = &changed
	}

	return user, nil
}
