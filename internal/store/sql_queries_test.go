// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/campus-auth/models"
	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder   = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	liteBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	user := models.User{
		UserID:       "u1",
		UserName:     "Ada",
		Email:        "a@x.com",
		PasswordHash: "$argon2id$...",
		Role:         models.RoleStudent,
		Year:         2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into users"))
	assert.Contains(t, query, "$11")
	assert.Contains(t, q, "returning user_id")
	assert.NotContains(t, q[strings.Index(q, "returning"):], "password_hash", "insert must not echo the hash")

	require.Len(t, args, 11)
	assert.Equal(t, "u1", args[0])
	assert.Equal(t, "$argon2id$...", args[3])
	assert.Equal(t, "student", args[5])
}

func Test_buildSelectUserQuery_Projection(t *testing.T) {
	query, args, err := buildSelectUserQuery(pgBuilder, colEmail, "a@x.com", false)
	require.NoError(t, err)
	assert.NotContains(t, query, colPasswordHash)
	assert.Contains(t, query, "WHERE email = $1")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"a@x.com"}, args)

	query, _, err = buildSelectUserQuery(pgBuilder, colUserID, "u1", true)
	require.NoError(t, err)
	assert.Contains(t, query, colPasswordHash)
	assert.Contains(t, query, "WHERE user_id = $1")
}

func Test_buildSelectUserQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildSelectUserQuery(liteBuilder, colEmail, "a@x.com", false)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE email = ?")
	assert.NotContains(t, query, "$1")
}

func Test_buildSetResetTokenQuery(t *testing.T) {
	now := time.Now().UTC()
	expires := now.Add(10 * time.Minute)

	query, args, err := buildSetResetTokenQuery(pgBuilder, "u1", "digest", expires, now)
	require.NoError(t, err)

	assert.Contains(t, query, "password_reset_token_digest = $1")
	assert.Contains(t, query, "password_reset_expires_at = $2")
	assert.Contains(t, query, "WHERE user_id = $4")
	assert.Equal(t, []any{"digest", expires, now, "u1"}, args)
}

// Test_buildResetPasswordByTokenQuery checks that digest match, expiry check,
// password write and reset clearing live in one statement.
func Test_buildResetPasswordByTokenQuery(t *testing.T) {
	now := time.Now().UTC()

	query, args, err := buildResetPasswordByTokenQuery(pgBuilder, "digest", "hash", now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE users SET password_hash = $1"))
	assert.Contains(t, query, "password_reset_token_digest = $2")
	assert.Contains(t, query, "password_reset_expires_at = $3")
	assert.Contains(t, query, "WHERE password_reset_token_digest = $6 AND password_reset_expires_at > $7")
	assert.Contains(t, query, "RETURNING user_id")

	require.Len(t, args, 7)
	assert.Equal(t, "hash", args[0])
	assert.Nil(t, args[1])
	assert.Nil(t, args[2])
	assert.Equal(t, "digest", args[5])
	assert.Equal(t, now, args[6])
}

func Test_buildUpdatePasswordQuery_ClearsPendingReset(t *testing.T) {
	now := time.Now().UTC()

	query, args, err := buildUpdatePasswordQuery(liteBuilder, "u1", "hash", now)
	require.NoError(t, err)

	assert.Contains(t, query, "password_reset_token_digest = ?")
	assert.Contains(t, query, "password_reset_expires_at = ?")
	assert.Contains(t, query, "WHERE user_id = ?")
	assert.Equal(t, []any{"hash", nil, nil, now, now, "u1"}, args)
}

func Test_userColumns_DoesNotMutateDefaults(t *testing.T) {
	before := len(publicColumns)
	withHash := userColumns(true)

	assert.Len(t, publicColumns, before)
	assert.Equal(t, colPasswordHash, withHash[len(withHash)-1])
}

// fakeRow fills scan destinations from values in order.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p, _ = r.values[i].(string)
		case *int:
			*p, _ = r.values[i].(int)
		case *time.Time:
			*p, _ = r.values[i].(time.Time)
		}
	}
	return nil
}

func userRow(role string) fakeRow {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return fakeRow{values: []any{
		"id-1", "Ada", "a@x.com", "", role, "", 1, "", nil, nil, nil, now, now,
	}}
}

func Test_scanUser(t *testing.T) {
	user, err := scanUser(userRow("faculty"), false)
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.UserID)
	assert.Equal(t, models.RoleFaculty, user.Role)
	assert.False(t, user.HasPendingReset())
	assert.Nil(t, user.PasswordChangedAt)

	_, err = scanUser(userRow("superuser"), false)
	assert.ErrorIs(t, err, ErrUnknownRole)

	boom := errors.New("boom")
	_, err = scanUser(fakeRow{err: boom}, false)
	assert.ErrorIs(t, err, boom)
}
