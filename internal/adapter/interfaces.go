// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the campus-auth HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides the REST routes and
// the JSON envelopes from callers. Failed requests are mapped by
// mapHTTPError to an [*APIError] that unwraps to one of the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// and still read the server message.
package adapter

import (
	"context"

	"github.com/MKhiriev/campus-auth/models"
)

// ServerAdapter defines communication with the campus-auth server.
// Implementations keep the session token of the last successful
// authentication and attach it to the requests that need one.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates a student account and stores the returned token.
	Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error)

	// Login authenticates and stores the returned token. It returns the role
	// of the account.
	Login(ctx context.Context, request models.LoginRequest) (models.Role, error)

	// Me returns the account of the stored token.
	Me(ctx context.Context) (models.PublicUser, error)

	// ForgotPassword starts a reset and returns the reset token handed back
	// by the server. The token is empty when the server conceals unknown
	// addresses.
	ForgotPassword(ctx context.Context, email string) (string, error)

	// ResetPassword completes a reset and stores the returned token.
	ResetPassword(ctx context.Context, resetToken, password string) (models.PublicUser, error)

	// UpdatePassword changes the password of the stored token's account and
	// stores the replacement token.
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) (models.PublicUser, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
