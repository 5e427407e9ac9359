package service

import (
	"context"

	"github.com/MKhiriev/campus-auth/models"
)

// AuthService orchestrates credential checks, password recovery and session
// token issuance. Every method maps lower-level failures to the sentinel
// errors of this package.
type AuthService interface {
	// Register creates a student account and logs it in.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)

	// Login checks the credentials and returns a session token with the
	// account role. Unknown email and wrong password fail identically.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error)

	// ForgotPassword starts a password reset. The returned plaintext token is
	// the only copy; the store keeps its digest.
	ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) (models.ResetToken, error)

	// ResetPassword consumes a reset token, sets the new password and logs the
	// user in.
	ResetPassword(ctx context.Context, request models.ResetPasswordRequest) (models.AuthResult, error)

	// UpdatePassword changes the password of an authenticated user.
	UpdatePassword(ctx context.Context, request models.UpdatePasswordRequest) (models.AuthResult, error)

	// ParseToken verifies a raw session token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// CurrentUser returns the public view of the account with userID.
	CurrentUser(ctx context.Context, userID string) (models.PublicUser, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating or instrumenting.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
