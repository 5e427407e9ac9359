package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/crypto"
	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/store"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/samber/oops"
)

// authService is the concrete implementation of AuthService.
// It never hashes passwords itself: plaintext passwords go to the
// UserRepository, which owns hashing. The hasher is only used to verify.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// hasher verifies presented passwords against stored digests.
	hasher crypto.PasswordHasher

	// resetTokens issues and digests password reset tokens.
	resetTokens crypto.ResetTokenManager

	// sessionTokens signs and verifies bearer tokens.
	sessionTokens crypto.SessionTokenIssuer

	// concealUnknownEmails makes ForgotPassword succeed silently for
	// addresses that have no account.
	concealUnknownEmails bool

	now func() time.Time

	logger *logger.Logger
}

// AuthServiceOption tunes an authService at construction.
type AuthServiceOption func(*authService)

// WithClock replaces the wall clock used for reset expiry checks.
func WithClock(now func() time.Time) AuthServiceOption {
	return func(a *authService) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAuthService constructs a new AuthService from its collaborators and the
// behaviour switches of cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	resetTokens crypto.ResetTokenManager,
	sessionTokens crypto.SessionTokenIssuer,
	cfg config.App,
	logger *logger.Logger,
	opts ...AuthServiceOption,
) AuthService {
	a := &authService{
		userRepository:       userRepository,
		hasher:               hasher,
		resetTokens:          resetTokens,
		sessionTokens:        sessionTokens,
		concealUnknownEmails: cfg.ConcealUnknownEmails,
		now:                  time.Now,
		logger:               logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Register creates a student account and issues a session token for it.
//
// A client-supplied role other than "student" is rejected with
// ErrRoleEscalationDenied; an absent role is accepted. A taken email yields
// ErrRegistrationFailed.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	if request.Role != "" && request.Role != models.RoleStudent {
		log.Warn().Str("email", request.Email).Str("role", string(request.Role)).Msg("self-registration with elevated role rejected")
		return models.AuthResult{}, ErrRoleEscalationDenied
	}

	user, err := a.userRepository.CreateUser(ctx, models.NewUser{
		UserName:    request.UserName,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
		Role:        models.RoleStudent,
		BranchID:    request.BranchID,
		Year:        request.Year,
		StudentCode: request.StudentCode,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", request.Email).Msg("registration with taken email")
			return models.AuthResult{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
		return models.AuthResult{}, a.storeFailure(ctx, "register", err)
	}

	return a.logIn(ctx, "register", user)
}

// Login authenticates an existing user.
//
// An unknown email still runs a password verification against a dummy digest
// so both failure paths take comparable time and return the same error.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email, store.WithPasswordHash())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.hasher.Verify(request.Password, crypto.DummyPasswordDigest)
			log.Info().Str("email", request.Email).Msg("login failed")
			return models.LoginResult{}, ErrAuthenticationFailed
		}
		return models.LoginResult{}, a.storeFailure(ctx, "login", err)
	}

	if !a.hasher.Verify(request.Password, user.PasswordHash) {
		log.Info().Str("user_id", user.UserID).Msg("login failed")
		return models.LoginResult{}, ErrAuthenticationFailed
	}

	token, err := a.sessionTokens.Issue(user.UserID)
	if err != nil {
		return models.LoginResult{}, a.tokenFailure(ctx, "login", err)
	}

	return models.LoginResult{Token: token, Role: user.Role}, nil
}

// ForgotPassword issues a reset token for the account with the given email
// and stores its digest with a fixed expiry, replacing any pending reset.
//
// Unknown emails yield ErrUserNotFound, or an empty token and no error when
// the service conceals unknown emails.
func (a *authService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" {
		return models.ResetToken{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return a.unknownEmail(ctx, request.Email)
		}
		return models.ResetToken{}, a.storeFailure(ctx, "forgot_password", err)
	}

	resetToken, err := a.resetTokens.Issue()
	if err != nil {
		return models.ResetToken{}, oops.In("auth").
			Code(CodeResetTokenCreation).
			With("operation", "forgot_password").
			Wrap(fmt.Errorf("%w: %w", ErrTokenCreationFailed, err))
	}

	err = a.userRepository.SetPasswordResetToken(ctx, user.UserID, resetToken.Digest, resetToken.ExpiresAt)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return a.unknownEmail(ctx, request.Email)
		}
		return models.ResetToken{}, a.storeFailure(ctx, "forgot_password", err)
	}

	log.Info().Str("user_id", user.UserID).Time("expires_at", resetToken.ExpiresAt).Msg("password reset requested")

	return resetToken, nil
}

// ResetPassword digests the presented token and lets the store match digest
// and expiry, set the new password and clear the reset in one statement.
// A missing, expired or already consumed token yields ErrTokenInvalidOrExpired.
func (a *authService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if request.Token == "" || request.Password == "" {
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	digest := a.resetTokens.Digest(request.Token)
	user, err := a.userRepository.ResetPasswordByToken(ctx, digest, request.Password, a.now())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Msg("password reset with invalid or expired token")
			return models.AuthResult{}, ErrTokenInvalidOrExpired
		}
		return models.AuthResult{}, a.storeFailure(ctx, "reset_password", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("password reset completed")

	return a.logIn(ctx, "reset_password", user)
}

// UpdatePassword verifies the current password of the authenticated user,
// stores the new one and issues a fresh session token.
//
// UserID must come from a verified session. A user that no longer exists
// yields ErrTokenIsExpiredOrInvalid; a wrong current password yields
// ErrAuthenticationFailed.
func (a *authService) UpdatePassword(ctx context.Context, request models.UpdatePasswordRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if request.UserID == "" || request.CurrentPassword == "" || request.NewPassword == "" {
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, request.UserID, store.WithPasswordHash())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthResult{}, ErrTokenIsExpiredOrInvalid
		}
		return models.AuthResult{}, a.storeFailure(ctx, "update_password", err)
	}

	if !a.hasher.Verify(request.CurrentPassword, user.PasswordHash) {
		log.Info().Str("user_id", user.UserID).Msg("password update with wrong current password")
		return models.AuthResult{}, ErrAuthenticationFailed
	}

	updated, err := a.userRepository.UpdatePassword(ctx, user.UserID, request.NewPassword)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthResult{}, ErrTokenIsExpiredOrInvalid
		}
		return models.AuthResult{}, a.storeFailure(ctx, "update_password", err)
	}

	log.Info().Str("user_id", updated.UserID).Msg("password updated")

	return a.logIn(ctx, "update_password", updated)
}

// ParseToken validates a raw session token.
//
// Any validation failure (expired, wrong issuer, unknown key, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.sessionTokens.Verify(tokenString)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// CurrentUser loads the account of an authenticated subject.
func (a *authService) CurrentUser(ctx context.Context, userID string) (models.PublicUser, error) {
	if userID == "" {
		return models.PublicUser{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.PublicUser{}, ErrTokenIsExpiredOrInvalid
		}
		return models.PublicUser{}, a.storeFailure(ctx, "current_user", err)
	}

	return user.Public(), nil
}

// logIn issues a session token for user and builds the public result.
func (a *authService) logIn(ctx context.Context, operation string, user models.User) (models.AuthResult, error) {
	token, err := a.sessionTokens.Issue(user.UserID)
	if err != nil {
		return models.AuthResult{}, a.tokenFailure(ctx, operation, err)
	}

	return models.AuthResult{User: user.Public(), Token: token}, nil
}

func (a *authService) unknownEmail(ctx context.Context, email string) (models.ResetToken, error) {
	logger.FromContext(ctx).Info().Str("email", email).Msg("password reset for unknown email")
	if a.concealUnknownEmails {
		return models.ResetToken{}, nil
	}
	return models.ResetToken{}, ErrUserNotFound
}

// storeFailure maps an unexpected store error to ErrStoreUnavailable and
// attaches a stack trace.
func (a *authService) storeFailure(ctx context.Context, operation string, err error) error {
	logger.FromContext(ctx).Err(err).Str("operation", operation).Msg("credential store failure")

	return oops.In("auth").
		Code(CodeStoreUnavailable).
		With("operation", operation).
		Wrap(fmt.Errorf("%w: %w", ErrStoreUnavailable, err))
}

func (a *authService) tokenFailure(ctx context.Context, operation string, err error) error {
	logger.FromContext(ctx).Err(err).Str("operation", operation).Msg("session token issuance failed")

	return oops.In("auth").
		Code(CodeTokenCreation).
		With("operation", operation).
		Wrap(fmt.Errorf("%w: %w", ErrTokenCreationFailed, err))
}
