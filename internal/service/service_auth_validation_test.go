package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/campus-auth/internal/validators"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Stub: AuthService
// ─────────────────────────────────────────────

// stubAuthService records which entry points were reached and returns err
// from all of them.
type stubAuthService struct {
	calls []string
	err   error
}

func (s *stubAuthService) Register(_ context.Context, _ models.RegisterRequest) (models.AuthResult, error) {
	s.calls = append(s.calls, "register")
	return models.AuthResult{}, s.err
}

func (s *stubAuthService) Login(_ context.Context, _ models.LoginRequest) (models.LoginResult, error) {
	s.calls = append(s.calls, "login")
	return models.LoginResult{}, s.err
}

func (s *stubAuthService) ForgotPassword(_ context.Context, _ models.ForgotPasswordRequest) (models.ResetToken, error) {
	s.calls = append(s.calls, "forgot_password")
	return models.ResetToken{}, s.err
}

func (s *stubAuthService) ResetPassword(_ context.Context, _ models.ResetPasswordRequest) (models.AuthResult, error) {
	s.calls = append(s.calls, "reset_password")
	return models.AuthResult{}, s.err
}

func (s *stubAuthService) UpdatePassword(_ context.Context, _ models.UpdatePasswordRequest) (models.AuthResult, error) {
	s.calls = append(s.calls, "update_password")
	return models.AuthResult{}, s.err
}

func (s *stubAuthService) ParseToken(_ context.Context, _ string) (models.Token, error) {
	s.calls = append(s.calls, "parse_token")
	return models.Token{}, s.err
}

func (s *stubAuthService) CurrentUser(_ context.Context, _ string) (models.PublicUser, error) {
	s.calls = append(s.calls, "current_user")
	return models.PublicUser{}, s.err
}

// ─────────────────────────────────────────────
// AuthValidationService
// ─────────────────────────────────────────────

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	inner := &stubAuthService{}
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "not-an-email", Password: "short", Year: -1})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	var verrs validators.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)

	_, err = svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: ""})
	assert.ErrorIs(t, err, validators.ErrEmptyEmail)

	_, err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: "", Password: "NewSecret1"})
	assert.ErrorIs(t, err, validators.ErrEmptyToken)

	_, err = svc.UpdatePassword(ctx, models.UpdatePasswordRequest{UserID: "u1", CurrentPassword: "Secret123", NewPassword: "short"})
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)

	assert.Empty(t, inner.calls, "invalid requests must not reach the wrapped service")
}

func TestAuthValidationService_PassesValidRequests(t *testing.T) {
	inner := &stubAuthService{}
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.com", Password: "Secret123"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "x"})
	require.NoError(t, err)
	_, err = svc.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: "abc", Password: "NewSecret1"})
	require.NoError(t, err)
	_, err = svc.UpdatePassword(ctx, models.UpdatePasswordRequest{UserID: "u1", CurrentPassword: "x", NewPassword: "NewSecret1"})
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, "")
	require.NoError(t, err)
	_, err = svc.CurrentUser(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"register", "login", "forgot_password", "reset_password",
		"update_password", "parse_token", "current_user",
	}, inner.calls)
}

func TestAuthValidationService_RoleIsLeftToCore(t *testing.T) {
	inner := &stubAuthService{err: ErrRoleEscalationDenied}
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "a@x.com",
		Password: "Secret123",
		Role:     models.RoleAdmin,
	})

	assert.ErrorIs(t, err, ErrRoleEscalationDenied)
	assert.Equal(t, []string{"register"}, inner.calls)
}
