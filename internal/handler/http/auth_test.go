package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/campus-auth/internal/service"
	"github.com/MKhiriev/campus-auth/internal/store"
	"github.com/MKhiriev/campus-auth/internal/utils"
	"github.com/MKhiriev/campus-auth/internal/validators"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.PublicUser{
	ID:        "0190a0b0-0000-7000-8000-000000000001",
	UserName:  "Ada",
	Email:     "a@x.com",
	Role:      models.RoleStudent,
	CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

func authResult() models.AuthResult {
	return models.AuthResult{
		User:  testUser,
		Token: models.Token{SignedString: "session.jwt", UserID: testUser.ID},
	}
}

// authenticated makes ParseToken accept "good-token" for testUser.
func authenticated(m *mockAuthService) *mockAuthService {
	m.parseTokenFn = func(_ context.Context, raw string) (models.Token, error) {
		if raw != "good-token" {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: testUser.ID}, nil
	}
	return m
}

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, r models.RegisterRequest) (models.AuthResult, error) {
			assert.Equal(t, "a@x.com", r.Email, "email is normalized before the service")
			assert.Equal(t, "Secret123", r.Password)
			return authResult(), nil
		},
	}
	h := newTestHandler(t, auth)

	rec := serve(t, h, http.MethodPost, "/api/users/register", map[string]any{
		"email":    "  A@X.com ",
		"password": "Secret123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "session.jwt", resp.Token)
	assert.Equal(t, models.RoleStudent, resp.Data.User.Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"role escalation", service.ErrRoleEscalationDenied, http.StatusBadRequest, MsgRoleEscalation},
		{"duplicate email", fmt.Errorf("%w: %w", service.ErrRegistrationFailed, store.ErrEmailAlreadyExists), http.StatusBadRequest, MsgEmailAlreadyExists},
		{"store down", service.ErrStoreUnavailable, http.StatusInternalServerError, MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthResult, error) {
					return models.AuthResult{}, tt.err
				},
			}

			rec := serve(t, newTestHandler(t, auth), http.MethodPost, "/api/users/register", map[string]any{
				"email": "a@x.com", "password": "Secret123", "role": "admin",
			})

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Empty(t, resp.Stack, "stack traces only in development mode")
		})
	}
}

func TestRegister_ValidationErrorsListed(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthResult, error) {
			verrs := validators.ValidationErrors{
				{Field: validators.FieldEmail, Err: validators.ErrInvalidEmail},
				{Field: validators.FieldPassword, Err: validators.ErrPasswordTooShort},
			}
			return models.AuthResult{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, verrs)
		},
	}

	rec := serve(t, newTestHandler(t, auth), http.MethodPost, "/api/users/register", map[string]any{"email": "x"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, MsgInvalidInput, resp.Message)
	assert.Equal(t, []models.FieldError{
		{Field: "email", Message: validators.ErrInvalidEmail.Error()},
		{Field: "password", Message: validators.ErrPasswordTooShort.Error()},
	}, resp.Errors)
}

func TestRegister_InvalidJSON(t *testing.T) {
	rec := serve(t, newTestHandler(t, &mockAuthService{}), http.MethodPost, "/api/users/register", "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MsgInvalidJSON, decodeError(t, rec).Message)
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, r models.LoginRequest) (models.LoginResult, error) {
			return models.LoginResult{Token: models.Token{SignedString: "session.jwt"}, Role: models.RoleFaculty}, nil
		},
	}

	rec := serve(t, newTestHandler(t, auth), http.MethodPost, "/api/users/login", models.LoginRequest{Email: "a@x.com", Password: "Secret123"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.LoginResponse{Success: true, Token: "session.jwt", Role: models.RoleFaculty}, resp)
	assert.NotContains(t, rec.Body.String(), `"data"`, "login only reports token and role")
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"bad credentials", service.ErrAuthenticationFailed, http.StatusUnauthorized, MsgIncorrectCredentials},
		{"missing fields", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ValidationErrors{{Field: "password", Err: validators.ErrEmptyPassword}}), http.StatusBadRequest, MsgMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.LoginRequest) (models.LoginResult, error) {
					return models.LoginResult{}, tt.err
				},
			}

			rec := serve(t, newTestHandler(t, auth), http.MethodPost, "/api/users/login", models.LoginRequest{Email: "a@x.com"})

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
		})
	}
}

// ── forgotPassword / resetPassword ───────────────────────────────────────────

func TestForgotPassword_ReturnsToken(t *testing.T) {
	auth := &mockAuthService{
		forgotPasswordFn: func(_ context.Context, r models.ForgotPasswordRequest) (models.ResetToken, error) {
			assert.Equal(t, "a@x.com", r.Email)
			return models.ResetToken{Plaintext: "abc123", Digest: "must-not-leak"}, nil
		},
	}

	rec := serve(t, newTestHandler(t, auth), http.MethodPost, "/api/password/forgotPassword", models.ForgotPasswordRequest{Email: "a@x.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ForgotPasswordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.ForgotPasswordResponse{Success: true, Message: MsgResetTokenSent, ResetToken: "abc123"}, resp)
	assert.NotContains(t, rec.Body.String(), "must-not-leak")
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		forgotPasswordFn: func(_ context.Context, _ models.ForgotPasswordRequest) (models.ResetToken, error) {
			return models.ResetToken{}, service.ErrUserNotFound
		},
	}

	rec := serve(t, newTestHandler(t, auth), http.MethodPost, "/api/password/forgotPassword", models.ForgotPasswordRequest{Email: "ghost@x.com"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgNoUserWithEmail, decodeError(t, rec).Message)
}

func TestResetPassword_TokenFromPath(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, r models.ResetPasswordRequest) (models.AuthResult, error) {
			assert.Equal(t, "tok3n", r.Token)
			assert.Equal(t, "NewSecret1", r.Password)
			return authResult(), nil
		},
	}
	h := newTestHandler(t, auth)

	for _, path := range []string{"/api/password/resetPassword/tok3n", "/api/auth/resetPassword/tok3n"} {
		for _, method := range []string{http.MethodPost, http.MethodPatch} {
			rec := serve(t, h, method, path, map[string]string{"password": "NewSecret1"})
			require.Equal(t, http.StatusOK, rec.Code, "%s %s", method, path)
		}
	}
}

func TestResetPassword_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, _ models.ResetPasswordRequest) (models.AuthResult, error) {
			return models.AuthResult{}, service.ErrTokenInvalidOrExpired
		},
	}

	rec := serve(t, newTestHandler(t, auth), http.MethodPost, "/api/password/resetPassword/used", map[string]string{"password": "NewSecret1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MsgResetTokenInvalid, decodeError(t, rec).Message)
}

// ── me / updatePassword ──────────────────────────────────────────────────────

func TestMe_RequiresAuth(t *testing.T) {
	rec := serve(t, newTestHandler(t, authenticated(&mockAuthService{})), http.MethodGet, "/api/users/me", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, MsgNotLoggedIn, decodeError(t, rec).Message)
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	auth := authenticated(&mockAuthService{
		currentUserFn: func(_ context.Context, userID string) (models.PublicUser, error) {
			assert.Equal(t, testUser.ID, userID)
			return testUser, nil
		},
	})

	rec := serve(t, newTestHandler(t, auth), http.MethodGet, "/api/users/me", nil, "Authorization", "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.CurrentUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, testUser.ID, resp.Data.User.ID)
}

func TestUpdatePassword_SubjectFromToken(t *testing.T) {
	auth := authenticated(&mockAuthService{
		updatePasswordFn: func(_ context.Context, r models.UpdatePasswordRequest) (models.AuthResult, error) {
			assert.Equal(t, testUser.ID, r.UserID, "body cannot choose the subject")
			assert.Equal(t, "Secret123", r.CurrentPassword)
			assert.Equal(t, "NewSecret1", r.NewPassword)
			return authResult(), nil
		},
	})
	h := newTestHandler(t, auth)

	body := map[string]string{"user_id": "someone-else", "currentPassword": "Secret123", "newPassword": "NewSecret1"}
	for _, path := range []string{"/api/users/updatePassword", "/api/password/updatePassword"} {
		rec := serve(t, h, http.MethodPatch, path, body, "Authorization", "Bearer good-token")
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestUpdatePassword_WrongCurrentPassword(t *testing.T) {
	auth := authenticated(&mockAuthService{
		updatePasswordFn: func(_ context.Context, _ models.UpdatePasswordRequest) (models.AuthResult, error) {
			return models.AuthResult{}, service.ErrAuthenticationFailed
		},
	})

	rec := serve(t, newTestHandler(t, auth), http.MethodPatch, "/api/users/updatePassword",
		map[string]string{"currentPassword": "wrong", "newPassword": "NewSecret1"},
		"Authorization", "Bearer good-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, MsgWrongCurrentPassword, decodeError(t, rec).Message)
}

func TestUpdatePassword_MissingSubject(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPatch, "/api/users/updatePassword",
		strings.NewReader(`{"currentPassword":"a","newPassword":"b"}`))
	rec := httptest.NewRecorder()

	h.updatePassword(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, MsgSessionInvalid, decodeError(t, rec).Message)
}

// ── development mode ─────────────────────────────────────────────────────────

func TestWriteError_DevelopmentStack(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.LoginResult, error) {
			return models.LoginResult{}, oops.In("auth").Code(service.CodeStoreUnavailable).Wrap(service.ErrStoreUnavailable)
		},
	}
	h := newTestHandler(t, auth)
	h.development = true

	rec := serve(t, h, http.MethodPost, "/api/users/login", models.LoginRequest{Email: "a@x.com", Password: "x"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, MsgInternalServerError, resp.Message)
	assert.NotEmpty(t, resp.Stack)
}

func TestContextUserID_RoundTrip(t *testing.T) {
	ctx := utils.WithUserID(context.Background(), testUser.ID)
	got, ok := utils.GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, testUser.ID, got)
}
