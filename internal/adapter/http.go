package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/utils"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath       = "/api/users/register"
	loginPath          = "/api/users/login"
	mePath             = "/api/users/me"
	updatePasswordPath = "/api/users/updatePassword"
	forgotPasswordPath = "/api/password/forgotPassword"
	resetPasswordPath  = "/api/password/resetPassword/{token}"
	versionPath        = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()

	h.logger.Debug().Bool("empty", token == "").Msg("session token updated")
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.PublicUser, error) {
	var response models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		Post(registerPath)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetToken(response.Token)
	return response.Data.User, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Role, error) {
	var response models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(response.Token)
	return response.Role, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.PublicUser, error) {
	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}

	var response models.CurrentUserResponse
	resp, err := request.SetResult(&response).Get(mePath)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return response.Data.User, nil
}

func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) (string, error) {
	var response models.ForgotPasswordResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ForgotPasswordRequest{Email: email}).
		SetResult(&response).
		Post(forgotPasswordPath)
	if err != nil {
		return "", fmt.Errorf("forgot password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return response.ResetToken, nil
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, resetToken, password string) (models.PublicUser, error) {
	var response models.AuthResponse

	// the token is path-escaped by resty
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("token", resetToken).
		SetBody(models.ResetPasswordRequest{Password: password}).
		SetResult(&response).
		Patch(resetPasswordPath)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("reset password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetToken(response.Token)
	return response.Data.User, nil
}

func (h *httpServerAdapter) UpdatePassword(ctx context.Context, currentPassword, newPassword string) (models.PublicUser, error) {
	request, err := h.authedRequest(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}

	var response models.AuthResponse
	resp, err := request.
		SetBody(models.UpdatePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}).
		SetResult(&response).
		Patch(updatePasswordPath)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("update password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.SetToken(response.Token)
	return response.Data.User, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
