package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/campus-auth/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of auth_operations_total.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeAuthFailed         = "authentication_failed"
	OutcomeRoleDenied         = "role_escalation_denied"
	OutcomeNotFound           = "not_found"
	OutcomeTokenInvalid       = "token_invalid"
	OutcomeRegistrationFailed = "registration_failed"
	OutcomeError              = "error"
)

// AuthMetricsService counts and times every AuthService call. Secrets never
// become label values; only the operation name and the error class do.
type AuthMetricsService struct {
	inner AuthService

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewAuthMetricsService registers its collectors on registerer.
// Registering twice on the same registerer panics.
func NewAuthMetricsService(registerer prometheus.Registerer) AuthServiceWrapper {
	factory := promauto.With(registerer)

	return &AuthMetricsService{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_operations_total",
			Help: "Total number of authentication operations by outcome",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "auth_operation_duration_seconds",
			Help:    "Histogram of authentication operation latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *AuthMetricsService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	defer m.observe("register", time.Now())
	result, err := m.inner.Register(ctx, request)
	m.count("register", err)
	return result, err
}

func (m *AuthMetricsService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	defer m.observe("login", time.Now())
	result, err := m.inner.Login(ctx, request)
	m.count("login", err)
	return result, err
}

func (m *AuthMetricsService) ForgotPassword(ctx context.Context, request models.ForgotPasswordRequest) (models.ResetToken, error) {
	defer m.observe("forgot_password", time.Now())
	result, err := m.inner.ForgotPassword(ctx, request)
	m.count("forgot_password", err)
	return result, err
}

func (m *AuthMetricsService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) (models.AuthResult, error) {
	defer m.observe("reset_password", time.Now())
	result, err := m.inner.ResetPassword(ctx, request)
	m.count("reset_password", err)
	return result, err
}

func (m *AuthMetricsService) UpdatePassword(ctx context.Context, request models.UpdatePasswordRequest) (models.AuthResult, error) {
	defer m.observe("update_password", time.Now())
	result, err := m.inner.UpdatePassword(ctx, request)
	m.count("update_password", err)
	return result, err
}

func (m *AuthMetricsService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := m.inner.ParseToken(ctx, tokenString)
	m.count("parse_token", err)
	return token, err
}

func (m *AuthMetricsService) CurrentUser(ctx context.Context, userID string) (models.PublicUser, error) {
	return m.inner.CurrentUser(ctx, userID)
}

func (m *AuthMetricsService) Wrap(inner AuthService) AuthService {
	m.inner = inner
	return m
}

func (m *AuthMetricsService) observe(operation string, start time.Time) {
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *AuthMetricsService) count(operation string, err error) {
	m.operations.WithLabelValues(operation, outcomeOf(err)).Inc()
}

// outcomeOf maps an AuthService error to a bounded label value.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrInvalidDataProvided):
		return OutcomeInvalidInput
	case errors.Is(err, ErrAuthenticationFailed):
		return OutcomeAuthFailed
	case errors.Is(err, ErrRoleEscalationDenied):
		return OutcomeRoleDenied
	case errors.Is(err, ErrUserNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrTokenInvalidOrExpired), errors.Is(err, ErrTokenIsExpiredOrInvalid):
		return OutcomeTokenInvalid
	case errors.Is(err, ErrRegistrationFailed):
		return OutcomeRegistrationFailed
	default:
		return OutcomeError
	}
}
