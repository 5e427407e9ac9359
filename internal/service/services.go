package service

import (
	"fmt"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/crypto"
	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the service layer on top of storages. hasher must be
// the one the storages hash with, otherwise stored digests never verify.
//
// The AuthService is decorated as metrics(validation(core)), so rejected
// input is counted too.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, registerer prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	sessionTokens, err := crypto.NewSessionTokenIssuer(crypto.KeySetFromConfig(cfg), cfg.TokenIssuer, cfg.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("error creating session token issuer: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(storages.UserRepository, hasher, crypto.NewResetTokenManager(nil), sessionTokens, cfg, logger)
	authService = NewAuthValidationService().Wrap(authService)
	authService = NewAuthMetricsService(registerer).Wrap(authService)

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
