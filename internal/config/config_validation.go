// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// MinTokenSignKeyLength is the shortest HS256 secret accepted at startup.
const MinTokenSignKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < MinTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, MinTokenSignKeyLength)
	}
	if cfg.App.TokenKeyID == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token key id and issuer are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if _, ok := cfg.App.TokenVerifyKeys[cfg.App.TokenKeyID]; ok {
		return fmt.Errorf("%w: verify key %q shadows the signing key", ErrInvalidAppConfigs, cfg.App.TokenKeyID)
	}
	if cfg.App.Argon2.Memory < 8*1024 || cfg.App.Argon2.Iterations == 0 || cfg.App.Argon2.Parallelism == 0 {
		return fmt.Errorf("%w: argon2 parameters are too weak", ErrInvalidAppConfigs)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	for _, alias := range cfg.Server.ResetRouteAliases {
		if !strings.HasPrefix(alias, "/") || alias == "/" || strings.HasPrefix(alias+"/", "/api/users/") {
			return fmt.Errorf("%w: invalid reset route alias %q", ErrInvalidServerConfigs, alias)
		}
	}

	return nil
}
