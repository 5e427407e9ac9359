// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other configuration source.
const (
	DefaultTokenKeyID     = "primary"
	DefaultTokenIssuer    = "campus-auth"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxOpenConns   = 10

	DefaultArgon2Memory      uint32 = 64 * 1024 // 64 MiB
	DefaultArgon2Iterations  uint32 = 1
	DefaultArgon2Parallelism uint8  = 4
)

// Defaults returns the lowest-priority configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenKeyID:    DefaultTokenKeyID,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Argon2: Argon2{
				Memory:      DefaultArgon2Memory,
				Iterations:  DefaultArgon2Iterations,
				Parallelism: DefaultArgon2Parallelism,
			},
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			RequestTimeout:    DefaultRequestTimeout,
			AllowedOrigins:    []string{"http://localhost:5173", "http://localhost:3000"},
			ResetRouteAliases: []string{"/api/auth"},
		},
	}
}
