// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// campus-auth server. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds security and behaviour settings of the authentication engine.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and HTTP transport settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, password hashing and error reporting.
type App struct {
	// TokenSignKey is the secret used to sign session tokens with HS256.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenKeyID is the "kid" header value of tokens signed with TokenSignKey.
	// Env: APP_TOKEN_KEY_ID
	TokenKeyID string `env:"TOKEN_KEY_ID"`

	// TokenVerifyKeys are additional verification-only keys, keyed by kid.
	// Tokens signed by a retired key stay valid until they expire.
	// Env: APP_TOKEN_VERIFY_KEYS (format "kid1:secret1,kid2:secret2")
	TokenVerifyKeys map[string]string `env:"TOKEN_VERIFY_KEYS"`

	// TokenIssuer is the "iss" claim embedded in and required from every
	// session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Argon2 tunes the password hasher.
	Argon2 Argon2 `envPrefix:"ARGON2_"`

	// ConcealUnknownEmails makes forgot-password answer unknown addresses
	// exactly like known ones instead of with 404.
	// Env: APP_CONCEAL_UNKNOWN_EMAILS
	ConcealUnknownEmails bool `env:"CONCEAL_UNKNOWN_EMAILS"`

	// Development adds stack traces to 500 responses.
	// Env: APP_DEVELOPMENT
	Development bool `env:"DEVELOPMENT"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Argon2 holds the Argon2id cost parameters used for new password hashes.
// Existing hashes carry their own parameters and stay verifiable.
type Argon2 struct {
	// Memory is the memory cost in KiB. Env: APP_ARGON2_MEMORY
	Memory uint32 `env:"MEMORY"`
	// Iterations is the time cost. Env: APP_ARGON2_ITERATIONS
	Iterations uint32 `env:"ITERATIONS"`
	// Parallelism is the number of lanes. Env: APP_ARGON2_PARALLELISM
	Parallelism uint8 `env:"PARALLELISM"`
}

// Storage groups the configuration for the credential store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by scheme:
	//   - "postgres://..." or "postgresql://..." uses PostgreSQL via pgx;
	//   - "sqlite://path/to/file.db" or "file:..." uses SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the connection pool size.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS origin allow-list.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`

	// ResetRouteAliases are extra path prefixes the password-reset routes are
	// mounted under, next to the canonical /api/password.
	// Env: SERVER_RESET_ROUTE_ALIASES (comma separated)
	ResetRouteAliases []string `env:"RESET_ROUTE_ALIASES"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
