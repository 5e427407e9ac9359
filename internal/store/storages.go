package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/crypto"
	"github.com/MKhiriev/campus-auth/internal/logger"
)

// Storages groups the repositories of the server together with the
// connection they share.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the database named by cfg.DSN, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, hasher crypto.PasswordHasher, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("dialect", db.Dialect()).Msg("database migrations applied")

	return &Storages{
		UserRepository: NewUserRepository(db, hasher, log),
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
