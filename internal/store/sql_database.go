package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/migrations"
	"github.com/Masterminds/squirrel"
)

// dialect captures what differs between the supported SQL backends.
type dialect struct {
	name              string
	placeholder       squirrel.PlaceholderFormat
	isUniqueViolation func(error) bool
}

var (
	postgresDialect = dialect{
		name:              migrations.DialectPostgres,
		placeholder:       squirrel.Dollar,
		isUniqueViolation: isPostgresUniqueViolation,
	}
	sqliteDialect = dialect{
		name:              migrations.DialectSQLite,
		placeholder:       squirrel.Question,
		isUniqueViolation: isSQLiteUniqueViolation,
	}
)

// DB is a database handle together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend selected by the scheme of cfg.DSN:
//   - postgres:// and postgresql:// use PostgreSQL through pgx;
//   - sqlite:// and file: use SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: expected postgres://, sqlite:// or file: scheme", ErrUnsupportedDSN)
	}
}

// Dialect returns the migration dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect.name
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.name)
}

func (db *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}

// classify reports the retry classification of err, NonRetryable when no
// classifier is configured.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
