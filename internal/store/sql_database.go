package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// DB wraps a *sql.DB together with its dialect and the matching error
// classifier, so repositories stay dialect-agnostic.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection for the configured dialect.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Dialect {
	case config.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, cfg.Dialect)
	}
}

// Dialect reports which backend the connection talks to.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies every pending schema migration for the dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder with the placeholder format
// the driver expects.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.dialect)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.classify(err) == UniqueViolation
}

func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == config.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
