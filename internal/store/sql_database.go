package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/migrations"
)

// DB wraps the raw database connection together with the driver-specific
// query builder and error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Up(db.DB, db.driver)
}

// Builder returns the placeholder-aware squirrel statement builder for this
// connection ($1-style for Postgres, ?-style for SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Classify runs err through this connection's driver-specific error
// classifier. A connection without a classifier treats every error as
// [NonRetryable].
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
