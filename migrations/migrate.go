// SPDX-License-Identifier: Apache-2.0

// Package migrations embeds the database schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Up applies all pending migrations for the given driver ("pgx" or
// "sqlite3"). The migration directory and goose dialect are selected per
// driver because the two backends differ in autoincrement and type syntax.
func Up(db *sql.DB, driver string) error {
	var dialect goose.Dialect
	var dir string

	switch driver {
	case "pgx", "postgres":
		dialect = goose.DialectPostgres
		dir = "postgres"
	case "sqlite3":
		dialect = goose.DialectSQLite3
		dir = "sqlite"
	default:
		return fmt.Errorf("migrations: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migrations: set dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migrations: up: %w", err)
	}
	return nil
}
