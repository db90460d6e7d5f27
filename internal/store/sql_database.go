package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/migrations"
)

// DB wraps the raw sql.DB handle with the driver-specific pieces the
// repositories need: the placeholder format for query building and the
// constraint-violation classifier of the active driver.
type DB struct {
	*sql.DB

	driver      string
	placeholder sq.PlaceholderFormat

	// uniqueViolation reports whether err is a unique-constraint violation
	// and, when the driver exposes it, the name of the violated constraint.
	uniqueViolation func(err error) (bool, string)

	logger *logger.Logger
}

// Migrate applies all embedded migrations for the active driver, including
// the role seed data. It must run before the repositories are used.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel statement builder configured with the
// placeholder format of the active driver.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
