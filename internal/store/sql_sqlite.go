package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/giggi/basesetup/internal/config"
	"github.com/giggi/basesetup/internal/logger"
)

// NewConnectSQLite opens a file-backed SQLite database. It is the standalone
// deployment option: no external database, migrations and seed data applied
// on startup the same way as for PostgreSQL.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:              conn,
		driver:          "sqlite3",
		placeholder:     sq.Question,
		uniqueViolation: sqliteUniqueViolation,
		logger:          log,
	}

	return db, nil
}

// sqliteUniqueViolation classifies err as a SQLite unique-constraint
// violation. SQLite does not expose the constraint name through the driver
// error, but the message names the violated column ("UNIQUE constraint
// failed: users.email"), so that serves as the constraint hint.
func sqliteUniqueViolation(err error) (bool, string) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true, sqliteErr.Error()
	}

	return false, ""
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
