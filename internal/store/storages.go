package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/giggi/basesetup/internal/config"
	"github.com/giggi/basesetup/internal/logger"
)

// Storages bundles the database handle and every repository built on top of
// it. One instance is created at startup and shared by the services.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	RoleRepository RoleRepository
}

// NewStorages opens the database selected by the DSN scheme
// ("postgres://" / "postgresql://" → PostgreSQL, anything else → a SQLite
// file path), applies the embedded migrations including the role seed data,
// and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		RoleRepository: NewRoleRepository(db, log),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
