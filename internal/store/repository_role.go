package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/models"
)

// roleRepository is the SQL-backed implementation of [RoleRepository].
// The roles table is seeded by migrations and treated as read-only reference
// data at runtime.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// FindByName retrieves the role with the given canonical name.
//
// Returns [ErrNoRoleWasFound] on an empty result set; callers treat that as
// a deployment defect because the role table must be pre-seeded.
func (r *roleRepository) FindByName(ctx context.Context, name string) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectRoles().Where("name = ?", name).ToSql()
	if err != nil {
		return models.Role{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var role models.Role
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrNoRoleWasFound
		}

		log.Err(err).Str("func", "*roleRepository.FindByName").Str("name", name).Msg("error: scanning role row")
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return role, nil
}

// FindAll returns every seeded role ordered by id.
func (r *roleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectRoles().OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.FindAll").Msg("error: querying roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
			log.Err(err).Str("func", "*roleRepository.FindAll").Msg("error: scanning role rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}
