package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/giggi/basesetup/models"
)

// UserRepository is the data-access contract for user accounts. All lookup
// methods return fully materialized records: the Roles slice is always
// populated, there are no lazy associations or back-references.
type UserRepository interface {
	// CreateUser persists a new account together with its role assignments
	// in a single transaction. user.Roles must carry role IDs resolved via
	// RoleRepository beforehand.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindByUsernameOrEmail looks an account up by a single identifier that
	// may match either the username or the email column (exact,
	// case-sensitive). Returns ErrNoUserWasFound when nothing matches.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error)

	// FindByID looks an account up by its internal identifier.
	FindByID(ctx context.Context, id int64) (models.User, error)

	// FindAll returns every stored account with roles populated.
	FindAll(ctx context.Context) ([]models.User, error)

	// ExistsByUsername reports whether an account with the given username
	// exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RoleRepository is the read-only data-access contract for the seeded role
// table. The application never creates roles at runtime.
type RoleRepository interface {
	// FindByName looks a role up by its canonical name. Returns
	// ErrNoRoleWasFound when the role is absent, which callers treat as a
	// deployment defect.
	FindByName(ctx context.Context, name string) (models.Role, error)

	// FindAll returns every seeded role.
	FindAll(ctx context.Context) ([]models.Role, error)
}
