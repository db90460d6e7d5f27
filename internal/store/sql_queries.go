package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/giggi/basesetup/models"
)

const (
	usersTable     = "users"
	rolesTable     = "roles"
	userRolesTable = "user_roles"
)

// userColumns is the canonical column order for scanning user rows.
var userColumns = []string{
	"id",
	"username",
	"email",
	"first_name",
	"last_name",
	"password_hash",
	"enabled",
	"account_non_expired",
	"account_non_locked",
	"credentials_non_expired",
	"created_at",
}

// roleColumns is the canonical column order for scanning role rows.
var roleColumns = []string{"id", "name", "description", "created_at"}

func (r *userRepository) selectUsers() sq.SelectBuilder {
	return r.db.builder().Select(userColumns...).From(usersTable)
}

func (r *userRepository) insertUser(user models.User) sq.InsertBuilder {
	return r.db.builder().
		Insert(usersTable).
		Columns(
			"username",
			"email",
			"first_name",
			"last_name",
			"password_hash",
			"enabled",
			"account_non_expired",
			"account_non_locked",
			"credentials_non_expired",
		).
		Values(
			user.Username,
			user.Email,
			user.FirstName,
			user.LastName,
			user.PasswordHash,
			user.Enabled,
			user.AccountNonExpired,
			user.AccountNonLocked,
			user.CredentialsNonExpired,
		).
		Suffix("RETURNING id, created_at")
}

func (r *userRepository) insertUserRole(userID, roleID int64) sq.InsertBuilder {
	return r.db.builder().
		Insert(userRolesTable).
		Columns("user_id", "role_id").
		Values(userID, roleID)
}

// selectRolesForUsers joins the role assignments of the given users. Squirrel
// expands the slice into an IN clause.
func (r *userRepository) selectRolesForUsers(userIDs []int64) sq.SelectBuilder {
	return r.db.builder().
		Select("ur.user_id", "r.id", "r.name", "r.description", "r.created_at").
		From(userRolesTable + " ur").
		Join(rolesTable + " r ON r.id = ur.role_id").
		Where(sq.Eq{"ur.user_id": userIDs}).
		OrderBy("r.id")
}

func (r *userRepository) selectExists(column, value string) sq.SelectBuilder {
	return r.db.builder().
		Select("1").
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1)
}

func (r *roleRepository) selectRoles() sq.SelectBuilder {
	return r.db.builder().Select(roleColumns...).From(rolesTable)
}
