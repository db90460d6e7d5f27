package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table and
// the "user_roles" assignment table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record together with its role assignments
// in a single transaction and returns the fully populated [models.User] with
// server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - unique violation on the email constraint → [ErrEmailAlreadyExists].
//   - any other unique violation → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.insertUser(user).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		if ok, constraint := r.db.uniqueViolation(err); ok {
			if strings.Contains(constraint, "email") {
				return models.User{}, ErrEmailAlreadyExists
			}
			return models.User{}, ErrUsernameAlreadyExists
		}

		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, role := range user.Roles {
		query, args, err := r.insertUserRole(user.ID, role.ID).ToSql()
		if err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building role assignment query")
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Int64("role_id", role.ID).Msg("error: assigning role")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindByUsernameOrEmail retrieves the user whose username OR email column
// matches the identifier exactly. Usernames and emails share one lookup
// space, so at most one row can match a well-formed identifier.
//
// Returns [ErrNoUserWasFound] on an empty result set.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	query, args, err := r.selectUsers().
		Where("username = ? OR email = ?", identifier, identifier).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOneQuery(ctx, query, args)
}

// FindByID retrieves the user with the given internal identifier.
//
// Returns [ErrNoUserWasFound] on an empty result set.
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := r.selectUsers().Where("id = ?", id).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOneQuery(ctx, query, args)
}

func (r *userRepository) findOneQuery(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findOneQuery").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	roles, err := r.loadRoles(ctx, []int64{user.ID})
	if err != nil {
		return models.User{}, err
	}
	user.Roles = roles[user.ID]

	return user, nil
}

// FindAll returns every stored account, roles populated, ordered by id.
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectUsers().OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error: querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	var ids []int64
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.FindAll").Msg("error: scanning user rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
		ids = append(ids, user.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(users) == 0 {
		return users, nil
	}

	roles, err := r.loadRoles(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Roles = roles[users[i].ID]
	}

	return users, nil
}

// ExistsByUsername reports whether an account with the given username exists.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

// ExistsByEmail reports whether an account with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *userRepository) exists(ctx context.Context, column, value string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectExists(column, value).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		log.Err(err).Str("func", "*userRepository.exists").Str("column", column).Msg("error: existence check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// loadRoles fetches the role assignments of the given users in one query and
// groups them by user id.
func (r *userRepository) loadRoles(ctx context.Context, userIDs []int64) (map[int64][]models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectRolesForUsers(userIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.loadRoles").Msg("error: querying role assignments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make(map[int64][]models.Role, len(userIDs))
	for rows.Next() {
		var userID int64
		var role models.Role
		if err := rows.Scan(&userID, &role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.loadRoles").Msg("error: scanning role rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		roles[userID] = append(roles[userID], role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.Enabled,
		&user.AccountNonExpired,
		&user.AccountNonLocked,
		&user.CredentialsNonExpired,
		&user.CreatedAt,
	)
}
