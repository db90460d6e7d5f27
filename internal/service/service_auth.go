package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/giggi/basesetup/internal/config"
	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/store"
	"github.com/giggi/basesetup/internal/utils"
	"github.com/giggi/basesetup/models"
)

// roleInputs maps the short role inputs accepted at registration to the
// canonical role names seeded in the database. Anything not listed resolves
// to the baseline role, matching the registration contract: unrecognized
// input is not an error, an unseeded canonical role is.
var roleInputs = map[string]string{
	"admin": models.RoleAdmin,
	"mod":   models.RoleModerator,
	"user":  models.RoleUser,
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository and RoleRepository for persistence,
// bcrypt for password hashing, and HMAC-SHA256 for token signing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// roleRepository resolves canonical role names against the seeded role
	// table during registration.
	roleRepository store.RoleRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, roleRepository store.RoleRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate verifies an identifier/password pair against the credential
// store.
//
// The identifier may be a username or an email address; both live in one
// lookup space. A missing account, a disabled account, and a failed bcrypt
// comparison all return ErrInvalidCredentials — the caller (and therefore
// the client) cannot tell them apart, only the log records the reason.
func (a *authService) Authenticate(ctx context.Context, identifier, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if identifier == "" || password == "" {
		log.Error().Msg("empty identifier or password provided")
		return models.Principal{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("identifier", identifier).Msg("user not found")
			return models.Principal{}, ErrInvalidCredentials
		}

		log.Err(err).Str("identifier", identifier).Msg("user lookup failed")
		return models.Principal{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.Enabled {
		log.Warn().Str("username", user.Username).Msg("account is disabled")
		return models.Principal{}, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		log.Warn().Str("username", user.Username).Msg("wrong password")
		return models.Principal{}, ErrInvalidCredentials
	}

	return models.NewPrincipal(user), nil
}

// Register creates a new user account.
//
// The username existence check runs before the email check, so a request
// failing both reports only the username conflict. Requested role inputs
// resolve through the canonical role-name table; the resolved names are then
// looked up in the seeded role table and a miss aborts registration with
// ErrRoleNotConfigured. On success the account is persisted fully enabled
// with a bcrypt password digest. No token is issued.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("invalid registration data provided")
		return ErrInvalidDataProvided
	}

	usernameTaken, err := a.userRepository.ExistsByUsername(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("username existence check failed")
		return fmt.Errorf("username existence check failed: %w", err)
	}
	if usernameTaken {
		log.Warn().Str("username", request.Username).Msg("username already exists")
		return ErrUsernameTaken
	}

	emailTaken, err := a.userRepository.ExistsByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("email existence check failed")
		return fmt.Errorf("email existence check failed: %w", err)
	}
	if emailTaken {
		log.Warn().Str("email", request.Email).Msg("email already exists")
		return ErrEmailTaken
	}

	roles, err := a.resolveRoles(ctx, request.Roles)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:              request.Username,
		Email:                 request.Email,
		FirstName:             request.FirstName,
		LastName:              request.LastName,
		PasswordHash:          passwordHash,
		Enabled:               true,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Roles:                 roles,
	}

	if _, err := a.userRepository.CreateUser(ctx, user); err != nil {
		// The existence checks above are not atomic with the insert; a
		// concurrent registration can still trip the unique constraints.
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return ErrUsernameTaken
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return ErrEmailTaken
		}

		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", request.Username).Msg("user registered successfully")
	return nil
}

// resolveRoles maps the requested role inputs to seeded role records.
// An empty input assigns exactly the baseline role.
func (a *authService) resolveRoles(ctx context.Context, requested []string) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	names := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, input := range requested {
		name, ok := roleInputs[strings.ToLower(input)]
		if !ok {
			name = models.RoleUser
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = append(names, models.RoleUser)
	}

	roles := make([]models.Role, 0, len(names))
	for _, name := range names {
		role, err := a.roleRepository.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrNoRoleWasFound) {
				log.Error().Str("role", name).Msg("role table is not seeded")
				return nil, fmt.Errorf("%w: %s", ErrRoleNotConfigured, name)
			}

			log.Err(err).Str("role", name).Msg("role lookup failed")
			return nil, fmt.Errorf("role lookup failed: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, nil
}

// CreateToken issues a signed JWT for the given principal.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the principal's username as the
// subject, its authorities under the "authorities" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, principal.Username, principal.Authorities, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and rebuilds the principal it
// carries: the subject becomes the username and the "authorities" claim the
// authority set. Identity attributes not encoded in the token (id, email)
// stay zero — downstream authorization only consults the authorities.
//
// Validation failures pass through as the codec's sentinel errors
// (utils.ErrTokenExpired / ErrTokenTampered / ErrTokenMalformed) so the
// filter can log the precise reason.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Principal{}, err
	}

	return models.Principal{
		Username:    token.Subject(),
		Authorities: token.Claims.Authorities,
	}, nil
}

// TokenDuration returns the configured token lifetime.
func (a *authService) TokenDuration() time.Duration {
	return a.tokenDuration
}
