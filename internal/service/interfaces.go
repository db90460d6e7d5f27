package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/giggi/basesetup/models"
)

// AuthService is the authentication core: credential verification,
// registration, and the JWT token lifecycle.
type AuthService interface {
	// Authenticate verifies the identifier/password pair and returns the
	// authenticated principal. Unknown identifier, disabled account, and
	// wrong password all produce the same ErrInvalidCredentials: no
	// user-existence oracle is exposed.
	Authenticate(ctx context.Context, identifier, password string) (models.Principal, error)

	// Register creates a new, fully enabled account. The username check
	// precedes the email check; requested role inputs resolve through the
	// canonical role table and a seed miss is ErrRoleNotConfigured.
	// No token is issued at registration.
	Register(ctx context.Context, request models.RegisterRequest) error

	// CreateToken issues a signed JWT for the given principal.
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)

	// ParseToken validates a raw JWT string and rebuilds the principal
	// carried by its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}

// UserService exposes the read side of the user collection for the
// protected endpoints.
type UserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
}
