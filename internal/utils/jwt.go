package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/giggi/basesetup/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token validation errors. The distinction is for logging and tests only:
// every one of them is presented to the client as a plain 401.
var (
	// ErrTokenExpired is returned when the token's "exp" claim is not in
	// the future. A token checked at exactly issuedAt+TTL is already expired.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenTampered is returned when the token signature does not match
	// the claim set, including tokens signed with an unexpected method.
	ErrTokenTampered = errors.New("token signature is invalid")

	// ErrTokenMalformed is returned when the token is structurally broken:
	// not a compact JWT, undecodable segments, missing subject, or a claim
	// set that fails issuer verification.
	ErrTokenMalformed = errors.New("token is malformed")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer      (iss): identifies the service that issued the token
//   - Subject     (sub): the username the token is issued for
//   - IssuedAt    (iat): the current time
//   - ExpiresAt   (exp): the current time plus tokenDuration
//   - authorities      : the subject's role names at issue time
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	subject       - username of the user the token is issued for
//	authorities   - role names granted to the subject
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the decoded claims
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("basesetup", "alice", []string{"ROLE_USER"}, time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, authorities []string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Authorities: authorities,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Failures are normalised to one of the sentinel errors above so callers can
// log a precise reason while still collapsing all of them to 401 externally:
//   - [ErrTokenExpired]   — the token outlived its TTL
//   - [ErrTokenTampered]  — signature mismatch or wrong signing method
//   - [ErrTokenMalformed] — anything else (broken structure, wrong issuer,
//     missing subject)
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "basesetup")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, classifyTokenError(err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrTokenMalformed
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// classifyTokenError maps golang-jwt parse errors to the package sentinels.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenTampered
	default:
		return ErrTokenMalformed
	}
}

// ParseBearerToken extracts the token part from a standard
// "Authorization: Bearer <token>" header value. Any other scheme is rejected.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
