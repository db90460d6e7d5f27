package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the full claim set carried by every issued token: the standard
// registered claims (iss, sub, iat, exp) plus the custom "authorities" claim
// holding the principal's role names.
//
// The invariant exp = iat + TTL is established at issue time and never
// re-derived; the signature covers the whole claim set, so any mutation of
// the serialized token invalidates it.
type Claims struct {
	jwt.RegisteredClaims

	// Authorities is the list of role names granted to the subject at the
	// moment the token was issued. Carried under the "authorities" claim.
	Authorities []string `json:"authorities"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Subject returns the "sub" claim of the token, the username the token was
// issued for.
func (t *Token) Subject() string {
	return t.Claims.Subject
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
