package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers unknown identifier, disabled account, and
	// wrong password alike. The three cases must stay externally
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already in use")

	// ErrRoleNotConfigured signals that a canonical role is missing from the
	// seeded role table. This is a deployment defect and surfaces as a 5xx,
	// never as a user-facing validation error.
	ErrRoleNotConfigured = errors.New("role is not found")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
