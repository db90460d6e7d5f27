package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential data, and account-state flags.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login name of the account.
	Username string `json:"username"`

	// Email is the unique email address of the account. Login accepts
	// either Username or Email as the identifier.
	Email string `json:"email"`

	// FirstName is the user's given name. Non-sensitive, may be shown in UI.
	FirstName string `json:"first_name"`

	// LastName is the user's family name. Non-sensitive, may be shown in UI.
	LastName string `json:"last_name"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// exposed via JSON.
	PasswordHash string `json:"-"`

	// Enabled reports whether the account may authenticate at all.
	// Disabled accounts are rejected with the same error as bad credentials.
	Enabled bool `json:"enabled"`

	// Account-state flags mirroring the persistence schema. All are set to
	// true at registration; no account-management operation mutates them yet.
	AccountNonExpired     bool `json:"-"`
	AccountNonLocked      bool `json:"-"`
	CredentialsNonExpired bool `json:"-"`

	// Roles is the fully materialized set of roles granted to the account.
	// Repositories always return it populated; there is no lazy loading.
	Roles []Role `json:"roles"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RoleNames returns the names of all roles granted to the user,
// in the order they were loaded from storage.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}
