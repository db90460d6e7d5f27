package models

// Principal is the resolved identity of an authenticated request: the account
// attributes plus the authority set derived from the stored roles. It is an
// immutable value built either from a User at login time or from validated
// token claims, and lives only for the duration of one request.
type Principal struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`

	// Authorities is the set of role names granted to the principal
	// (e.g. "ROLE_USER"). Order is not significant.
	Authorities []string `json:"authorities"`
}

// NewPrincipal builds a Principal from a stored user record. Authorities are
// the role names exactly as persisted; the ROLE_ prefix convention is part of
// the seeded role names, not applied here.
func NewPrincipal(user User) Principal {
	return Principal{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Authorities: user.RoleNames(),
	}
}

// FullName returns the display name of the principal.
func (p Principal) FullName() string {
	return p.FirstName + " " + p.LastName
}

// HasAuthority reports whether the principal holds the named authority.
func (p Principal) HasAuthority(name string) bool {
	for _, authority := range p.Authorities {
		if authority == name {
			return true
		}
	}
	return false
}

// HasAnyAuthority reports whether the principal holds at least one of the
// named authorities.
func (p Principal) HasAnyAuthority(names ...string) bool {
	for _, name := range names {
		if p.HasAuthority(name) {
			return true
		}
	}
	return false
}
