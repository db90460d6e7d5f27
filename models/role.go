package models

import "time"

// Canonical role names. The roles table is seeded with exactly these values
// by the migrations; application code only ever looks roles up by name and
// treats a miss as a deployment defect.
const (
	RoleUser      = "ROLE_USER"
	RoleAdmin     = "ROLE_ADMIN"
	RoleModerator = "ROLE_MODERATOR"
)

// Role is a named permission grant. Roles are immutable reference data:
// created by migrations, assigned at registration, matched by the
// authorization policy.
type Role struct {
	// ID is the internal unique identifier of the role.
	ID int64 `json:"id"`

	// Name is the unique role name, uppercase by convention (e.g. "ROLE_USER").
	Name string `json:"name"`

	// Description is a human-readable explanation of the role.
	Description string `json:"description"`

	// CreatedAt is the timestamp when the role was seeded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}
