package models

// LoginRequest is the payload of POST /api/auth/signin. The identifier may be
// either a username or an email address; the lookup treats both columns as a
// single identifier space.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// RegisterRequest is the payload of POST /api/auth/signup.
//
// Roles carries the requested role inputs in their short form ("admin",
// "mod", "user"). An empty or absent list assigns the baseline role.
type RegisterRequest struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Password  string   `json:"password"`
	Roles     []string `json:"roles,omitempty"`
}
