package models

import "time"

// JwtResponse is the success body of POST /api/auth/signin.
type JwtResponse struct {
	// Token is the signed compact JWT.
	Token string `json:"token"`

	// Type is the token scheme, always "Bearer".
	Type string `json:"type"`

	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`

	// ExpiresIn is the token lifetime in milliseconds.
	ExpiresIn int64 `json:"expiresIn"`
}

// NewJwtResponse assembles the signin response from an authenticated
// principal and its freshly issued token.
func NewJwtResponse(principal Principal, token Token, expiresIn time.Duration) JwtResponse {
	return JwtResponse{
		Token:     token.SignedString,
		Type:      "Bearer",
		ID:        principal.ID,
		Username:  principal.Username,
		Email:     principal.Email,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
		Roles:     principal.Authorities,
		ExpiresIn: expiresIn.Milliseconds(),
	}
}

// MessageResponse is the generic API response envelope used by registration
// and by failure bodies that do not need the full unauthorized shape.
type MessageResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
}

// SuccessMessage builds a MessageResponse reporting success.
func SuccessMessage(message string) MessageResponse {
	return MessageResponse{Message: message, Timestamp: time.Now(), Success: true}
}

// ErrorMessage builds a MessageResponse reporting failure.
func ErrorMessage(message string) MessageResponse {
	return MessageResponse{Message: message, Timestamp: time.Now(), Success: false}
}

// UnauthorizedResponse is the structured 401/403 body produced when the
// authorization policy denies a request.
type UnauthorizedResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// UserFindResponse is the read DTO for the user listing endpoints. It exposes
// identity and account-state attributes, never the password hash.
type UserFindResponse struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Enabled   bool     `json:"enabled"`
	Roles     []string `json:"roles"`
}

// NewUserFindResponse maps a stored user to its read DTO.
func NewUserFindResponse(user User) UserFindResponse {
	return UserFindResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Enabled:   user.Enabled,
		Roles:     user.RoleNames(),
	}
}

// UserListResponse wraps the user collection returned by the list endpoints.
type UserListResponse struct {
	Users  []UserFindResponse `json:"users"`
	Length int                `json:"length"`
}
