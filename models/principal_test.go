package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	user := User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		PasswordHash: "digest",
		Roles: []Role{
			{ID: 1, Name: RoleUser},
			{ID: 3, Name: RoleAdmin},
		},
	}

	principal := NewPrincipal(user)

	assert.Equal(t, int64(7), principal.ID)
	assert.Equal(t, "alice", principal.Username)
	assert.Equal(t, "Alice Smith", principal.FullName())
	assert.Equal(t, []string{RoleUser, RoleAdmin}, principal.Authorities)
}

func TestPrincipal_HasAuthority(t *testing.T) {
	principal := Principal{Authorities: []string{RoleUser, RoleModerator}}

	assert.True(t, principal.HasAuthority(RoleUser))
	assert.True(t, principal.HasAuthority(RoleModerator))
	assert.False(t, principal.HasAuthority(RoleAdmin))
	assert.False(t, Principal{}.HasAuthority(RoleUser))
}

func TestPrincipal_HasAnyAuthority(t *testing.T) {
	principal := Principal{Authorities: []string{RoleUser}}

	assert.True(t, principal.HasAnyAuthority(RoleAdmin, RoleUser))
	assert.False(t, principal.HasAnyAuthority(RoleAdmin, RoleModerator))
	assert.False(t, principal.HasAnyAuthority())
}

// The password digest and internal account flags stay out of serialized users.
func TestUser_JSONHidesCredentialFields(t *testing.T) {
	user := User{
		ID:           1,
		Username:     "alice",
		PasswordHash: "$2a$10$digest",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "digest")
	assert.NotContains(t, string(data), "account_non_expired")
}

func TestUser_RoleNames(t *testing.T) {
	user := User{Roles: []Role{{Name: RoleUser}, {Name: RoleAdmin}}}

	assert.Equal(t, []string{RoleUser, RoleAdmin}, user.RoleNames())
	assert.Empty(t, User{}.RoleNames())
}
