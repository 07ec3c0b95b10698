package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	// MinCost keeps the test fast
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestPasswords_Authenticate(t *testing.T) {
	pw := Passwords{
		"admin":     {mustHash(t, "hunter2"), mustHash(t, "backup")},
		"moderator": {mustHash(t, "modpass")},
	}

	tests := []struct {
		password string
		wantRole string
		wantOK   bool
	}{
		{"hunter2", "admin", true},
		{"backup", "admin", true},
		{"modpass", "moderator", true},
		{"wrong", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			role, ok := pw.Authenticate(tt.password)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestPasswords_SharedPasswordPicksFirstRole(t *testing.T) {
	shared := mustHash(t, "same")
	pw := Passwords{"trusted": {shared}, "admin": {shared}}

	role, ok := pw.Authenticate("same")

	require.True(t, ok)
	assert.Equal(t, "admin", role)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	role, ok := Passwords{RoleAdmin: {hash}}.Authenticate("hunter2")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)
}
