// Package admin dispatches slash commands typed in chat and checks
// role passwords.
package admin

import (
	"maps"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin is the role required by privileged commands.
const RoleAdmin = "admin"

// Passwords maps a role name to the bcrypt hashes that grant it.
type Passwords map[string][]string

// Authenticate returns the role whose hash matches password.
// Roles are tried in name order so the result is deterministic when two
// roles share a password.
func (p Passwords) Authenticate(password string) (string, bool) {
	if password == "" {
		return "", false
	}

	for _, role := range slices.Sorted(maps.Keys(p)) {
		for _, hash := range p[role] {
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
				return role, true
			}
		}
	}
	return "", false
}

// HashPassword returns a bcrypt hash suitable for the passwords config.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
