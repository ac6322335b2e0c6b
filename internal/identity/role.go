// Package identity defines the party roles the core dispatches on.
package identity

import (
	"errors"
	"strings"
)

// Role is a tagged variant; callers dispatch on the value, never on raw
// request strings.
type Role string

const (
	RoleCreator        Role = "creator"
	RoleRepresentative Role = "representative"
	RoleAdmin          Role = "admin"
)

var ErrInvalidRole = errors.New("invalid_role")

func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RoleCreator):
		return RoleCreator, nil
	case string(RoleRepresentative):
		return RoleRepresentative, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}
