package domain

import "errors"

// Role is the closed set of roles a token can carry. Claim values outside
// this set are rejected during validation, never defaulted to RoleUser.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ErrUnknownRole reports a role claim outside the closed set.
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole decodes a role claim strictly.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }

// IsAdmin reports whether the role grants admin rights.
func (r Role) IsAdmin() bool { return r == RoleAdmin }
