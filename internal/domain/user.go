package domain

import "time"

// User is the persisted account record. PasswordHash is an argon2id PHC
// string and is only ever compared through cryptox.VerifyPassword.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the verified snapshot of a user produced by credential
// verification or token validation. It is what gets encoded into tokens and
// attached to request contexts; it never carries the password hash.
type Identity struct {
	Username string
	IsAdmin  bool
}

// Role returns the role encoded into token claims for this identity.
func (i Identity) Role() Role {
	if i.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}
