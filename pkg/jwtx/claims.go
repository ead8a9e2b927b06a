package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTokenTTL is the default bearer token lifetime. There is no
	// refresh mechanism; callers re-authenticate when the token lapses.
	DefaultTokenTTL = 8 * time.Hour

	// DefaultLeeway is the clock-skew allowance applied on both bounds of
	// the validity window. Time sync is never perfect.
	DefaultLeeway = 30 * time.Second
)

// Claims are the bearer-token claims for this service. The role claim is a
// free string at this layer; strict decoding into a role type happens at the
// service boundary.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated user, mirrored into "sub" as well.
	Username string `json:"username,omitempty"`

	// Role is "admin" or "user" at issuance time. A token is a frozen
	// snapshot: later role changes do not affect outstanding tokens.
	Role string `json:"role,omitempty"`
}

// NewClaims builds minimally-correct claims with the validity window
// [now, now+ttl).
func NewClaims(username, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
		Role:     role,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiryWithLeeway ensures the token is inside its validity window,
// with a grace period on both bounds for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(now time.Time, leeway time.Duration) error {
	now = now.UTC()

	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
