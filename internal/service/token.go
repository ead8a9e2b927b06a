package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/userdeck/internal/domain"
	"github.com/aussiebroadwan/userdeck/pkg/jwtx"
)

// TokenService issues and validates bearer tokens. A token is a frozen
// snapshot of the identity at issuance time; later edits to the user record
// do not invalidate it, only secret rotation or expiry do.
type TokenService struct {
	signer   *jwtx.Signer
	verifier *jwtx.Verifier
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenService(secret []byte, issuer string, ttl time.Duration) (*TokenService, error) {
	signer, err := jwtx.NewSigner(secret)
	if err != nil {
		return nil, err
	}
	verifier, err := jwtx.NewVerifier(secret, issuer, jwtx.DefaultLeeway)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	return &TokenService{
		signer:   signer,
		verifier: verifier,
		issuer:   issuer,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// TTL is the lifetime stamped into issued tokens.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue mints a signed token for the verified identity.
func (s *TokenService) Issue(identity domain.Identity) (string, time.Time, error) {
	now := s.now()
	claims := jwtx.NewClaims(identity.Username, identity.Role().String(), s.issuer, s.ttl, now)

	token, err := s.signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// Validate verifies the token and reconstructs the identity it carries. The
// identity comes entirely from the claims; no storage lookup happens here.
// Role claims outside the closed set fail validation rather than defaulting.
func (s *TokenService) Validate(raw string) (domain.Identity, error) {
	claims, err := s.verifier.Verify(raw)
	if err != nil {
		return domain.Identity{}, err
	}

	if claims.Subject == "" {
		return domain.Identity{}, jwtx.ErrInvalidClaim
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", jwtx.ErrInvalidClaim, err)
	}

	return domain.Identity{Username: claims.Subject, IsAdmin: role.IsAdmin()}, nil
}
