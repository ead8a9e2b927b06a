package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSecret    = errors.New("jwtx: empty signing secret")
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Signer signs claims with HMAC-SHA256 over a shared symmetric secret. The
// secret is fixed at construction; rotating it invalidates every token signed
// with the old one, which is the only revocation mechanism this service has.
type Signer struct {
	secret []byte
}

func NewSigner(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &Signer{secret: secret}, nil
}

// Sign produces the compact serialized token for the given claims.
func (s *Signer) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verifier validates an HS256 token and returns its claims if legit.
type Verifier struct {
	secret []byte
	issuer string // empty means "don't care"
	leeway time.Duration
}

func NewVerifier(secret []byte, issuer string, leeway time.Duration) (*Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	if leeway < 0 {
		leeway = 0
	}
	return &Verifier{secret: secret, issuer: issuer, leeway: leeway}, nil
}

// Verify checks the signature and the validity window and returns the claims.
// The distinct sentinel errors are for logs and tests; HTTP boundaries must
// collapse them all into a single unauthorized response.
func (v *Verifier) Verify(raw string) (Claims, error) {
	var claims Claims

	// Window and issuer checks are done manually below so that leeway and
	// error mapping stay under our control.
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(time.Now(), v.leeway); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrMalformed
	}
}
