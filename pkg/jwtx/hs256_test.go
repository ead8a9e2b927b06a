package jwtx

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "userdeck-test"

var testSecret = []byte("test-secret-please-rotate")

func newTestPair(t *testing.T) (*Signer, *Verifier) {
	t.Helper()

	signer, err := NewSigner(testSecret)
	require.NoError(t, err)

	verifier, err := NewVerifier(testSecret, testIssuer, DefaultLeeway)
	require.NoError(t, err)

	return signer, verifier
}

func TestNewSigner_EmptySecret(t *testing.T) {
	_, err := NewSigner(nil)
	require.ErrorIs(t, err, ErrNoSecret)

	_, err = NewVerifier(nil, testIssuer, DefaultLeeway)
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestRoundTrip(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewClaims("alice", "admin", testIssuer, DefaultTokenTTL, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(raw, "."), 3)

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, testIssuer, got.Issuer)
}

func TestVerify_Expired(t *testing.T) {
	signer, verifier := newTestPair(t)

	// Expired beyond the leeway window.
	claims := NewClaims("alice", "user", testIssuer, DefaultTokenTTL, time.Now().Add(-9*time.Hour))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_ExpiredWithinLeeway(t *testing.T) {
	signer, verifier := newTestPair(t)

	// Expired ten seconds ago, still inside the 30s leeway.
	claims := NewClaims("alice", "user", testIssuer, 10*time.Second, time.Now().Add(-20*time.Second))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.NoError(t, err)
}

func TestVerify_NotYetValid(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewClaims("alice", "user", testIssuer, DefaultTokenTTL, time.Now().Add(5*time.Minute))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrNotYetValid)
}

func TestVerify_TamperedSignature(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewClaims("alice", "user", testIssuer, DefaultTokenTTL, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	// Flip one bit in the signature segment.
	sig[0] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = verifier.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_TamperedClaims(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewClaims("alice", "user", testIssuer, DefaultTokenTTL, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	// Swap the payload for one claiming admin; signature no longer covers it.
	forged := NewClaims("alice", "admin", testIssuer, DefaultTokenTTL, time.Now())
	forgedRaw, err := signer.Sign(forged)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	forgedParts := strings.Split(forgedRaw, ".")
	parts[1] = forgedParts[1]

	_, err = verifier.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_WrongSecret(t *testing.T) {
	signer, _ := newTestPair(t)

	other, err := NewVerifier([]byte("rotated-secret"), testIssuer, DefaultLeeway)
	require.NoError(t, err)

	claims := NewClaims("alice", "user", testIssuer, DefaultTokenTTL, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	// Secret rotation rejects every outstanding token at once.
	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewClaims("alice", "user", "someone-else", DefaultTokenTTL, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerify_Malformed(t *testing.T) {
	_, verifier := newTestPair(t)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerify_AlgorithmMismatch(t *testing.T) {
	_, verifier := newTestPair(t)

	// Unsigned token with alg=none must never pass.
	token := jwt.NewWithClaims(jwt.SigningMethodNone,
		NewClaims("alice", "admin", testIssuer, DefaultTokenTTL, time.Now()))
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.Error(t, err)
}
