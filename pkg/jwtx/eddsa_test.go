package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *EdDSASigner {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := NewSignerEdDSA("test-key-001", priv)
	require.NoError(t, err)
	return signer
}

func TestSignAndVerifyRoundtrip(t *testing.T) {
	signer := newTestSigner(t)
	verifier := VerifierForSigner(signer)

	claims := NewSessionClaims(
		"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "admin", "admin@dayflow.com", "Sarah Johnson",
		"dayflow-hr", DefaultSessionTokenTTL, time.Now(),
	)

	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, "admin@dayflow.com", got.Email)
	require.Equal(t, "Sarah Johnson", got.Name)
	require.NoError(t, got.ValidateExpiry())
	require.NoError(t, got.ValidateIssuer("dayflow-hr"))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer := newTestSigner(t)

	_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	other, err := NewSignerEdDSA("test-key-001", otherPriv)
	require.NoError(t, err)

	claims := NewSessionClaims("emp-1", "employee", "a@x.com", "A",
		"dayflow-hr", time.Minute, time.Now())
	raw, err := other.Sign(claims)
	require.NoError(t, err)

	_, err = VerifierForSigner(signer).Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsUnknownKid(t *testing.T) {
	signer := newTestSigner(t)
	verifier := NewVerifierEdDSA(nil)

	claims := NewSessionClaims("emp-1", "employee", "a@x.com", "A",
		"dayflow-hr", time.Minute, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsExpiredClaims(t *testing.T) {
	signer := newTestSigner(t)
	verifier := VerifierForSigner(signer)

	claims := NewSessionClaims("emp-1", "employee", "a@x.com", "A",
		"dayflow-hr", -time.Minute, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	// Signature verification succeeds; expiry is the caller's check.
	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Error(t, got.ValidateExpiry())
}
