package jwtx

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// EdDSASigner implements the Signer interface using Ed25519.
type EdDSASigner struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSignerEdDSA wraps an Ed25519 private key as a Signer. The key is
// generated fresh at process start; there is no key persistence, so tokens
// do not survive a restart (the session blob does).
func NewSignerEdDSA(kid string, key ed25519.PrivateKey) (*EdDSASigner, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid Ed25519 private key size")
	}
	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("jwtx: failed to derive Ed25519 public key")
	}
	return &EdDSASigner{kid: kid, key: key, pub: pub}, nil
}

func (s *EdDSASigner) Alg() string { return "EdDSA" }
func (s *EdDSASigner) KID() string { return s.kid }

// Sign produces a compact JWT with the kid header set.
func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = s.kid
	return token.SignedString(s.key)
}

// PublicJWK returns the public key in JWK form for the JWKS endpoint.
func (s *EdDSASigner) PublicJWK() JWK {
	return JWK{
		Kty: "OKP",
		Crv: "Ed25519",
		Kid: s.kid,
		Alg: "EdDSA",
		Use: "sig",
		X:   base64.RawURLEncoding.EncodeToString(s.pub),
	}
}

// EdDSAVerifier verifies tokens against a set of Ed25519 public keys by kid.
type EdDSAVerifier struct {
	keys map[string]ed25519.PublicKey
}

// NewVerifierEdDSA builds a verifier for the given kid->public-key mapping.
func NewVerifierEdDSA(keys map[string]ed25519.PublicKey) *EdDSAVerifier {
	cp := make(map[string]ed25519.PublicKey, len(keys))
	for kid, pub := range keys {
		cp[kid] = pub
	}
	return &EdDSAVerifier{keys: cp}
}

// VerifierForSigner is a convenience for the common single-key setup.
func VerifierForSigner(s *EdDSASigner) *EdDSAVerifier {
	return NewVerifierEdDSA(map[string]ed25519.PublicKey{s.kid: s.pub})
}

// Verify parses and validates the signature of a raw compact JWT. Expiry is
// validated separately via Claims.ValidateExpiry so callers can distinguish
// a bad signature from a stale token.
func (v *EdDSAVerifier) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, errors.New("jwtx: unexpected signing method")
		}
		kid, _ := token.Header["kid"].(string)
		pub, ok := v.keys[kid]
		if !ok {
			return nil, errors.New("jwtx: unknown kid")
		}
		return pub, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return Claims{}, err
	}
	return claims, nil
}
