package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTokenTTL is the default lifetime for session bearer tokens.
// The durable session blob outlives the token; an expired token simply forces
// the client back through sign-in.
const DefaultSessionTokenTTL = 12 * time.Hour

// Claims are session-token claims. The subject is the employee directory id;
// role/email/name are carried so route guards can authorize without a
// directory lookup.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the employee's authorization role ("employee" or "admin").
	Role string `json:"role,omitempty"`

	// Email is the sign-in identifier of the authenticated employee.
	Email string `json:"email,omitempty"`

	// Name is the display name for the employee.
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a session token.
func NewSessionClaims(
	subject, role, email, name string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role:  role,
		Email: email,
		Name:  name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return errors.New("jwtx: unexpected issuer")
	}
	return nil
}

// ValidateExpiry checks the exp and nbf claims against the current time.
func (c *Claims) ValidateExpiry() error {
	now := time.Now()
	if c.ExpiresAt == nil || now.After(c.ExpiresAt.Time) {
		return errors.New("jwtx: token expired")
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return errors.New("jwtx: token not yet valid")
	}
	return nil
}
