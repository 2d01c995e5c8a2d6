package jwtx

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

// Verifier validates a raw compact JWT and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}
