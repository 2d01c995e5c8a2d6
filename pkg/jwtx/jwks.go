package jwtx

// JWK is a single JSON Web Key as served by the JWKS endpoint. Only public
// key material appears here.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv,omitempty"`
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	X   string `json:"x,omitempty"`
}

// KeySet is the JWKS document: every public key a client may need to verify
// session tokens issued by this process.
type KeySet struct {
	Keys []JWK `json:"keys"`
}

// NewKeySet collects the public JWKs of the given signers.
func NewKeySet(signers ...Signer) *KeySet {
	ks := &KeySet{Keys: make([]JWK, 0, len(signers))}
	for _, s := range signers {
		ks.Keys = append(ks.Keys, s.PublicJWK())
	}
	return ks
}

// IsReady reports whether at least one key is loaded.
func (ks *KeySet) IsReady() bool {
	return ks != nil && len(ks.Keys) > 0
}
