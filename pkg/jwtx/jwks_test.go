package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKeySet(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := NewSignerEdDSA("test-key-id", priv)
	require.NoError(t, err)

	ks := NewKeySet(signer)
	require.True(t, ks.IsReady())
	require.Len(t, ks.Keys, 1)

	jwk := ks.Keys[0]
	require.Equal(t, "OKP", jwk.Kty)
	require.Equal(t, "Ed25519", jwk.Crv)
	require.Equal(t, "test-key-id", jwk.Kid)
	require.Equal(t, "EdDSA", jwk.Alg)
	require.Equal(t, "sig", jwk.Use)

	// The x coordinate must round-trip to the raw public key bytes.
	x, err := base64.RawURLEncoding.DecodeString(jwk.X)
	require.NoError(t, err)
	require.Equal(t, []byte(priv.Public().(ed25519.PublicKey)), x)
}

func TestKeySetJSONShape(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := NewSignerEdDSA("kid-1", priv)
	require.NoError(t, err)

	data, err := json.Marshal(NewKeySet(signer))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	keys, ok := doc["keys"].([]any)
	require.True(t, ok)
	require.Len(t, keys, 1)

	key := keys[0].(map[string]any)
	require.Equal(t, "OKP", key["kty"])
	require.Equal(t, "kid-1", key["kid"])

	// Private key material must never appear in the document.
	_, hasD := key["d"]
	require.False(t, hasD)
}

func TestKeySetIsReady(t *testing.T) {
	require.False(t, (&KeySet{}).IsReady())

	var nilSet *KeySet
	require.False(t, nilSet.IsReady())
}
