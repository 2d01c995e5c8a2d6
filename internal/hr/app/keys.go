package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/dayflowhq/dayflow/pkg/idx"
	"github.com/dayflowhq/dayflow/pkg/jwtx"
)

// InitSessionKeys generates the Ed25519 signing key for session tokens.
//
// Keys are ephemeral: they live only in process memory, so tokens do not
// survive a restart. The durable session blob does, which is what carries the
// active session across restarts.
func InitSessionKeys(logger *slog.Logger) (*jwtx.EdDSASigner, jwtx.Verifier, *jwtx.KeySet, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate Ed25519 key: %w", err)
	}

	kid := idx.New().String()
	signer, err := jwtx.NewSignerEdDSA(kid, priv)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build signer: %w", err)
	}

	verifier := jwtx.VerifierForSigner(signer)
	keys := jwtx.NewKeySet(signer)

	logger.Info("generated ephemeral signing key", "algorithm", signer.Alg(), "kid", kid)
	logger.Warn("all existing tokens are now invalid due to key rotation on startup")

	return signer, verifier, keys, nil
}
