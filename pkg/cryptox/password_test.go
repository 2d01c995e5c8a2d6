package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for testing
	pepperPath := filepath.Join(os.TempDir(), "dayflow-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"simple secret", "password123"},
		{"complex secret", "P@ssw0rd!#$%^&*()"},
		{"long secret", strings.Repeat("a", 100)},
		{"empty secret", ""},
		{"whitespace secret", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashSecret(tt.secret)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"),
				"hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")
		})
	}
}

func TestHashSecret_UniqueSalts(t *testing.T) {
	secret := "samepassword"

	hash1, err := HashSecret(secret)
	require.NoError(t, err)

	hash2, err := HashSecret(secret)
	require.NoError(t, err)

	// Same secret must hash differently thanks to random salts
	require.NotEqual(t, hash1, hash2)

	require.NoError(t, VerifySecret(secret, hash1))
	require.NoError(t, VerifySecret(secret, hash2))
}

func TestVerifySecret(t *testing.T) {
	hash, err := HashSecret("password123")
	require.NoError(t, err)

	t.Run("correct secret", func(t *testing.T) {
		require.NoError(t, VerifySecret("password123", hash))
	})

	t.Run("wrong secret", func(t *testing.T) {
		require.ErrorIs(t, VerifySecret("password124", hash), ErrMismatch)
	})

	t.Run("case sensitive", func(t *testing.T) {
		require.ErrorIs(t, VerifySecret("Password123", hash), ErrMismatch)
	})

	t.Run("malformed hash", func(t *testing.T) {
		err := VerifySecret("password123", "$argon2id$bogus")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrMismatch)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		err := VerifySecret("password123", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
		require.Error(t, err)
	})
}
