package token

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRefreshSecret(t *testing.T) {
	first, err := GenerateRefreshSecret()
	require.NoError(t, err)
	second, err := GenerateRefreshSecret()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	raw, err := base64.RawURLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, refreshSecretBytes)
}

func TestHashRefreshSecret(t *testing.T) {
	hash := HashRefreshSecret("secret-value")

	// Deterministic hex-encoded SHA-256.
	assert.Equal(t, HashRefreshSecret("secret-value"), hash)
	assert.NotEqual(t, HashRefreshSecret("other-value"), hash)

	raw, err := hex.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}
