package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// refreshSecretBytes gives 256 bits of entropy per refresh secret.
const refreshSecretBytes = 32

// GenerateRefreshSecret returns a URL-safe random refresh secret. The raw
// value is handed to the caller exactly once and never persisted.
func GenerateRefreshSecret() (string, error) {
	buf := make([]byte, refreshSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashRefreshSecret derives the deterministic storage form of a refresh
// secret. Sessions store and look up this hash, never the raw value.
func HashRefreshSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
