// Package apikey implements generation, HMAC hashing and masking of
// platform API keys.
package apikey

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Plaintext keys look like "cpk_live_<43 url-safe chars>". Only the HMAC
// hash and the display prefix are ever persisted.
const (
	Prefix    = "cpk_live_"
	PrefixLen = 12
)

// Generate returns a new plaintext API key.
func Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("apikey: entropy read failed: %w", err)
	}
	return Prefix + base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash computes the hex HMAC-SHA256 of a plaintext key under the server
// secret. Lookups compare this value against the stored key_hash.
func Hash(secret, plaintext string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}

// DisplayPrefix returns the persisted prefix of a plaintext key.
func DisplayPrefix(plaintext string) string {
	if len(plaintext) < PrefixLen {
		return plaintext
	}
	return plaintext[:PrefixLen]
}

// Mask renders a stored prefix for display.
func Mask(prefix string) string {
	return prefix + "..."
}
