package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the entropy of a raw reset token. 32 random bytes make
// the token value unguessable by enumeration.
const resetTokenBytes = 32

// NewResetToken generates a fresh password reset token.
//
// It returns the raw token (base64url, handed to the user out-of-band) and
// the hex-encoded SHA-256 digest that is persisted instead of the raw value.
func NewResetToken() (raw string, digest string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generating reset token: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, HashResetToken(raw), nil
}

// HashResetToken returns the hex-encoded SHA-256 digest of a raw token
// value. Lookup and consumption always go through the digest, so the raw
// token never touches the database.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
