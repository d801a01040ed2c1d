package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionToken returns a new random session token.
//
// 32 bytes of entropy, hex encoded. The token is only ever compared for
// equality against the sessions table, so no structure is needed.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
