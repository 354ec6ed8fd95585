package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// verificationTokenBytes gives 256 bits of entropy per token.
const verificationTokenBytes = 32

// GenerateVerificationToken returns a hex-encoded random token used to prove
// control of a registered email address. Tokens are unguessable and unique
// with overwhelming probability.
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
