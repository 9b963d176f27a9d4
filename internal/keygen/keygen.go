// Package keygen produces API key material: display-only suggestions
// shown by the deploy helper, and the opaque keys issued to accounts.
package keygen

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	mathrand "math/rand"
	"time"
)

const (
	suggestPrefix = "SecureAI"
	suggestSuffix = "_TextAnalytics"

	issuedPrefix = "ta_"
)

// Suggest returns a human-readable key suggestion. It is a starting
// point for an operator-chosen secret, not a secret itself: the random
// component is not cryptographically strong and the value is never
// stored.
func Suggest() string {
	return suggestAt(time.Now(), mathrand.Intn(900000))
}

func suggestAt(now time.Time, offset int) string {
	n := 100000 + offset%900000
	return fmt.Sprintf("%s%06d%s%s", suggestPrefix, n, now.Format("0102"), suggestSuffix)
}

// NewKey returns a fresh account API key with 192 bits of entropy.
func NewKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return issuedPrefix + base64.RawURLEncoding.EncodeToString(b), nil
}
