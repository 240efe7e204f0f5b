package finance

import (
	"crypto/rand"
	"encoding/hex"
)

// NewPaymentNumber returns a globally unique payment number. Random rather
// than timestamp-derived so concurrent payments cannot collide.
func NewPaymentNumber() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "PMT-" + hex.EncodeToString(b), nil
}
