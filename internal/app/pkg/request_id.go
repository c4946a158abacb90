package pkg

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// NewRequestID mints the idempotency key for one operator action. Every
// independent action gets a fresh key, even with identical parameters;
// retries of the same logical attempt should reuse the key already minted.
func NewRequestID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}

	// Secure randomness unavailable: fall back to a pseudo-random token with
	// the same version-4 layout so the upstream parser is unaffected.
	b := make([]byte, 16)
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
