package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const (
	// DefaultLength is the token size in bytes used by the seckit facade.
	DefaultLength = 32

	// MaxLength bounds a single token request. Larger requests are almost
	// certainly a units mistake (bits vs bytes) rather than a real need.
	MaxLength = 1024
)

// ErrLength reports a token byte length outside [0, MaxLength].
var ErrLength = errors.New("token length out of range")

// Generate draws numBytes from the platform CSPRNG and returns them as a
// lowercase hex string of length 2*numBytes. Zero is legal and yields "".
//
// Entropy failure is returned unmasked; there is no fallback source.
func Generate(numBytes int) (string, error) {
	if numBytes < 0 || numBytes > MaxLength {
		return "", fmt.Errorf("%w: %d", ErrLength, numBytes)
	}
	if numBytes == 0 {
		return "", nil
	}

	raw := make([]byte, numBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("token: read entropy: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
