package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	minIterations = 10_000
	minSaltLength = 16
	minKeyLength  = 16

	// DefaultIterations is an exported constant or variable used by the seckit facade.
	DefaultIterations = 100_000
	// DefaultSaltLength is an exported constant or variable used by the seckit facade.
	DefaultSaltLength = 16
	// DefaultKeyLength is an exported constant or variable used by the seckit facade.
	DefaultKeyLength = 32
)

// ErrMalformedRecord reports a stored record that does not parse as
// "<salt_hex>$<key_hex>". Callers holding a boolean verification API should
// treat it as a failed match, not a fault.
var ErrMalformedRecord = errors.New("malformed password record")

// Config defines a public type used by seckit APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Iterations int
	SaltLength int
	KeyLength  int
}

// DefaultConfig returns the stored-record compatibility parameters:
// PBKDF2-HMAC-SHA-256, 100000 iterations, 16-byte salt, 32-byte key.
// Records written with these parameters interoperate with any prior
// deployment of the same scheme; changing them produces records that
// only this Hasher can verify.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		SaltLength: DefaultSaltLength,
		KeyLength:  DefaultKeyLength,
	}
}

// Hasher defines a public type used by seckit APIs.
//
// Hasher instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Hasher struct {
	config Config
}

// Record holds the two halves of a parsed stored record. Both fields keep
// their stored hex-string form; the salt is fed to the KDF as the literal
// hex-string bytes, never decoded back to raw bytes.
type Record struct {
	Salt string
	Key  string
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New(cfg Config) (*Hasher, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &Hasher{config: cfg}, nil
}

// Hash describes the hash operation and its observable behavior.
//
// Hash may return an error when input validation, dependency calls, or security checks fail.
// Hash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (h *Hasher) Hash(password string) (string, error) {
	// Password processing uses raw string bytes exactly as provided (no Unicode normalization).
	salt := make([]byte, h.config.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	saltHex := hex.EncodeToString(salt)
	key := h.deriveKey(password, saltHex)

	return saltHex + "$" + hex.EncodeToString(key), nil
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (h *Hasher) Verify(password string, stored string) (bool, error) {
	record, err := ParseRecord(stored)
	if err != nil {
		return false, err
	}

	computed := hex.EncodeToString(h.deriveKey(password, record.Salt))

	// Compare the hex encodings so case-mangled records never match.
	return subtle.ConstantTimeCompare([]byte(computed), []byte(record.Key)) == 1, nil
}

// NeedsRehash reports whether the stored record was produced with parameters
// that differ from this Hasher's configuration, as far as the record format
// reveals them. The legacy format does not encode its iteration count, so an
// iteration change alone is undetectable; a scheme identifier in the record
// is the known fix when migrating.
func (h *Hasher) NeedsRehash(stored string) (bool, error) {
	record, err := ParseRecord(stored)
	if err != nil {
		return false, err
	}

	if len(record.Salt) != 2*h.config.SaltLength {
		return true, nil
	}
	if len(record.Key) != 2*h.config.KeyLength {
		return true, nil
	}

	return false, nil
}

// ParseRecord splits a stored record into its salt and derived-key halves.
// The only structural requirement is a single "$" delimiter; the salt half
// is an opaque literal to the KDF, so it is not decoded or validated here.
func ParseRecord(stored string) (Record, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return Record{}, ErrMalformedRecord
	}

	return Record{Salt: parts[0], Key: parts[1]}, nil
}

func (h *Hasher) deriveKey(password, saltHex string) []byte {
	return pbkdf2.Key([]byte(password), []byte(saltHex), h.config.Iterations, h.config.KeyLength, sha256.New)
}

func validateConfig(cfg Config) error {
	if cfg.Iterations < minIterations {
		return errors.New("password iterations must be >= 10000")
	}
	if cfg.SaltLength < minSaltLength {
		return errors.New("password salt length must be >= 16")
	}
	if cfg.KeyLength < minKeyLength {
		return errors.New("password key length must be >= 16")
	}

	return nil
}
