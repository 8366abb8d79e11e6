// Package password implements salted password hashing and verification with
// PBKDF2-HMAC-SHA-256.
//
// # Output format
//
//	<salt_hex>$<derived_key_hex>
//
// With [DefaultConfig] the salt is 16 random bytes (32 lowercase hex
// characters) and the derived key is 32 bytes (64 lowercase hex characters).
// The KDF consumes the salt's hex-string bytes literally, not the decoded raw
// bytes — that convention is part of the stored-record contract and must not
// change while legacy records exist.
//
// The format carries no scheme identifier, so parameter upgrades cannot be
// detected from a record alone. [Hasher.NeedsRehash] reports the mismatches
// the format does reveal; a versioned record format is the migration path to
// a stronger KDF.
//
// # Architecture boundaries
//
// This package owns hashing, verification, and record parsing only. Mapping
// malformed records onto a boolean verification result — and surfacing them
// through metrics or events — is the facade's job.
//
// # What this package must NOT do
//
//   - Store or retrieve records — callers supply plaintext and receive records.
//   - Import any other seckit package.
//   - Log plaintext passwords or derived keys.
package password
