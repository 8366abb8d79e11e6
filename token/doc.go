// Package token produces security tokens and identifiers.
//
// Three shapes are provided:
//
//   - [Generate]: opaque hex tokens from the platform CSPRNG, for session
//     keys, API keys, and verification links. The caller persists them; the
//     token carries no meaning of its own.
//   - [NewOpaqueID]: random UUIDs for one-shot challenge identifiers.
//   - [Signer]: HS256-signed expiring claim tokens that validate without a
//     store.
//
// # Architecture boundaries
//
// All output here is stateless: nothing is recorded, rotated, or revoked.
// Callers that need revocation must layer a store on top.
//
// # What this package must NOT do
//
//   - Fall back to a non-cryptographic random source, ever.
//   - Import any other seckit package.
package token
