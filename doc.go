// Package seckit provides security helper routines: secure token generation,
// salted password hashing and verification, input sanitization, and email
// format validation.
//
// The four capabilities are independent and stateless. [Kit] is the front
// object; [New] assembles one from a validated [Config], and package-level
// functions mirror the Kit over compatibility defaults for callers that need
// no configuration. Every operation is safe to call from multiple goroutines
// with no coordination: nothing mutates shared state beyond atomic metrics
// counters.
//
// # Architecture boundaries
//
// seckit is the public surface. The mechanics live in the concern packages
// (password, token, sanitize, validate); the root package adds only error
// mapping, metrics, and the security-event stream. Exporters for the metrics
// snapshot live under metrics/export.
//
// # What this package must NOT do
//
//   - Persist anything: hash records and tokens are handed to the caller,
//     who owns storage.
//   - Fall back to a non-secure random source when the platform CSPRNG
//     fails.
//   - Surface stored-record parse errors through the boolean verification
//     API (they go to metrics and events instead).
package seckit
