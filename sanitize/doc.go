// Package sanitize provides denylist filtering for untrusted text and secret
// masking for log output.
//
// [Clean] is a blunt instrument: it strips a fixed set of injection
// metacharacters and caps length. That is useful as an outer layer on
// free-text input, but it is explicitly NOT sufficient on its own — HTML
// output still needs HTML escaping and SQL still needs parameterized
// queries.
//
// # What this package must NOT do
//
//   - Claim completeness: an allowlist or context-aware encoder belongs in
//     the consumer, not here.
//   - Import any other seckit package.
package sanitize
