// Package derive implements the sightkey derivation pipeline.
//
// A password is derived deterministically from a set of human-memorable
// visual inputs: a domain, a username, a chosen color, a drawn
// point-pattern, and an optional geographic coordinate. No secret is ever
// persisted; the same inputs always regenerate the same password.
//
// # Pipeline
//
// Data flow is strictly linear and single-pass:
//
//  1. Validation collects every field-level violation before any
//     cryptographic work begins.
//  2. The normalizer canonicalizes each field into bytes: text as exact
//     UTF-8, pattern points one byte per element, numbers as 8-byte
//     big-endian doubles, coordinates in a canonical field-ordered textual
//     form. Equal logical values always re-encode to identical bytes.
//  3. Stage A extracts a 256-bit key with HKDF-SHA-256: the
//     pattern‖color‖coordinate bytes are the secret, the domain‖username
//     bytes are the domain-separation salt, and a 1-byte algorithm version
//     tag is the info parameter. Distinct (domain, username) pairs yield
//     computationally unrelated keys even from identical visual choices.
//  4. Stage B stretches the key with Argon2id (3 passes, 64 MiB, 2 lanes
//     by default), salted with the same context bytes. This makes
//     brute-force search over the visual input space economically
//     infeasible despite that space being smaller than a typical
//     password's.
//  5. The synthesizer maps the stretched material onto the password
//     alphabet: one character per required class, fill from the union
//     alphabet, then a deterministic Fisher–Yates shuffle. Candidates that
//     fail the complexity rules trigger a bounded deterministic retry; an
//     exhausted budget is an explicit error, never a degraded password.
//
// # Memory Hygiene
//
// Every buffer holding key material (per-field encodings, master material,
// context, derived key, stretched material) is registered with a scrub list
// and zeroed on every exit path via a deferred wipe. Only the generated
// password escapes the call.
//
// # Configuration
//
// All algorithm parameters, character sets, and complexity thresholds live
// in an immutable Params value. DefaultParams is the production set; tests
// pass smaller Argon2 costs through DeriveWithParams.
package derive
