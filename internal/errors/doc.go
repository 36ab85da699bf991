// Package errors defines the error kinds surfaced by sightkey.
//
// Errors fall into five kinds, mirroring the failure modes of the
// derivation pipeline:
//
//   - ErrEnvironmentUnsupported: a required cryptographic primitive is
//     missing. Fatal, no retry.
//   - ValidationError: aggregated field-level input violations. The caller
//     corrects the input and resubmits.
//   - ErrLengthOutOfRange: requested length outside [12, 256].
//   - CryptoError: an underlying primitive failed, categorized as
//     operation, resource, or unsupported so the CLI can print an
//     actionable hint.
//   - ErrComplexityUnsatisfiable: the synthesis retry budget ran out.
//     Deterministic for a given input, so a caller retry reproduces it.
//
// Sentinel errors are matched with errors.Is; typed errors with errors.As.
// No error kind is ever swallowed or downgraded to a best-effort password.
package errors
