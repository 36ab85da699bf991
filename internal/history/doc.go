// Package history keeps an append-only JSON Lines log of derivation
// metadata.
//
// Each line records when a derivation ran, for which domain and username,
// the requested length, and whether a location contributed. Nothing secret
// ever enters the log: no colors, no patterns, no coordinates, and no
// passwords. The log exists so users can review which site/account pairs
// they have derived passwords for, and can be disabled entirely through
// the history_enabled config default.
//
// Logging is best-effort. A failed append never fails the derivation.
package history
