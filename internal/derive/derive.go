package derive

import (
	"fmt"
	"strings"

	kerrors "github.com/sightkey/sightkey/internal/errors"
)

// VisualInput holds the human-memorable inputs one password is derived
// from. It is caller-owned and never persisted.
type VisualInput struct {
	Domain      string
	Username    string
	Color       string       // 3- or 6-digit hex, with or without #
	Pattern     []int        // ordered point identifiers, at least 4
	Coordinates *Coordinates // optional; nil means (0, 0)
}

// Progress receives advisory pipeline milestones: a monotonically
// non-decreasing fraction in [0, 1] and a short status string. It must not
// be relied on for correctness; a sink that panics is ignored.
type Progress func(fraction float64, status string)

// Options configures one derivation call.
type Options struct {
	// Length is the requested password length, 12 to 256. Zero means
	// DefaultLength.
	Length int

	// Progress, if non-nil, is notified at each pipeline milestone.
	Progress Progress
}

// Derive runs the full pipeline with the production parameter set.
func Derive(input VisualInput, opts Options) (string, error) {
	return DeriveWithParams(input, opts, DefaultParams())
}

// DeriveWithParams derives a deterministic password from the visual input.
//
// The pipeline is strictly linear: validation → canonical byte encoding →
// context-bound extraction (Stage A) → memory-hard stretch (Stage B) →
// synthesis with complexity retry → cleanup. Every intermediate secret
// buffer is zeroed on every exit path. The call is referentially
// transparent: identical inputs always produce the identical password, and
// concurrent calls share no state.
func DeriveWithParams(input VisualInput, opts Options, p Params) (string, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}
	// Length is checked before any key material is touched.
	if err := validateLength(length); err != nil {
		return "", err
	}

	if issues := CheckEnvironment(); len(issues) > 0 {
		return "", fmt.Errorf("%w: %s", kerrors.ErrEnvironmentUnsupported, strings.Join(issues, "; "))
	}

	notify := progressNotifier(opts.Progress)
	buffers := &scrub{}
	defer buffers.wipeAll()

	notify(0.05, "validating inputs")
	if issues := ValidateInput(input); len(issues) > 0 {
		return "", kerrors.NewValidationError(issues)
	}

	notify(0.15, "processing inputs")
	master, context, err := normalize(input, buffers)
	if err != nil {
		return "", err
	}

	notify(0.35, "deriving master key")
	key, err := extractKey(master, context, p.Version)
	if err != nil {
		return "", err
	}
	buffers.track(key)

	notify(0.75, "stretching key material")
	stretched, err := stretchKey(key, context, p.Argon2)
	if err != nil {
		return "", err
	}
	buffers.track(stretched)

	notify(0.90, "synthesizing password")
	password, err := synthesize(stretched, length, p)
	if err != nil {
		return "", err
	}

	notify(0.97, "cleaning up")
	buffers.wipeAll()

	notify(1.0, "complete")
	return password, nil
}

// normalize canonicalizes every field and assembles the two derivation
// inputs: the secret master key material (pattern‖color‖coordinates) and
// the public context (domain‖username). All per-field buffers and both
// concatenations are registered for release-time wiping.
func normalize(input VisualInput, buffers *scrub) (master, context []byte, err error) {
	coords := Coordinates{}
	if input.Coordinates != nil {
		coords = *input.Coordinates
	}

	fields := []struct {
		name  string
		value any
	}{
		{"pattern", input.Pattern},
		{"color", input.Color},
		{"coordinates", coords},
		{"domain", input.Domain},
		{"username", input.Username},
	}

	encoded := make([][]byte, len(fields))
	for i, f := range fields {
		b, err := encodeField(f.value)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding %s: %w", f.name, err)
		}
		encoded[i] = buffers.track(b)
	}

	master = buffers.track(concat(encoded[0], encoded[1], encoded[2]))
	context = buffers.track(concat(encoded[3], encoded[4]))
	return master, context, nil
}

func concat(parts ...[]byte) []byte {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	out := make([]byte, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// progressNotifier wraps an optional sink so milestone reporting is
// fire-and-forget: a nil sink is a no-op and a panicking sink never alters
// the derivation outcome.
func progressNotifier(p Progress) Progress {
	if p == nil {
		return func(float64, string) {}
	}
	return func(fraction float64, status string) {
		defer func() {
			_ = recover()
		}()
		p(fraction, status)
	}
}
