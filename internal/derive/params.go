package derive

// Length bounds for a generated password. Requests outside this range are
// rejected before any key material is created.
const (
	MinLength     = 12
	MaxLength     = 256
	DefaultLength = 24
)

// keySize is the size in bytes of the derived key and the stretched
// material (256 bits).
const keySize = 32

// Argon2Params captures tunable parameters for the Argon2id stretch.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// Charsets defines the character classes a password is synthesized from.
type Charsets struct {
	Lower   string
	Upper   string
	Digits  string
	Symbols string
}

// Union returns the combined alphabet of all four classes.
func (c Charsets) Union() string {
	return c.Lower + c.Upper + c.Digits + c.Symbols
}

// ComplexityRules defines what a synthesized candidate must satisfy before
// it is returned to the caller.
type ComplexityRules struct {
	MinDistinct    int // minimum count of distinct characters
	MaxRun         int // maximum run of identical consecutive characters
	MaxOccurrences int // maximum total occurrences of any single character
}

// Params is the immutable configuration of one derivation. Derivation takes
// it by value and never mutates it, so alternate parameter sets (smaller
// Argon2 costs in tests, different alphabets) stay isolated per call.
type Params struct {
	// Version is the 1-byte algorithm version tag bound into the HKDF info
	// parameter. Changing it changes every derived password.
	Version byte

	Argon2      Argon2Params
	Charsets    Charsets
	Complexity  ComplexityRules
	MaxAttempts int
}

// DefaultParams returns the production parameter set: Argon2id with 3
// passes over 64 MiB across 2 lanes, and the standard complexity rules.
func DefaultParams() Params {
	return Params{
		Version: 0x01,
		Argon2: Argon2Params{
			Time:    3,
			Memory:  64 * 1024,
			Threads: 2,
			KeyLen:  keySize,
		},
		Charsets: Charsets{
			Lower:   "abcdefghijklmnopqrstuvwxyz",
			Upper:   "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			Digits:  "0123456789",
			Symbols: "!@#$%^&*()-_=+[]{};:,.<>?",
		},
		Complexity: ComplexityRules{
			MinDistinct:    8,
			MaxRun:         2,
			MaxOccurrences: 4,
		},
		MaxAttempts: 10,
	}
}
