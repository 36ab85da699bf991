package derive

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// Capability is the self-test result for one cryptographic primitive the
// pipeline requires.
type Capability struct {
	Name string
	Err  error // nil when the self-test passed
}

// Capabilities runs a small self-test against each required primitive:
// the hash digest, the HKDF extract-and-expand construction, and the
// memory-hard hashing function.
func Capabilities() []Capability {
	caps := []Capability{
		{Name: "SHA-256 digest"},
		{Name: "HKDF key derivation"},
		{Name: "Argon2id memory-hard hashing"},
	}

	if !digestSelfTest() {
		caps[0].Err = errors.New("digest self-test vector mismatch")
	}
	if !hkdfSelfTest() {
		caps[1].Err = errors.New("extract-and-expand self-test vector mismatch")
	}
	if !argon2SelfTest() {
		caps[2].Err = errors.New("memory-hard self-test produced inconsistent output")
	}

	return caps
}

// CheckEnvironment returns the full list of capability failures; an empty
// list means the environment is supported. Derivation refuses to proceed
// when the list is non-empty and surfaces it verbatim.
func CheckEnvironment() []string {
	var issues []string
	for _, c := range Capabilities() {
		if c.Err != nil {
			issues = append(issues, c.Name+": "+c.Err.Error())
		}
	}
	return issues
}

// digestSelfTest checks SHA-256 against the FIPS 180 "abc" vector.
func digestSelfTest() bool {
	want, _ := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	sum := sha256.Sum256([]byte("abc"))
	return bytes.Equal(sum[:], want)
}

// hkdfSelfTest checks HKDF-SHA-256 against RFC 5869 test case 1.
func hkdfSelfTest() bool {
	ikm, _ := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt, _ := hex.DecodeString("000102030405060708090a0b0c")
	info, _ := hex.DecodeString("f0f1f2f3f4f5f6f7f8f9")
	want, _ := hex.DecodeString("3cb25f25faacd57a90434f64d0362f2a" +
		"2d2d0a90cf1a5a4c5db02d56ecc4c5bf" +
		"34007208d5b887185865")

	okm := make([]byte, len(want))
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, salt, info), okm); err != nil {
		return false
	}
	return bytes.Equal(okm, want)
}

// argon2SelfTest checks that the memory-hard primitive is usable and
// deterministic with tiny parameters, without committing to a specific
// reference vector for the library's parameter encoding.
func argon2SelfTest() bool {
	a := argon2.IDKey([]byte("sightkey"), []byte("selftest"), 1, 64, 1, 16)
	b := argon2.IDKey([]byte("sightkey"), []byte("selftest"), 1, 64, 1, 16)
	if !bytes.Equal(a, b) {
		return false
	}
	return !bytes.Equal(a, make([]byte, len(a)))
}
