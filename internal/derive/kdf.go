package derive

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"

	kerrors "github.com/sightkey/sightkey/internal/errors"
)

// extractKey is Stage A: context-bound HKDF extraction. The master key
// material is the secret input, the domain‖username context is the
// domain-separation salt, and the algorithm version tag is the info
// parameter. Two distinct (domain, username) pairs driven by the same
// visual secret produce computationally unrelated keys.
func extractKey(master, context []byte, version byte) ([]byte, error) {
	r := hkdf.New(sha256.New, master, context, []byte{version})
	key := make([]byte, keySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, kerrors.NewCryptoError(kerrors.CryptoOperation,
			fmt.Errorf("key extraction failed: %w", err))
	}
	return key, nil
}

// expandMaterial derives n deterministic bytes from the stretched material
// via the HKDF expand step. Synthesis needs roughly two bytes per password
// position; re-reading a 32-byte buffer over hundreds of positions would
// repeat the same few characters, so the material is widened up front.
func expandMaterial(material []byte, n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, material, []byte("synthesis")), out); err != nil {
		return nil, kerrors.NewCryptoError(kerrors.CryptoOperation,
			fmt.Errorf("material expansion failed: %w", err))
	}
	return out, nil
}

// stretchKey is Stage B: the Argon2id memory-hard stretch. The derived key
// is the password input; the same non-secret context bytes are reused as
// the salt, which only needs to be unique per context, not secret. An
// allocation failure inside the primitive is reported as a resource error
// distinct from generic operation failures.
func stretchKey(key, context []byte, p Argon2Params) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = kerrors.NewCryptoError(kerrors.CryptoResource,
				fmt.Errorf("memory-hard stretch aborted (memory cost %d KiB): %v", p.Memory, r))
		}
	}()
	out = argon2.IDKey(key, context, p.Time, p.Memory, p.Threads, p.KeyLen)
	return out, nil
}
