package derive

import (
	"bytes"
	"testing"
)

func TestExtractKey_Deterministic(t *testing.T) {
	master := []byte("pattern-color-coordinates")
	context := []byte("github.comalice.dev")

	a, err := extractKey(master, context, 0x01)
	if err != nil {
		t.Fatalf("extractKey failed: %v", err)
	}
	b, err := extractKey(master, context, 0x01)
	if err != nil {
		t.Fatalf("extractKey failed: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("extraction is not deterministic")
	}
	if len(a) != keySize {
		t.Errorf("key length = %d, want %d", len(a), keySize)
	}
}

func TestExtractKey_ContextSeparation(t *testing.T) {
	master := []byte("same visual secret")

	a, err := extractKey(master, []byte("github.comalice.dev"), 0x01)
	if err != nil {
		t.Fatalf("extractKey failed: %v", err)
	}
	b, err := extractKey(master, []byte("example.comalice.dev"), 0x01)
	if err != nil {
		t.Fatalf("extractKey failed: %v", err)
	}

	if bytes.Equal(a, b) {
		t.Error("different contexts must produce different keys")
	}
}

func TestExtractKey_VersionTag(t *testing.T) {
	master := []byte("same visual secret")
	context := []byte("github.comalice.dev")

	a, err := extractKey(master, context, 0x01)
	if err != nil {
		t.Fatalf("extractKey failed: %v", err)
	}
	b, err := extractKey(master, context, 0x02)
	if err != nil {
		t.Fatalf("extractKey failed: %v", err)
	}

	if bytes.Equal(a, b) {
		t.Error("different version tags must produce different keys")
	}
}

func TestStretchKey_Deterministic(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	context := []byte("github.comalice.dev")
	p := Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 32}

	a, err := stretchKey(key, context, p)
	if err != nil {
		t.Fatalf("stretchKey failed: %v", err)
	}
	b, err := stretchKey(key, context, p)
	if err != nil {
		t.Fatalf("stretchKey failed: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("stretch is not deterministic")
	}
	if len(a) != 32 {
		t.Errorf("stretched length = %d, want 32", len(a))
	}
}

func TestStretchKey_SaltSeparation(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	p := Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 32}

	a, err := stretchKey(key, []byte("github.comalice.dev"), p)
	if err != nil {
		t.Fatalf("stretchKey failed: %v", err)
	}
	b, err := stretchKey(key, []byte("github.combob.dev"), p)
	if err != nil {
		t.Fatalf("stretchKey failed: %v", err)
	}

	if bytes.Equal(a, b) {
		t.Error("different salts must produce different stretched keys")
	}
}
