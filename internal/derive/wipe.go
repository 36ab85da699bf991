package derive

// Wipe overwrites the buffer with zero bytes. Wiping is an invariant of
// every derivation exit path, not a garbage-collection hint: secret buffers
// are zeroed before the call returns, success or failure.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// scrub tracks the transient secret buffers of one in-flight derivation so
// a single deferred call can wipe all of them on any exit path.
type scrub struct {
	bufs [][]byte
}

// track registers a buffer for release-time wiping and returns it unchanged.
func (s *scrub) track(b []byte) []byte {
	s.bufs = append(s.bufs, b)
	return b
}

// wipeAll zeroes every tracked buffer. Safe to call more than once;
// re-zeroing an already wiped buffer is a no-op.
func (s *scrub) wipeAll() {
	for _, b := range s.bufs {
		Wipe(b)
	}
}
