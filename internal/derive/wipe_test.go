package derive

import "testing"

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestWipe(t *testing.T) {
	b := []byte("sensitive material")
	Wipe(b)
	if !allZero(b) {
		t.Errorf("buffer not zeroed: %v", b)
	}

	// Nil and empty buffers are fine.
	Wipe(nil)
	Wipe([]byte{})
}

func TestScrub_WipeAll(t *testing.T) {
	s := &scrub{}
	a := s.track([]byte("first secret"))
	b := s.track([]byte("second secret"))

	s.wipeAll()

	if !allZero(a) || !allZero(b) {
		t.Error("tracked buffers not zeroed")
	}

	// Calling again is harmless.
	s.wipeAll()
}

func TestScrub_TrackReturnsSameBuffer(t *testing.T) {
	s := &scrub{}
	in := []byte{1, 2, 3}
	out := s.track(in)
	if &in[0] != &out[0] {
		t.Error("track must return the buffer it was given")
	}
}

func TestNormalize_BuffersWipedAfterRelease(t *testing.T) {
	buffers := &scrub{}
	master, context, err := normalize(validInput(), buffers)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(master) == 0 || len(context) == 0 {
		t.Fatal("expected non-empty master and context")
	}

	buffers.wipeAll()

	if !allZero(master) {
		t.Error("master key material not zeroed")
	}
	if !allZero(context) {
		t.Error("context buffer not zeroed")
	}
	for i, b := range buffers.bufs {
		if !allZero(b) {
			t.Errorf("tracked buffer %d not zeroed", i)
		}
	}
}
