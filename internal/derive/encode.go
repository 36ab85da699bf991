package derive

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	kerrors "github.com/sightkey/sightkey/internal/errors"
)

// Coordinates is an optional geographic point mixed into the key material.
// An absent location defaults to (0, 0) and still contributes fixed bytes,
// so derivation stays deterministic with or without a location choice.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// encodeField canonicalizes one field of a VisualInput into bytes. The
// dispatch is a closed set: text, single number, numeric sequence,
// coordinates, or absent. Anything else is rejected, never coerced, because
// silent coercion of unexpected types would threaten determinism.
func encodeField(v any) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return []byte{}, nil
	case string:
		return encodeText(v), nil
	case float64:
		return encodeNumber(v), nil
	case []int:
		return encodePattern(v), nil
	case Coordinates:
		return encodeCoordinates(v), nil
	case *Coordinates:
		if v == nil {
			return []byte{}, nil
		}
		return encodeCoordinates(*v), nil
	default:
		return nil, fmt.Errorf("%w: %T", kerrors.ErrUnsupportedInputKind, v)
	}
}

// encodeText returns the exact UTF-8 bytes of s. No case folding or
// whitespace normalization; callers canonicalize upstream.
func encodeText(s string) []byte {
	return []byte(s)
}

// encodeNumber encodes a single number as an 8-byte big-endian IEEE-754
// double, so fractional coordinates keep full precision.
func encodeNumber(f float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(f))
	return buf
}

// encodePattern serializes each point identifier in the sequence's given
// order, one byte per element modulo 256.
func encodePattern(p []int) []byte {
	buf := make([]byte, len(p))
	for i, v := range p {
		buf[i] = byte(v)
	}
	return buf
}

// encodeCoordinates serializes a coordinate pair in a canonical
// field-ordered textual form. Non-finite components cannot be represented
// canonically and degrade to an empty buffer; range validation has already
// rejected malformed coordinates before this stage.
func encodeCoordinates(c Coordinates) []byte {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) {
		return []byte{}
	}
	s := `{"latitude":` + strconv.FormatFloat(c.Latitude, 'g', -1, 64) +
		`,"longitude":` + strconv.FormatFloat(c.Longitude, 'g', -1, 64) + `}`
	return []byte(s)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
