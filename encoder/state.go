package encoder

import (
	"github.com/arloliu/colex/endian"
	"github.com/arloliu/colex/varint"
)

// state accumulates the main buffer and the lens stream during one encode.
//
// Lens entries are recorded in column-discovery order, then emitted in
// REVERSE when finalize concatenates the suffix-varint tail: a decoder
// parsing the tag tree forward discovers columns in the same order this
// state discovered them, and reads the tail backward one suffix varint at a
// time, so the tail must hold the first-discovered column's length closest
// to the very end of the buffer.
type state struct {
	main []byte
	lens []uint64

	// lossyFloatTolerance mirrors Options.LossyFloatTolerance for the
	// duration of one encode; zero disables the Zfp32/Zfp64 candidates.
	lossyFloatTolerance float64
}

var littleEndian = endian.GetLittleEndianEngine()

func (s *state) writeByte(b byte) {
	s.main = append(s.main, b)
}

func (s *state) writeBytes(b []byte) {
	s.main = append(s.main, b...)
}

func (s *state) writeCount(n int) {
	s.main = varint.AppendPrefixVarint(s.main, uint64(n))
}

// recordLen appends n to the lens stream; call exactly once per flushed
// primitive column.
func (s *state) recordLen(n int) {
	s.lens = append(s.lens, uint64(n))
}

// finalize appends the suffix-varint lens tail to the main buffer and
// returns the complete wire-format byte slice.
func (s *state) finalize() []byte {
	tail := make([]byte, 0, len(s.lens)*2)
	for i := len(s.lens) - 1; i >= 0; i-- {
		tail = varint.AppendSuffixVarint(tail, s.lens[i])
	}

	return append(s.main, tail...)
}

// writeIdent writes a canonicalized identifier using the same inline string
// encoding as any root-context string value (Scenario B: field headers are
// ordinary string values, not a distinct wire shape).
func (s *state) writeIdent(name string) {
	encodeRootString(s, name)
}
