package column

import (
	"math"
	"math/bits"
)

// EncodeGorillaF64 implements the Gorilla-style XOR delta encoding for a
// column of float64 values: the first value is stored raw; each later value
// is XORed against its predecessor and the result's leading/trailing zero
// window is encoded, reusing the previous window when it still covers the
// new XOR.
//
// Grounded on the teacher's internal/encoding/numeric_gorilla.go algorithm
// (bit-level XOR delta with a reuse-previous-window fast path); the bit
// writer here (bitio.go) is a smaller reimplementation of that file's
// bitReader/bit-buffer pairing, generalized so Gorilla can sit under any
// Float-kind column position instead of only a hardcoded "value" column.
func EncodeGorillaF64(values []float64) []byte {
	if len(values) == 0 {
		return nil
	}

	w := &bitWriter{}

	prev := math.Float64bits(values[0])
	w.writeBits(prev, 64)

	prevLeading, prevTrailing := -1, -1

	for _, f := range values[1:] {
		cur := math.Float64bits(f)
		xor := prev ^ cur

		if xor == 0 {
			w.writeBit(0)
			prev = cur

			continue
		}

		w.writeBit(1)

		leading := bits.LeadingZeros64(xor)
		if leading > 31 {
			// The new-window header stores leading zeros in 5 bits (0..31);
			// clamp so values with more leading zeros than that still
			// encode correctly, just with a few redundant zero bits folded
			// into the "significant" window instead of being elided.
			leading = 31
		}
		trailing := bits.TrailingZeros64(xor)

		if prevLeading >= 0 && leading >= prevLeading && trailing >= prevTrailing {
			// Reuse previous window.
			w.writeBit(0)
			significant := 64 - prevLeading - prevTrailing
			w.writeBits(xor>>uint(prevTrailing), significant)
		} else {
			w.writeBit(1)
			significant := 64 - leading - trailing
			w.writeBits(uint64(leading), 5)
			w.writeBits(uint64(significant-1), 6)
			w.writeBits(xor>>uint(trailing), significant)

			prevLeading, prevTrailing = leading, trailing
		}

		prev = cur
	}

	return w.finish()
}

// DecodeGorillaF64 decodes count float64 values from data produced by
// EncodeGorillaF64.
func DecodeGorillaF64(data []byte, count int) ([]float64, bool) {
	if count == 0 {
		return nil, true
	}

	r := newBitReader(data)

	first, ok := r.readBits(64)
	if !ok {
		return nil, false
	}

	out := make([]float64, count)
	out[0] = math.Float64frombits(first)

	prev := first
	prevLeading, prevTrailing := -1, -1

	for i := 1; i < count; i++ {
		bit, ok := r.readBit()
		if !ok {
			return nil, false
		}

		if bit == 0 {
			out[i] = math.Float64frombits(prev)

			continue
		}

		control, ok := r.readBit()
		if !ok {
			return nil, false
		}

		var leading, trailing, significant int
		if control == 0 {
			if prevLeading < 0 {
				return nil, false
			}
			leading, trailing = prevLeading, prevTrailing
			significant = 64 - leading - trailing
		} else {
			lz, ok := r.readBits(5)
			if !ok {
				return nil, false
			}
			sb, ok := r.readBits(6)
			if !ok {
				return nil, false
			}
			leading = int(lz)
			significant = int(sb) + 1
			trailing = 64 - leading - significant
			prevLeading, prevTrailing = leading, trailing
		}

		bits, ok := r.readBits(significant)
		if !ok {
			return nil, false
		}

		xor := bits << uint(trailing)
		cur := prev ^ xor
		out[i] = math.Float64frombits(cur)
		prev = cur
	}

	return out, true
}
