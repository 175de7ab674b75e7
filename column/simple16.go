package column

import "encoding/binary"

// Simple16 bit-packs runs of small integers into 32-bit little-endian words:
// the low 4 bits of the word select one of 16 (count, bits) layouts, and the
// remaining 28 bits hold that many count-many bits-wide values, packed
// LSB-first starting at bit 4.
//
// No example in the retrieval pack implements Simple16 (the teacher's
// integer columns are raw fixed-width or delta+LEB128-varint, never
// bit-packed); this table is this repository's own commitment, chosen to
// degrade gracefully from 28 one-bit values (selector 0) down to a single
// 28-bit value (selector 15). Not every layout fills all 28 payload bits:
// {1,16} leaves 12 unused and {2,10} leaves 8.
var simple16Layouts = [16]struct {
	count int
	bits  int
}{
	{28, 1}, {14, 2}, {9, 3}, {7, 4}, {5, 5}, {4, 6}, {4, 7}, {3, 8},
	{3, 9}, {2, 10}, {2, 12}, {2, 14}, {1, 16}, {1, 18}, {1, 21}, {1, 28},
}

// EncodeSimple16Column packs values into 32-bit Simple16 words. Fails if any
// value doesn't fit in 28 bits, the widest single-value layout.
func EncodeSimple16Column(values []uint64) ([]byte, bool) {
	buf := make([]byte, 0, len(values))

	for i := 0; i < len(values); {
		remaining := values[i:]

		selector := -1
		for s, layout := range simple16Layouts {
			n := layout.count
			if n > len(remaining) {
				n = len(remaining)
			}
			if n == 0 {
				continue
			}
			if fitsLayout(remaining[:n], layout.bits) {
				selector = s

				break
			}
		}

		if selector < 0 {
			return nil, false
		}

		layout := simple16Layouts[selector]
		n := layout.count
		if n > len(remaining) {
			n = len(remaining)
		}

		word := uint32(selector)
		shift := uint(4)
		for _, v := range remaining[:n] {
			word |= uint32(v) << shift
			shift += uint(layout.bits)
		}

		var wordBuf [4]byte
		binary.LittleEndian.PutUint32(wordBuf[:], word)
		buf = append(buf, wordBuf[:]...)

		i += n
	}

	return buf, true
}

// fitsLayout reports whether every value in group fits in bits. It does not
// look at the group's length: the caller offers min(layout.count, remaining)
// values, so a partial trailing group at the end of the column may use
// fewer than layout.count values.
func fitsLayout(group []uint64, bits int) bool {
	max := uint64(1)<<uint(bits) - 1
	for _, v := range group {
		if v > max {
			return false
		}
	}

	return true
}

// DecodeSimple16Column decodes count values from data.
func DecodeSimple16Column(data []byte, count int) ([]uint64, bool) {
	out := make([]uint64, 0, count)

	for len(out) < count {
		if len(data) < 4 {
			return nil, false
		}
		word := binary.LittleEndian.Uint32(data)
		data = data[4:]

		selector := word & 0xF
		if selector >= 16 {
			return nil, false
		}
		layout := simple16Layouts[selector]

		n := layout.count
		if count-len(out) < n {
			n = count - len(out)
		}

		mask := uint32(1)<<uint(layout.bits) - 1
		shift := uint(4)
		for j := 0; j < n; j++ {
			v := (word >> shift) & mask
			out = append(out, uint64(v))
			shift += uint(layout.bits)
		}
	}

	return out, true
}
