package varint

import "math/bits"

// AppendSuffixVarint appends the suffix-varint encoding of v to buf.
//
// It is the mirror image of AppendPrefixVarint: the marker byte (the one
// whose trailing-zero count carries the length) is written LAST instead of
// first, and the value bytes that would follow it in the prefix form are
// written BEFORE it here, in the same order they'd be read. This lets a
// reader positioned at the end of a buffer consume one suffix varint by
// walking backward without first knowing where it starts.
//
// The lens stream is built entirely from suffix varints appended back to
// back, so that the decoder — which parses the tag tree forward from byte 0
// — can peel column lengths off the tail in the order it discovers columns.
func AppendSuffixVarint(buf []byte, v uint64) []byte {
	l := prefixLen(v)
	if l == 9 {
		for i := 7; i >= 0; i-- {
			buf = append(buf, byte(v>>(8*i)))
		}

		return append(buf, 0)
	}

	valueBits := 8 - l
	marker := byte(1) << (l - 1)
	low := byte(v<<l) | marker

	rest := v >> valueBits
	for i := l - 2; i >= 0; i-- {
		buf = append(buf, byte(rest>>(8*i)))
	}

	return append(buf, low)
}

// SizeOfSuffixVarint returns the number of bytes AppendSuffixVarint would
// write for v.
func SizeOfSuffixVarint(v uint64) int {
	return prefixLen(v)
}

// ReadSuffixVarintFromEnd decodes the suffix varint ending at data[end-1]
// (i.e. immediately before position end), reading backward.
//
// Returns the decoded value, the number of bytes consumed (so the caller's
// next read should end at end-n), and true on success.
func ReadSuffixVarintFromEnd(data []byte, end int) (v uint64, n int, ok bool) {
	if end <= 0 || end > len(data) {
		return 0, 0, false
	}

	marker := data[end-1]
	tz := bits.TrailingZeros8(marker)
	if tz == 8 {
		if end < 9 {
			return 0, 0, false
		}

		for i := range 8 {
			v |= uint64(data[end-2-i]) << (8 * i)
		}

		return v, 9, true
	}

	l := tz + 1
	if end < l {
		return 0, 0, false
	}

	valueBits := 8 - l
	low := uint64(marker) >> l

	var high uint64
	for i := 0; i < l-1; i++ {
		high |= uint64(data[end-2-i]) << (8 * i)
	}

	v = low | (high << valueBits)

	return v, l, true
}
