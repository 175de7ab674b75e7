// Package varint implements the two variable-length integer codecs used by
// the wire format: prefix varint (forward-read, used for tag-tree counts and
// lengths) and suffix varint (reverse-read, used only for the lens stream).
//
// Both operate on u64 and are distinct from the LEB128 scheme in
// encoding/binary: the length of the encoding is carried by the position of
// the first set bit in a single marker byte, rather than a continuation bit
// repeated in every byte.
package varint

import "math/bits"

// MaxLen is the largest number of bytes a prefix or suffix varint can occupy.
const MaxLen = 9

// prefixLen returns the number of bytes (1..9) needed to hold v under the
// prefix-varint scheme: L bytes carry 7*L value bits for L in 1..8, and the
// 9-byte form carries a full raw 64-bit value.
func prefixLen(v uint64) int {
	for l := 1; l <= 8; l++ {
		if v <= (uint64(1)<<(7*l))-1 {
			return l
		}
	}

	return 9
}

// AppendPrefixVarint appends the prefix-varint encoding of v to buf and
// returns the extended slice.
//
// Encoding: for a chosen length L in 1..8, the first byte has its lowest L-1
// bits clear and bit L-1 set (so its trailing-zero count equals L-1); the
// remaining 8-L bits of that byte and the following L-1 bytes (little-endian)
// hold the value. L=9 is signaled by a first byte of 0x00, followed by the
// full 64-bit value in 8 little-endian bytes.
func AppendPrefixVarint(buf []byte, v uint64) []byte {
	l := prefixLen(v)
	if l == 9 {
		buf = append(buf, 0)
		for i := range 8 {
			buf = append(buf, byte(v>>(8*i)))
		}

		return buf
	}

	valueBits := 8 - l
	marker := byte(1) << (l - 1)
	low := byte(v<<l) | marker
	buf = append(buf, low)

	rest := v >> valueBits
	for i := 0; i < l-1; i++ {
		buf = append(buf, byte(rest>>(8*i)))
	}

	return buf
}

// SizeOfPrefixVarint returns the number of bytes AppendPrefixVarint would
// write for v, without writing them.
func SizeOfPrefixVarint(v uint64) int {
	return prefixLen(v)
}

// ReadPrefixVarint decodes a prefix varint starting at data[0].
//
// Returns the decoded value, the number of bytes consumed, and true on
// success. Returns ok=false if data is empty or shorter than the encoded
// length demands.
func ReadPrefixVarint(data []byte) (v uint64, n int, ok bool) {
	if len(data) == 0 {
		return 0, 0, false
	}

	tz := bits.TrailingZeros8(data[0])
	if tz == 8 {
		if len(data) < 9 {
			return 0, 0, false
		}

		for i := range 8 {
			v |= uint64(data[1+i]) << (8 * i)
		}

		return v, 9, true
	}

	l := tz + 1
	if len(data) < l {
		return 0, 0, false
	}

	valueBits := 8 - l
	low := uint64(data[0]) >> l

	var high uint64
	for i := 0; i < l-1; i++ {
		high |= uint64(data[1+i]) << (8 * i)
	}

	v = low | (high << valueBits)

	return v, l, true
}

// ZigZagEncode maps a signed integer to an unsigned one so that small
// magnitudes (positive or negative) stay small after varint encoding.
func ZigZagEncode(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}
