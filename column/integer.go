package column

import (
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// Integer columns carry zigzag-mapped uint64 values — callers zigzag-encode
// signed values before reaching this package, so every candidate here only
// ever sees unsigned magnitudes.
//
// Grounded on the teacher's encoding/ts_delta.go TimestampDeltaEncoder (the
// zigzag-then-varint idiom) and encoding/tag.go's varintLen fast-size path,
// generalized from one fixed pipeline (delta-of-delta + zigzag + LEB128) to
// a set of interchangeable candidates, since the wire format has no delta
// chaining and uses a custom prefix-varint rather than encoding/binary's
// LEB128.

// EncodePrefixVarIntColumn appends the prefix-varint encoding of each value
// in order. This candidate is unconditionally infallible.
func EncodePrefixVarIntColumn(values []uint64) []byte {
	buf := make([]byte, 0, len(values)*2)
	for _, v := range values {
		buf = varint.AppendPrefixVarint(buf, v)
	}

	return buf
}

// SizeOfPrefixVarIntColumn computes the exact encoded size without encoding.
func SizeOfPrefixVarIntColumn(values []uint64) int {
	size := 0
	for _, v := range values {
		size += varint.SizeOfPrefixVarint(v)
	}

	return size
}

// DecodePrefixVarIntColumn decodes count values from data.
func DecodePrefixVarIntColumn(data []byte, count int) ([]uint64, bool) {
	out := make([]uint64, count)
	off := 0
	for i := range count {
		v, n, ok := varint.ReadPrefixVarint(data[off:])
		if !ok {
			return nil, false
		}
		out[i] = v
		off += n
	}

	return out, true
}

// EncodeU8FixedColumn packs values one byte each. Fails if any value doesn't
// fit in a byte.
func EncodeU8FixedColumn(values []uint64) ([]byte, bool) {
	buf := make([]byte, len(values))
	for i, v := range values {
		if v > 0xFF {
			return nil, false
		}
		buf[i] = byte(v)
	}

	return buf, true
}

// DecodeU8FixedColumn decodes count single-byte values from data.
func DecodeU8FixedColumn(data []byte, count int) ([]uint64, bool) {
	if len(data) < count {
		return nil, false
	}
	out := make([]uint64, count)
	for i := range count {
		out[i] = uint64(data[i])
	}

	return out, true
}

// SelectInteger runs the candidate-selection procedure over the Integer
// column encodings and returns the winning wire tag and payload.
func SelectInteger(values []uint64) (wiretag.ArrayTypeId, []byte) {
	return selectInteger(values, false)
}

// selectIntegerNested is SelectInteger for a column that is itself a run or
// head sub-column of an RLE wrapper; it refuses the RLE candidate so RLE
// never nests inside RLE.
func selectIntegerNested(values []uint64) (wiretag.ArrayTypeId, []byte) {
	return selectInteger(values, true)
}

func selectInteger(values []uint64, nestedInRLE bool) (wiretag.ArrayTypeId, []byte) {
	candidates := []Candidate[uint64]{
		{
			Name: "u8fixed",
			FastSize: func(sample []uint64) (int, bool) {
				for _, v := range sample {
					if v > 0xFF {
						return 0, false
					}
				}

				return len(sample), true
			},
			Encode: EncodeU8FixedColumn,
		},
		{
			Name: "simple16",
			Encode: func(values []uint64) ([]byte, bool) {
				return EncodeSimple16Column(values)
			},
		},
		{
			Name:     "prefixvarint",
			FastSize: func(sample []uint64) (int, bool) { return SizeOfPrefixVarIntColumn(sample), true },
			Encode:   func(values []uint64) ([]byte, bool) { return EncodePrefixVarIntColumn(values), true },
		},
		{
			Name:   "rle",
			Encode: func(values []uint64) ([]byte, bool) { return EncodeRLEInteger(values, nestedInRLE) },
		},
		{
			Name:   "dictionary",
			Encode: EncodeDictionaryInteger,
		},
	}

	idx, payload := Select(values, candidates)

	tags := []wiretag.ArrayTypeId{
		wiretag.AIntU8Fixed, wiretag.AIntSimple16, wiretag.AIntPrefixVar,
		wiretag.ARLE, wiretag.ADictionary,
	}

	return tags[idx], payload
}

// DecodeInteger dispatches to the Integer candidate decoder named by tag.
// Exported for the decoder package's array-context column reads.
func DecodeInteger(tag wiretag.ArrayTypeId, data []byte, count int) ([]uint64, bool) {
	return decodeIntegerColumn(tag, data, count)
}

// decodeIntegerColumn dispatches to the Integer candidate decoder named by
// tag. Used by meta-encodings (RLE, Dictionary) that nest an Integer column.
func decodeIntegerColumn(tag wiretag.ArrayTypeId, data []byte, count int) ([]uint64, bool) {
	switch tag {
	case wiretag.AIntU8Fixed:
		return DecodeU8FixedColumn(data, count)
	case wiretag.AIntSimple16:
		return DecodeSimple16Column(data, count)
	case wiretag.AIntPrefixVar:
		return DecodePrefixVarIntColumn(data, count)
	case wiretag.ARLE:
		return DecodeRLEInteger(data, count)
	case wiretag.ADictionary:
		return DecodeDictionaryInteger(data, count)
	default:
		return nil, false
	}
}
