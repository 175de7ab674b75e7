package column

import (
	"github.com/axiomhq/fsst"

	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// String columns store one byte buffer plus a per-string prefix-varint
// length (Utf8), or the same shape built on an FSST-compressed symbol table
// (Utf8Fsst), which wins on columns with heavy substring repetition (the
// teacher's own tag names, field identifiers, and label-like text).
//
// Grounded on the teacher's encoding/tag.go TagEncoder/TagDecoder
// (length-prefixed UTF-8 strings), with the length prefix switched from
// binary.PutUvarint/Uvarint to this module's prefix-varint scheme; Utf8Fsst
// is new, wired to github.com/axiomhq/fsst as the domain-stack extension
// for the String column kind.

// EncodeUtf8 appends each string's prefix-varint length then its bytes.
// Unconditionally infallible.
func EncodeUtf8(values []string) []byte {
	buf := make([]byte, 0, len(values)*4)
	for _, s := range values {
		buf = varint.AppendPrefixVarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	}

	return buf
}

// SizeOfUtf8 computes the exact encoded size without encoding.
func SizeOfUtf8(values []string) int {
	size := 0
	for _, s := range values {
		size += varint.SizeOfPrefixVarint(uint64(len(s))) + len(s)
	}

	return size
}

// DecodeUtf8 decodes count strings from data.
func DecodeUtf8(data []byte, count int) ([]string, bool) {
	out := make([]string, count)
	off := 0
	for i := range count {
		l, n, ok := varint.ReadPrefixVarint(data[off:])
		if !ok {
			return nil, false
		}
		off += n
		if off+int(l) > len(data) {
			return nil, false
		}
		out[i] = string(data[off : off+int(l)])
		off += int(l)
	}

	return out, true
}

// EncodeUtf8Fsst trains an FSST table over values and encodes each string
// as its compressed byte sequence, prefix-varint length first. Fails
// (ok=false) on an empty column — fsst.Train needs at least one input to
// build a table.
func EncodeUtf8Fsst(values []string) ([]byte, bool) {
	if len(values) == 0 {
		return nil, false
	}

	joined := make([][]byte, len(values))
	for i, s := range values {
		joined[i] = []byte(s)
	}

	table := fsst.Train(joined)

	tableBytes, err := table.MarshalBinary()
	if err != nil {
		return nil, false
	}

	buf := varint.AppendPrefixVarint(nil, uint64(len(tableBytes)))
	buf = append(buf, tableBytes...)

	for _, s := range joined {
		enc := table.EncodeAll(s)
		buf = varint.AppendPrefixVarint(buf, uint64(len(enc)))
		buf = append(buf, enc...)
	}

	return buf, true
}

// DecodeUtf8Fsst decodes count strings from a Utf8Fsst payload.
func DecodeUtf8Fsst(data []byte, count int) ([]string, bool) {
	tableLen, n, ok := varint.ReadPrefixVarint(data)
	if !ok || len(data) < n+int(tableLen) {
		return nil, false
	}
	tableBytes := data[n : n+int(tableLen)]
	data = data[n+int(tableLen):]

	var table fsst.Table
	if err := table.UnmarshalBinary(tableBytes); err != nil {
		return nil, false
	}

	out := make([]string, count)
	for i := range count {
		l, ln, ok := varint.ReadPrefixVarint(data)
		if !ok || len(data) < ln+int(l) {
			return nil, false
		}
		data = data[ln:]
		out[i] = string(table.DecodeAll(data[:l]))
		data = data[l:]
	}

	return out, true
}

// SelectString runs the candidate-selection procedure over the String
// column encodings.
func SelectString(values []string) (wiretag.ArrayTypeId, []byte) {
	return selectString(values, false)
}

// selectStringNested is SelectString for a head sub-column of an RLE
// wrapper; it refuses the RLE candidate so RLE never nests inside RLE.
func selectStringNested(values []string) (wiretag.ArrayTypeId, []byte) {
	return selectString(values, true)
}

func selectString(values []string, nestedInRLE bool) (wiretag.ArrayTypeId, []byte) {
	candidates := []Candidate[string]{
		{
			Name:     "utf8",
			FastSize: func(sample []string) (int, bool) { return SizeOfUtf8(sample), true },
			Encode:   func(values []string) ([]byte, bool) { return EncodeUtf8(values), true },
		},
		{
			Name:   "utf8fsst",
			Encode: EncodeUtf8Fsst,
		},
		{
			Name:   "rle",
			Encode: func(values []string) ([]byte, bool) { return EncodeRLEString(values, nestedInRLE) },
		},
		{
			Name:   "dictionary",
			Encode: EncodeDictionaryString,
		},
	}

	idx, payload := Select(values, candidates)

	tags := []wiretag.ArrayTypeId{wiretag.AUtf8, wiretag.AUtf8Fsst, wiretag.ARLE, wiretag.ADictionary}

	return tags[idx], payload
}

// DecodeString dispatches to the String candidate decoder named by tag.
// Exported for the decoder package's array-context column reads.
func DecodeString(tag wiretag.ArrayTypeId, data []byte, count int) ([]string, bool) {
	return decodeStringColumn(tag, data, count)
}

// decodeStringColumn dispatches to the String candidate decoder named by
// tag. Used by meta-encodings (RLE, Dictionary) that nest a String column.
func decodeStringColumn(tag wiretag.ArrayTypeId, data []byte, count int) ([]string, bool) {
	switch tag {
	case wiretag.AUtf8:
		return DecodeUtf8(data, count)
	case wiretag.AUtf8Fsst:
		return DecodeUtf8Fsst(data, count)
	case wiretag.ARLE:
		return DecodeRLEString(data, count)
	case wiretag.ADictionary:
		return DecodeDictionaryString(data, count)
	default:
		return nil, false
	}
}
