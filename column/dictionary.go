package column

import (
	"slices"

	"github.com/arloliu/colex/internal/hash"
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// Dictionary wraps a column as an indices column (one entry per original
// value, pointing into a distinct-values table) plus the distinct-values
// column itself, each of which recursively re-selects its own Integer or
// String candidate. Refused when every value is already distinct (indices
// would just be the identity permutation, strictly larger than the source).
// The Integer wrapper is also refused when the column is already its own
// first-appearance numbering (0, then each new value one more than the
// largest so far): its indices column would equal the input, and
// re-selecting a candidate for it would recurse without end.
//
// Wired for Integer and Utf8, the same scoping as RLE (see rle.go);
// String's distinct-value table is built with internal/hash.ID buckets
// (xxhash) rather than a plain map, the way the teacher's own
// internal/collision package buckets metric names by hash before falling
// back to exact comparison — reused here for general string deduplication
// instead of metric-name collision tracking.

// EncodeDictionaryInteger attempts the Dictionary wrapper for an Integer
// column.
func EncodeDictionaryInteger(values []uint64) ([]byte, bool) {
	seen := make(map[uint64]int, len(values))
	var distinct []uint64
	indices := make([]uint64, len(values))

	for i, v := range values {
		idx, ok := seen[v]
		if !ok {
			idx = len(distinct)
			distinct = append(distinct, v)
			seen[v] = idx
		}
		indices[i] = uint64(idx)
	}

	if len(distinct) == len(values) || slices.Equal(indices, values) {
		return nil, false
	}

	valuesTag, valuesPayload := SelectInteger(distinct)
	indicesTag, indicesPayload := SelectInteger(indices)

	buf := varint.AppendPrefixVarint(nil, uint64(len(distinct)))
	buf = append(buf, byte(valuesTag))
	buf = varint.AppendPrefixVarint(buf, uint64(len(valuesPayload)))
	buf = append(buf, valuesPayload...)
	buf = append(buf, byte(indicesTag))
	buf = append(buf, indicesPayload...)

	return buf, true
}

// DecodeDictionaryInteger decodes count uint64 values from a Dictionary
// Integer payload.
func DecodeDictionaryInteger(data []byte, count int) ([]uint64, bool) {
	distinctCount, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	valuesTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	valuesLen, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	distinct, ok := decodeIntegerColumn(valuesTag, data[:valuesLen], int(distinctCount))
	if !ok {
		return nil, false
	}
	data = data[valuesLen:]

	indicesTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	indices, ok := decodeIntegerColumn(indicesTag, data, count)
	if !ok {
		return nil, false
	}

	out := make([]uint64, count)
	for i, idx := range indices {
		if int(idx) >= len(distinct) {
			return nil, false
		}
		out[i] = distinct[idx]
	}

	return out, true
}

// findOrAddDistinctString buckets a candidate distinct value by its xxhash
// digest; collisions are resolved by exact comparison within the bucket.
func findOrAddDistinctString(buckets map[uint64][]int, distinct []string, s string) (int, []string) {
	key := hash.ID(s)
	for _, idx := range buckets[key] {
		if distinct[idx] == s {
			return idx, distinct
		}
	}

	idx := len(distinct)
	distinct = append(distinct, s)
	buckets[key] = append(buckets[key], idx)

	return idx, distinct
}

// EncodeDictionaryString attempts the Dictionary wrapper for a Utf8 column.
func EncodeDictionaryString(values []string) ([]byte, bool) {
	buckets := make(map[uint64][]int, len(values))
	var distinct []string
	indices := make([]uint64, len(values))

	for i, s := range values {
		var idx int
		idx, distinct = findOrAddDistinctString(buckets, distinct, s)
		indices[i] = uint64(idx)
	}

	if len(distinct) == len(values) {
		return nil, false
	}

	valuesTag, valuesPayload := SelectString(distinct)
	indicesTag, indicesPayload := SelectInteger(indices)

	buf := varint.AppendPrefixVarint(nil, uint64(len(distinct)))
	buf = append(buf, byte(valuesTag))
	buf = varint.AppendPrefixVarint(buf, uint64(len(valuesPayload)))
	buf = append(buf, valuesPayload...)
	buf = append(buf, byte(indicesTag))
	buf = append(buf, indicesPayload...)

	return buf, true
}

// DecodeDictionaryString decodes count strings from a Dictionary Utf8
// payload.
func DecodeDictionaryString(data []byte, count int) ([]string, bool) {
	distinctCount, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	valuesTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	valuesLen, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	distinct, ok := decodeStringColumn(valuesTag, data[:valuesLen], int(distinctCount))
	if !ok {
		return nil, false
	}
	data = data[valuesLen:]

	indicesTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	indices, ok := decodeIntegerColumn(indicesTag, data, count)
	if !ok {
		return nil, false
	}

	out := make([]string, count)
	for i, idx := range indices {
		if int(idx) >= len(distinct) {
			return nil, false
		}
		out[i] = distinct[idx]
	}

	return out, true
}
