package column

import (
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// RLE wraps a column in two sub-columns: a runs column of run-length-minus-1
// Integer values, and a values column of one run head per run, which
// recursively re-selects its own candidate. A column already inside an RLE
// wrapper never nests another RLE (nestedInRLE below): the caller threads
// that flag explicitly rather than consulting package state, matching the
// explicit-parameter approach spec'd for this format (see DESIGN.md — the
// teacher's own RLE-adjacent logic instead keyed off a single thread-local
// flag).
//
// This repository wires RLE concretely for the Integer and Utf8 column
// kinds, the two kinds spec's own worked scenarios exercise (repeated
// status codes, repeated log-level strings); Boolean has its own dedicated
// RLEBool candidate (boolean.go) and Float/other kinds are not offered an
// RLE wrapper — see DESIGN.md for the scoping rationale.

// runsAndHeads splits values into run lengths (minus 1) and one head value
// per run.
func runsAndHeadsInt(values []uint64) (runs []uint64, heads []uint64) {
	i := 0
	for i < len(values) {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}
		runs = append(runs, uint64(j-i-1))
		heads = append(heads, values[i])
		i = j
	}

	return runs, heads
}

func runsAndHeadsString(values []string) (runs []uint64, heads []string) {
	i := 0
	for i < len(values) {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}
		runs = append(runs, uint64(j-i-1))
		heads = append(heads, values[i])
		i = j
	}

	return runs, heads
}

// EncodeRLEInteger attempts the RLE wrapper for an Integer column. Returns
// ok=false when nestedInRLE is true, or when there are no repeats to
// exploit (one run per value).
func EncodeRLEInteger(values []uint64, nestedInRLE bool) ([]byte, bool) {
	if nestedInRLE {
		return nil, false
	}

	runs, heads := runsAndHeadsInt(values)
	if len(runs) == len(values) {
		return nil, false
	}

	runTag, runPayload := selectIntegerNested(runs)
	headTag, headPayload := selectIntegerNested(heads)

	buf := varint.AppendPrefixVarint(nil, uint64(len(runs)))
	buf = append(buf, byte(runTag))
	buf = varint.AppendPrefixVarint(buf, uint64(len(runPayload)))
	buf = append(buf, runPayload...)
	buf = append(buf, byte(headTag))
	buf = append(buf, headPayload...)

	return buf, true
}

// DecodeRLEInteger decodes count uint64 values from an RLE Integer payload.
func DecodeRLEInteger(data []byte, count int) ([]uint64, bool) {
	runCount, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	runTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	runPayloadLen, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	runs, ok := decodeIntegerColumn(runTag, data[:runPayloadLen], int(runCount))
	if !ok {
		return nil, false
	}
	data = data[runPayloadLen:]

	headTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	heads, ok := decodeIntegerColumn(headTag, data, int(runCount))
	if !ok {
		return nil, false
	}

	out := make([]uint64, 0, count)
	for i, r := range runs {
		runLen := int(r) + 1
		for j := 0; j < runLen; j++ {
			out = append(out, heads[i])
		}
	}
	if len(out) != count {
		return nil, false
	}

	return out, true
}

// EncodeRLEString attempts the RLE wrapper for a Utf8 column.
func EncodeRLEString(values []string, nestedInRLE bool) ([]byte, bool) {
	if nestedInRLE {
		return nil, false
	}

	runs, heads := runsAndHeadsString(values)
	if len(runs) == len(values) {
		return nil, false
	}

	runTag, runPayload := selectIntegerNested(runs)
	headTag, headPayload := selectStringNested(heads)

	buf := varint.AppendPrefixVarint(nil, uint64(len(runs)))
	buf = append(buf, byte(runTag))
	buf = varint.AppendPrefixVarint(buf, uint64(len(runPayload)))
	buf = append(buf, runPayload...)
	buf = append(buf, byte(headTag))
	buf = append(buf, headPayload...)

	return buf, true
}

// DecodeRLEString decodes count strings from an RLE Utf8 payload.
func DecodeRLEString(data []byte, count int) ([]string, bool) {
	runCount, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	runTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	runPayloadLen, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	data = data[n:]

	runs, ok := decodeIntegerColumn(runTag, data[:runPayloadLen], int(runCount))
	if !ok {
		return nil, false
	}
	data = data[runPayloadLen:]

	headTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	heads, ok := decodeStringColumn(headTag, data, int(runCount))
	if !ok {
		return nil, false
	}

	out := make([]string, 0, count)
	for i, r := range runs {
		runLen := int(r) + 1
		for j := 0; j < runLen; j++ {
			out = append(out, heads[i])
		}
	}
	if len(out) != count {
		return nil, false
	}

	return out, true
}
