package column

import (
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// Boolean columns have two candidates: PackedBoolean (8 values/byte,
// LSB-first, zero-padded last byte) and RLEBool (a starting value plus a
// run-length-minus-1 Integer column), the latter only worth trying when the
// column is long enough and actually has runs to exploit.
//
// Grounded on the teacher's tag.go/columnar.go bit-packing conventions
// generalized to bool; RLEBool's "runs column re-selects an Integer
// candidate" shape mirrors the RLE meta-encoding in rle.go.

// EncodePackedBoolean packs values 8 per byte, LSB-first, zero-padding the
// final partial byte. Unconditionally infallible.
func EncodePackedBoolean(values []bool) []byte {
	buf := make([]byte, (len(values)+7)/8)
	for i, v := range values {
		if v {
			buf[i/8] |= 1 << uint(i%8)
		}
	}

	return buf
}

// DecodePackedBoolean decodes count bools from data.
func DecodePackedBoolean(data []byte, count int) ([]bool, bool) {
	if len(data) < (count+7)/8 {
		return nil, false
	}
	out := make([]bool, count)
	for i := range count {
		out[i] = data[i/8]&(1<<uint(i%8)) != 0
	}

	return out, true
}

// rleBoolMinLen is the minimum column length at which RLEBool is even
// attempted (spec: "chosen only when length >= 25 and at least one run
// saves space").
const rleBoolMinLen = 25

// encodeRLEBoolRuns returns the starting value and the run lengths (each
// run length stored as runLength-1, since a run is always at least 1 long).
func encodeRLEBoolRuns(values []bool) (start bool, runs []uint64) {
	start = values[0]
	cur := start
	runLen := uint64(0)
	for _, v := range values {
		if v == cur {
			runLen++

			continue
		}
		runs = append(runs, runLen-1)
		cur = v
		runLen = 1
	}
	runs = append(runs, runLen-1)

	return start, runs
}

// EncodeRLEBool attempts the RLEBool candidate. Fails (ok=false) when the
// column is too short, or when the run-length encoding plus selected
// Integer candidate for the runs would not be smaller than PackedBoolean.
// The starting value is carried by the returned tag (ARLEBoolTrue or
// ARLEBoolFalse) rather than a payload byte; the payload is the run count
// as a prefix varint, the chosen run-column Integer tag, then its payload.
func EncodeRLEBool(values []bool) (tag wiretag.ArrayTypeId, payload []byte, ok bool) {
	if len(values) < rleBoolMinLen {
		return 0, nil, false
	}

	start, runs := encodeRLEBoolRuns(values)

	runTag, runPayload := SelectInteger(runs)

	packedLen := (len(values) + 7) / 8
	if len(runPayload)+2 >= packedLen {
		return 0, nil, false
	}

	startTag := wiretag.ARLEBoolFalse
	if start {
		startTag = wiretag.ARLEBoolTrue
	}

	buf := varint.AppendPrefixVarint(nil, uint64(len(runs)))
	buf = append(buf, byte(runTag))
	buf = append(buf, runPayload...)

	return startTag, buf, true
}

// DecodeRLEBool decodes count bools from an RLEBool payload, given the
// starting value carried by the tag (startTag == ARLEBoolTrue).
func DecodeRLEBool(start bool, data []byte, count int) ([]bool, bool) {
	runCount, n, ok := varint.ReadPrefixVarint(data)
	if !ok || len(data) < n+1 {
		return nil, false
	}
	data = data[n:]

	runTag := wiretag.ArrayTypeId(data[0])
	data = data[1:]

	runs, ok := decodeIntegerColumn(runTag, data, int(runCount))
	if !ok {
		return nil, false
	}

	out := make([]bool, 0, count)
	cur := start
	for _, r := range runs {
		runLen := int(r) + 1
		for j := 0; j < runLen; j++ {
			out = append(out, cur)
		}
		cur = !cur
	}

	if len(out) != count {
		return nil, false
	}

	return out, true
}

// DecodeBoolean dispatches to the Boolean candidate decoder named by tag.
func DecodeBoolean(tag wiretag.ArrayTypeId, data []byte, count int) ([]bool, bool) {
	switch tag {
	case wiretag.APackedBoolean:
		return DecodePackedBoolean(data, count)
	case wiretag.ARLEBoolTrue:
		return DecodeRLEBool(true, data, count)
	case wiretag.ARLEBoolFalse:
		return DecodeRLEBool(false, data, count)
	default:
		return nil, false
	}
}

// SelectBoolean runs PackedBoolean unconditionally and RLEBool only when the
// length threshold is met, returning whichever is smaller (RLEBool ties go
// to PackedBoolean since it decodes with no indirection).
func SelectBoolean(values []bool) (wiretag.ArrayTypeId, []byte) {
	packed := EncodePackedBoolean(values)

	if rleTag, rlePayload, ok := EncodeRLEBool(values); ok && len(rlePayload) < len(packed) {
		return rleTag, rlePayload
	}

	return wiretag.APackedBoolean, packed
}
