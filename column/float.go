package column

import (
	"math"

	"github.com/arloliu/colex/endian"
	"github.com/arloliu/colex/wiretag"
)

// Float columns choose among Fixed (raw little-endian), Gorilla (float64
// only, XOR-delta), and Zfp (tolerance-bounded lossy, only offered when the
// caller supplies a positive tolerance).
//
// Grounded on the teacher's encoding/numeric_raw.go (Fixed) and
// internal/encoding/numeric_gorilla.go (Gorilla, reimplemented in
// gorilla.go); Zfp has no counterpart in the pack and is justified as a
// stdlib-only addition in DESIGN.md.

// EncodeFixedF64 writes values as raw little-endian float64s.
func EncodeFixedF64(values []float64) []byte {
	eng := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = eng.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// DecodeFixedF64 decodes count float64 values from data.
func DecodeFixedF64(data []byte, count int) ([]float64, bool) {
	if len(data) < count*8 {
		return nil, false
	}
	eng := endian.GetLittleEndianEngine()
	out := make([]float64, count)
	for i := range count {
		out[i] = math.Float64frombits(eng.Uint64(data[i*8:]))
	}

	return out, true
}

// EncodeFixedF32 writes values as raw little-endian float32s.
func EncodeFixedF32(values []float32) []byte {
	eng := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(values)*4)
	for _, v := range values {
		buf = eng.AppendUint32(buf, math.Float32bits(v))
	}

	return buf
}

// DecodeFixedF32 decodes count float32 values from data.
func DecodeFixedF32(data []byte, count int) ([]float32, bool) {
	if len(data) < count*4 {
		return nil, false
	}
	eng := endian.GetLittleEndianEngine()
	out := make([]float32, count)
	for i := range count {
		out[i] = math.Float32frombits(eng.Uint32(data[i*4:]))
	}

	return out, true
}

// DecodeFloat64 dispatches to the Float64 candidate decoder named by tag.
func DecodeFloat64(tag wiretag.ArrayTypeId, data []byte, count int) ([]float64, bool) {
	switch tag {
	case wiretag.AF64:
		return DecodeFixedF64(data, count)
	case wiretag.ADoubleGorilla:
		return DecodeGorillaF64(data, count)
	case wiretag.AZfp64:
		return DecodeZfp64(data, count)
	default:
		return nil, false
	}
}

// DecodeFloat32 dispatches to the Float32 candidate decoder named by tag.
func DecodeFloat32(tag wiretag.ArrayTypeId, data []byte, count int) ([]float32, bool) {
	switch tag {
	case wiretag.AF32:
		return DecodeFixedF32(data, count)
	case wiretag.AZfp32:
		return DecodeZfp32(data, count)
	default:
		return nil, false
	}
}

// SelectFloat64 chooses among Fixed F64, Gorilla, and (when tolerance > 0)
// Zfp64 for a float64 column.
func SelectFloat64(values []float64, lossyTolerance float64) (wiretag.ArrayTypeId, []byte) {
	candidates := []Candidate[float64]{
		{
			Name:     "fixed64",
			FastSize: func(sample []float64) (int, bool) { return len(sample) * 8, true },
			Encode:   func(values []float64) ([]byte, bool) { return EncodeFixedF64(values), true },
		},
		{
			Name:   "gorilla",
			Encode: func(values []float64) ([]byte, bool) { return EncodeGorillaF64(values), true },
		},
	}

	tags := []wiretag.ArrayTypeId{wiretag.AF64, wiretag.ADoubleGorilla}

	if lossyTolerance > 0 {
		candidates = append(candidates, Candidate[float64]{
			Name: "zfp64",
			Encode: func(values []float64) ([]byte, bool) {
				return EncodeZfp64(values, lossyTolerance)
			},
		})
		tags = append(tags, wiretag.AZfp64)
	}

	idx, payload := Select(values, candidates)

	return tags[idx], payload
}

// SelectFloat32 chooses between Fixed F32 and (when tolerance > 0) Zfp32 for
// a float32 column. Gorilla is float64-only per its wire tag (ADoubleGorilla).
func SelectFloat32(values []float32, lossyTolerance float64) (wiretag.ArrayTypeId, []byte) {
	candidates := []Candidate[float32]{
		{
			Name:     "fixed32",
			FastSize: func(sample []float32) (int, bool) { return len(sample) * 4, true },
			Encode:   func(values []float32) ([]byte, bool) { return EncodeFixedF32(values), true },
		},
	}
	tags := []wiretag.ArrayTypeId{wiretag.AF32}

	if lossyTolerance > 0 {
		candidates = append(candidates, Candidate[float32]{
			Name: "zfp32",
			Encode: func(values []float32) ([]byte, bool) {
				return EncodeZfp32(values, lossyTolerance)
			},
		})
		tags = append(tags, wiretag.AZfp32)
	}

	idx, payload := Select(values, candidates)

	return tags[idx], payload
}
