package column

import (
	"math"

	"github.com/arloliu/colex/varint"
)

// Zfp32/Zfp64 are lossy Float candidates, only offered when the caller asks
// for a positive tolerance: each value is quantized to the nearest multiple
// of 2^k (k chosen so the quantization step is at most 2*tolerance), then
// the quantized values are delta-and-zigzag-varint encoded, the same way
// the Integer column encodes any other signed stream.
//
// No repository in the retrieval pack implements tolerance-bounded lossy
// float quantization (the teacher's Gorilla and raw-numeric encoders are
// both lossless); this candidate is this repository's own, built on
// math.Log2/math.Round and the varint package rather than a third-party
// compressor, and is recorded as a standard-library-only component in
// DESIGN.md for that reason.
//
// Payload layout: zigzag-varint(k+1), then one zigzag-varint delta per
// value (the first delta is relative to a zero baseline).
func quantizeStep(tolerance float64) (k int, step float64) {
	k = int(math.Floor(math.Log2(2 * tolerance)))
	step = math.Ldexp(1, k)

	return k, step
}

// EncodeZfp64 quantizes and delta-encodes a float64 column. Fails if
// tolerance is not positive or any value is non-finite (NaN/Inf have no
// well-defined quantization).
func EncodeZfp64(values []float64, tolerance float64) ([]byte, bool) {
	if tolerance <= 0 {
		return nil, false
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
	}

	k, step := quantizeStep(tolerance)

	buf := varint.AppendPrefixVarint(nil, varint.ZigZagEncode(int64(k+1)))

	prev := int64(0)
	for _, v := range values {
		q := int64(math.Round(v / step))
		delta := q - prev
		buf = varint.AppendPrefixVarint(buf, varint.ZigZagEncode(delta))
		prev = q
	}

	return buf, true
}

// DecodeZfp64 decodes count float64 values from a Zfp64 payload.
func DecodeZfp64(data []byte, count int) ([]float64, bool) {
	kPlusOne, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return nil, false
	}
	k := int(varint.ZigZagDecode(kPlusOne)) - 1
	step := math.Ldexp(1, k)
	data = data[n:]

	out := make([]float64, count)
	prev := int64(0)
	for i := range count {
		d, dn, ok := varint.ReadPrefixVarint(data)
		if !ok {
			return nil, false
		}
		data = data[dn:]

		delta := varint.ZigZagDecode(d)
		q := prev + delta
		out[i] = float64(q) * step
		prev = q
	}

	return out, true
}

// EncodeZfp32 is the float32 counterpart of EncodeZfp64.
func EncodeZfp32(values []float32, tolerance float64) ([]byte, bool) {
	values64 := make([]float64, len(values))
	for i, v := range values {
		values64[i] = float64(v)
	}

	return EncodeZfp64(values64, tolerance)
}

// DecodeZfp32 is the float32 counterpart of DecodeZfp64.
func DecodeZfp32(data []byte, count int) ([]float32, bool) {
	values64, ok := DecodeZfp64(data, count)
	if !ok {
		return nil, false
	}

	out := make([]float32, count)
	for i, v := range values64 {
		out[i] = float32(v)
	}

	return out, true
}
