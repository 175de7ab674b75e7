// Package colex is a columnar, schema-driven serialization codec: Encode
// walks a Go value against its inferred schema.Node tree and writes a
// root-context tag tree plus array-context columns (each column picking
// whichever of several candidate encodings is smallest); Decode walks the
// same tree back into a value of a possibly different Go type, applying
// the Schema Bridge widening rules (schemabridge package) wherever the two
// types differ.
//
// # Basic usage
//
//	type Point struct {
//	    Timestamp int64
//	    Value     float64
//	    Host      string
//	}
//
//	data, err := colex.Encode([]Point{
//	    {Timestamp: 1000, Value: 1.5, Host: "a"},
//	    {Timestamp: 1001, Value: 2.5, Host: "a"},
//	}, colex.WithBufferCompression(format.CompressionZstd))
//
//	points, err := colex.Decode[[]Point](data)
//
// See schema.Of for how a Go type maps onto the logical value kinds this
// codec understands, and spec.md's Schema Bridge section for the exact
// widening rules Decode applies when the target type isn't identical to
// the producer's.
package colex

import (
	"github.com/arloliu/colex/decoder"
	"github.com/arloliu/colex/encoder"
	"github.com/arloliu/colex/format"
)

// EncodeOption configures Encode. See WithBufferCompression and
// WithLossyFloatTolerance.
type EncodeOption = encoder.Option

// DecodeOption configures Decode. See WithParallel.
type DecodeOption = decoder.Option

// WithBufferCompression applies a whole-buffer compression codec after the
// tag tree and lens stream are produced.
func WithBufferCompression(c format.CompressionType) EncodeOption {
	return encoder.WithBufferCompression(c)
}

// WithLossyFloatTolerance enables tolerance-bounded Float quantization
// (the Zfp32/Zfp64 column candidates) for the given encode.
func WithLossyFloatTolerance(tolerance float64) EncodeOption {
	return encoder.WithLossyFloatTolerance(tolerance)
}

// WithParallel enables errgroup-bounded parallel decoding for
// DecodeAllParallel.
func WithParallel(parallel bool) DecodeOption {
	return decoder.WithParallel(parallel)
}

// DecodeAllParallel decodes each of buffers into a T, optionally fanning
// the independent decodes out across a bounded errgroup when WithParallel
// is set.
func DecodeAllParallel[T any](buffers [][]byte, opts ...DecodeOption) ([]T, error) {
	return decoder.DecodeAllParallel[T](buffers, opts...)
}

// Encode builds the schema for T, walks value against it, and returns the
// complete wire-format byte slice.
func Encode[T any](value T, opts ...EncodeOption) ([]byte, error) {
	return encoder.Encode(value, opts...)
}

// Decode reverses Encode, applying the Schema Bridge rules wherever T
// differs from the producer's original type.
func Decode[T any](data []byte, opts ...DecodeOption) (T, error) {
	return decoder.Decode[T](data, opts...)
}
