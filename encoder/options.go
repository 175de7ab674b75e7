// Package encoder walks a schema.Node tree alongside a reflect.Value and
// produces the wire-format bytes: a root-context tag tree with inline
// scalar payloads, primitive columns flushed from array contexts, and the
// trailing suffix-varint lens stream.
//
// Grounded on the teacher's StartMetric/AddDataPoint/EndMetric/Finish
// lifecycle (blob/numeric_blob_encoder.go and friends): buffer first,
// flush later. Here "buffer-one" accumulates reflect.Values per leaf column
// while walking a sequence, and "flush" (column.Select*) runs once the walk
// completes, exactly mirroring that two-phase shape at the level of one
// array context instead of one whole blob.
package encoder

import (
	"github.com/arloliu/colex/format"
	"github.com/arloliu/colex/internal/options"
)

// Options configures encoding. The zero value (via NewOptions) disables
// whole-buffer compression and lossy float quantization.
type Options struct {
	// BufferCompression applies a second-stage whole-buffer compression
	// pass (see compress package) after the tag tree and lens stream are
	// produced. None by default.
	BufferCompression format.CompressionType

	// LossyFloatTolerance enables the Zfp32/Zfp64 Float column candidates
	// when positive; zero (the default) means floats are never quantized.
	LossyFloatTolerance float64
}

// Option configures Options.
type Option = options.Option[*Options]

// WithBufferCompression sets the whole-buffer compression codec applied
// after the tag tree is produced.
func WithBufferCompression(c format.CompressionType) Option {
	return options.NoError(func(o *Options) { o.BufferCompression = c })
}

// WithLossyFloatTolerance enables tolerance-bounded Float quantization.
func WithLossyFloatTolerance(tolerance float64) Option {
	return options.NoError(func(o *Options) { o.LossyFloatTolerance = tolerance })
}

// NewOptions builds an Options from the given Option values, starting from
// the no-compression, lossless defaults.
func NewOptions(opts ...Option) (*Options, error) {
	o := &Options{BufferCompression: format.CompressionNone}
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}
