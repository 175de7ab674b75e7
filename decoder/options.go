package decoder

import "github.com/arloliu/colex/internal/options"

// Options configures decoding. The zero value (via NewOptions) decodes
// single-threaded.
type Options struct {
	// Parallel lets DecodeAllParallel decode its buffers concurrently
	// through an errgroup.Group. Decode always reads a buffer on the calling
	// goroutine, whatever this is set to: sibling columns within one buffer
	// are not decoded in parallel. False by default.
	Parallel bool
}

// Option configures Options.
type Option = options.Option[*Options]

// WithParallel sets Parallel, enabling concurrent per-buffer decoding in
// DecodeAllParallel.
func WithParallel(parallel bool) Option {
	return options.NoError(func(o *Options) { o.Parallel = parallel })
}

// NewOptions builds an Options from the given Option values, starting from
// the single-threaded default.
func NewOptions(opts ...Option) (*Options, error) {
	o := &Options{}
	if err := options.Apply(o, opts...); err != nil {
		return nil, err
	}

	return o, nil
}
