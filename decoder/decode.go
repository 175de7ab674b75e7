package decoder

import (
	"github.com/arloliu/colex/codecerr"
	"github.com/arloliu/colex/compress"
	"github.com/arloliu/colex/format"
	"github.com/arloliu/colex/schema"
	"golang.org/x/sync/errgroup"
)

// Decode reverses Encode: it strips the one-byte compression-type header,
// decompresses the remainder, builds the schema for T, and walks the tag
// tree from a fresh cursor.
func Decode[T any](data []byte, opts ...Option) (T, error) {
	var zero T

	if len(data) < 1 {
		return zero, codecerr.EndOfFile
	}

	if _, err := NewOptions(opts...); err != nil {
		return zero, err
	}

	compressionType := format.CompressionType(data[0])
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return zero, err
	}

	raw, err := codec.Decompress(data[1:])
	if err != nil {
		return zero, err
	}

	node := schema.Of[T]()
	c := newCursor(raw)

	v, err := decodeRoot(c, node)
	if err != nil {
		return zero, err
	}

	result, ok := v.Interface().(T)
	if !ok {
		return zero, codecerr.SchemaMismatch
	}

	return result, nil
}

// DecodeAllParallel decodes each of buffers into a T, fanning the
// independent decodes out across an errgroup.Group bounded to the sibling
// set. Unlike the columns inside one buffer's tag tree — which share a
// single forward/backward cursor and so must be read strictly in
// discovery order (see cursor.go) — separate buffers have no data
// dependency between them and are the actual unit of "sibling decoder
// construction" this format can parallelize.
//
// Grounded on solidcoredata-dca/internal/start.RunAll's errgroup.WithContext
// fan-out: one goroutine per independent unit of work, first error wins.
func DecodeAllParallel[T any](buffers [][]byte, opts ...Option) ([]T, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(buffers))

	if !o.Parallel {
		for i, buf := range buffers {
			v, err := Decode[T](buf, opts...)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	}

	var g errgroup.Group
	for i, buf := range buffers {
		i, buf := i, buf
		g.Go(func() error {
			v, err := Decode[T](buf, opts...)
			if err != nil {
				return err
			}
			out[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
