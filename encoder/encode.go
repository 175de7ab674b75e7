package encoder

import (
	"reflect"

	"github.com/arloliu/colex/compress"
	"github.com/arloliu/colex/internal/pool"
	"github.com/arloliu/colex/schema"
)

// Encode builds the schema for T, walks value against it, and returns the
// complete wire-format byte slice: a one-byte compression-type header
// (mirroring the teacher's header-stored compression flag, collapsed to a
// single byte since this format has no other header fields), followed by
// the root tag tree, flushed columns, and the trailing suffix-varint lens
// stream, optionally passed through a whole-buffer compression codec.
//
// The main buffer is seeded from the package's pooled ByteBuffer, the same
// get/defer-put pattern the teacher's own numeric encoder uses, to absorb
// the allocation cost of repeated Encode calls.
func Encode[T any](value T, opts ...Option) ([]byte, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	node := schema.Of[T]()
	s := &state{main: bb.Bytes()[:0], lossyFloatTolerance: o.LossyFloatTolerance}

	if err := encodeRoot(s, node, reflect.ValueOf(value)); err != nil {
		return nil, err
	}

	out := s.finalize()

	codec, err := compress.GetCodec(o.BufferCompression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(out)
	if err != nil {
		return nil, err
	}

	return append([]byte{byte(o.BufferCompression)}, compressed...), nil
}
