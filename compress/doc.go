// Package compress provides whole-buffer compression codecs for encoded column data.
//
// Column encodings (see the column package) already exploit structure in the
// data (varint, RLE, dictionary, Gorilla). This package implements an optional
// second stage applied once to the fully-assembled output buffer (main bytes
// plus lens stream), trading a small amount of CPU for additional space
// savings on top of encoding.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// CreateCodec and GetCodec select an implementation from a
// format.CompressionType, letting callers configure compression without
// depending on concrete codec types.
package compress
