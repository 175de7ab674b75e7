// Package endian provides little-endian byte order utilities for binary encoding and decoding.
//
// The wire format produced by this module is always little-endian; there is no
// per-value or per-buffer endianness tag. The package exists so that column
// encoders/decoders share one EndianEngine value instead of each reaching for
// encoding/binary directly, and so that append-style writes avoid the
// temporary-buffer allocation that a plain binary.ByteOrder forces.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used throughout the wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
