package varint

import (
	"math"

	"github.com/arloliu/colex/endian"
)

// AppendFixedUint writes a fixed-width little-endian unsigned integer of the
// given byte width (1, 2, 4, or 8) to buf.
func AppendFixedUint(buf []byte, engine endian.EndianEngine, width int, v uint64) []byte {
	switch width {
	case 1:
		return append(buf, byte(v))
	case 2:
		return engine.AppendUint16(buf, uint16(v))
	case 4:
		return engine.AppendUint32(buf, uint32(v))
	case 8:
		return engine.AppendUint64(buf, v)
	default:
		panic("varint: unsupported fixed width")
	}
}

// ReadFixedUint reads a fixed-width little-endian unsigned integer of the
// given byte width from data[0:width].
func ReadFixedUint(data []byte, engine endian.EndianEngine, width int) (v uint64, ok bool) {
	if len(data) < width {
		return 0, false
	}

	switch width {
	case 1:
		return uint64(data[0]), true
	case 2:
		return uint64(engine.Uint16(data)), true
	case 4:
		return uint64(engine.Uint32(data)), true
	case 8:
		return engine.Uint64(data), true
	default:
		panic("varint: unsupported fixed width")
	}
}

// AppendFixedFloat32 writes a 32-bit IEEE-754 float in little-endian form.
func AppendFixedFloat32(buf []byte, engine endian.EndianEngine, v float32) []byte {
	return engine.AppendUint32(buf, math.Float32bits(v))
}

// ReadFixedFloat32 reads a 32-bit IEEE-754 float from data[0:4].
func ReadFixedFloat32(data []byte, engine endian.EndianEngine) (float32, bool) {
	if len(data) < 4 {
		return 0, false
	}

	return math.Float32frombits(engine.Uint32(data)), true
}

// AppendFixedFloat64 writes a 64-bit IEEE-754 float in little-endian form.
func AppendFixedFloat64(buf []byte, engine endian.EndianEngine, v float64) []byte {
	return engine.AppendUint64(buf, math.Float64bits(v))
}

// ReadFixedFloat64 reads a 64-bit IEEE-754 float from data[0:8].
func ReadFixedFloat64(data []byte, engine endian.EndianEngine) (float64, bool) {
	if len(data) < 8 {
		return 0, false
	}

	return math.Float64frombits(engine.Uint64(data)), true
}
