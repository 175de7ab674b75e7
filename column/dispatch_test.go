package column

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeIntegerDispatch(t *testing.T) {
	require := require.New(t)

	values := []uint64{5, 5, 5, 9000, 5}
	tag, payload := SelectInteger(values)

	got, ok := DecodeInteger(tag, payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestDecodeStringDispatch(t *testing.T) {
	require := require.New(t)

	values := []string{"a", "bb", "a", "ccc"}
	tag, payload := SelectString(values)

	got, ok := DecodeString(tag, payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestDecodeFloat64Dispatch(t *testing.T) {
	require := require.New(t)

	values := []float64{1.5, 1.6, 1.7, 1.8}
	tag, payload := SelectFloat64(values, 0)

	got, ok := DecodeFloat64(tag, payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestDecodeFloat32Dispatch(t *testing.T) {
	require := require.New(t)

	values := []float32{1.5, 2.5, 3.5}
	tag, payload := SelectFloat32(values, 0)

	got, ok := DecodeFloat32(tag, payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestDecodeBooleanDispatch(t *testing.T) {
	require := require.New(t)

	values := []bool{true, false, true, true, false}
	tag, payload := SelectBoolean(values)

	got, ok := DecodeBoolean(tag, payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}
