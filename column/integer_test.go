package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colex/wiretag"
)

func TestPrefixVarIntColumnRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1}
	data := EncodePrefixVarIntColumn(values)
	got, ok := DecodePrefixVarIntColumn(data, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestU8FixedColumn(t *testing.T) {
	require := require.New(t)

	values := []uint64{0, 1, 255, 42}
	data, ok := EncodeU8FixedColumn(values)
	require.True(ok)
	require.Len(data, 4)

	got, ok := DecodeU8FixedColumn(data, len(values))
	require.True(ok)
	require.Equal(values, got)

	_, ok = EncodeU8FixedColumn([]uint64{256})
	require.False(ok)
}

func TestSelectIntegerPicksU8Fixed(t *testing.T) {
	require := require.New(t)

	values := []uint64{100, 200, 255, 42, 7}
	tag, payload := SelectInteger(values)
	require.Equal(wiretag.AIntU8Fixed, tag)

	got, ok := decodeIntegerColumn(tag, payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestSelectIntegerPicksPrefixVarIntForLargeValues(t *testing.T) {
	require := require.New(t)

	values := []uint64{1 << 40, 1 << 41, 1 << 42}
	tag, payload := SelectInteger(values)
	require.Equal(wiretag.AIntPrefixVar, tag)

	got, ok := decodeIntegerColumn(tag, payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}
