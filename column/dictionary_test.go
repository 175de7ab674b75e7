package column

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionaryIntegerRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []uint64{10, 20, 10, 30, 20, 10, 30, 30}
	data, ok := EncodeDictionaryInteger(values)
	require.True(ok)

	got, ok := DecodeDictionaryInteger(data, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestDictionaryIntegerRefusesAllDistinct(t *testing.T) {
	require := require.New(t)

	_, ok := EncodeDictionaryInteger([]uint64{1, 2, 3, 4})
	require.False(ok)
}

func TestDictionaryStringRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []string{"us-east-1", "eu-west-1", "us-east-1", "us-east-1", "ap-south-1", "eu-west-1"}
	data, ok := EncodeDictionaryString(values)
	require.True(ok)

	got, ok := DecodeDictionaryString(data, len(values))
	require.True(ok)
	require.Equal(values, got)
}
