package colex_test

import (
	"testing"

	"github.com/arloliu/colex"
	"github.com/arloliu/colex/format"
	"github.com/arloliu/colex/schema"
	"github.com/stretchr/testify/require"
)

type Point struct {
	Timestamp int64
	Value     float64
	Host      string
}

func TestEncodeDecodeScalar(t *testing.T) {
	require := require.New(t)

	data, err := colex.Encode(int64(-42))
	require.NoError(err)

	v, err := colex.Decode[int64](data)
	require.NoError(err)
	require.Equal(int64(-42), v)
}

func TestEncodeDecodeRecordSequence(t *testing.T) {
	require := require.New(t)

	points := []Point{
		{Timestamp: 1000, Value: 1.5, Host: "a"},
		{Timestamp: 1001, Value: 2.5, Host: "a"},
		{Timestamp: 1100, Value: -3.25, Host: "b"},
	}

	data, err := colex.Encode(points, colex.WithBufferCompression(format.CompressionZstd))
	require.NoError(err)

	out, err := colex.Decode[[]Point](data)
	require.NoError(err)
	require.Equal(points, out)
}

func TestEncodeDecodeEmptySequence(t *testing.T) {
	require := require.New(t)

	var points []Point

	data, err := colex.Encode(points)
	require.NoError(err)

	out, err := colex.Decode[[]Point](data)
	require.NoError(err)
	require.Empty(out)
}

func TestEncodeDecodeOptional(t *testing.T) {
	require := require.New(t)

	type WithOptional struct {
		Name string
		Host *string
	}

	host := "db-1"
	values := []WithOptional{
		{Name: "a", Host: &host},
		{Name: "b", Host: nil},
	}

	data, err := colex.Encode(values)
	require.NoError(err)

	out, err := colex.Decode[[]WithOptional](data)
	require.NoError(err)
	require.Equal(values, out)
}

func TestEncodeDecodeTuple(t *testing.T) {
	require := require.New(t)

	pairs := []schema.Tuple2[int64, string]{
		{F0: 1, F1: "x"},
		{F0: 2, F1: "y"},
	}

	data, err := colex.Encode(pairs)
	require.NoError(err)

	out, err := colex.Decode[[]schema.Tuple2[int64, string]](data)
	require.NoError(err)
	require.Equal(pairs, out)
}

func TestEncodeDecodeMap(t *testing.T) {
	require := require.New(t)

	m := map[string]int64{"a": 1, "b": 2, "c": 3}

	data, err := colex.Encode(m)
	require.NoError(err)

	out, err := colex.Decode[map[string]int64](data)
	require.NoError(err)
	require.Equal(m, out)
}

func TestParallelDecodeAll(t *testing.T) {
	require := require.New(t)

	var buffers [][]byte
	for i := int64(0); i < 8; i++ {
		data, err := colex.Encode(i * 10)
		require.NoError(err)
		buffers = append(buffers, data)
	}

	out, err := colex.DecodeAllParallel[int64](buffers, colex.WithParallel(true))
	require.NoError(err)
	require.Len(out, 8)
	for i, v := range out {
		require.Equal(int64(i)*10, v)
	}
}
