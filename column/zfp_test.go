package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZfp64RoundTripWithinTolerance(t *testing.T) {
	require := require.New(t)

	values := []float64{1.0, 1.1, 1.2, 1.15, 0.95, 10.5, -3.2}
	tolerance := 0.05

	data, ok := EncodeZfp64(values, tolerance)
	require.True(ok)

	got, ok := DecodeZfp64(data, len(values))
	require.True(ok)
	require.Len(got, len(values))
	for i, v := range got {
		require.InDelta(values[i], v, tolerance*2)
	}
}

func TestZfp64RejectsNonFinite(t *testing.T) {
	require := require.New(t)

	_, ok := EncodeZfp64([]float64{1, 2, math.NaN()}, 0.1)
	require.False(ok)
}

func TestZfp64RejectsNonPositiveTolerance(t *testing.T) {
	require := require.New(t)

	_, ok := EncodeZfp64([]float64{1, 2, 3}, 0)
	require.False(ok)
}
