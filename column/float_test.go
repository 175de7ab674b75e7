package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colex/wiretag"
)

func TestFixedF64RoundTrip(t *testing.T) {
	require := require.New(t)

	values := []float64{0, 1, -1, math.Pi, math.MaxFloat64}
	data := EncodeFixedF64(values)
	got, ok := DecodeFixedF64(data, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestFixedF32RoundTrip(t *testing.T) {
	require := require.New(t)

	values := []float32{0, 1, -1, math.Pi, math.MaxFloat32}
	data := EncodeFixedF32(values)
	got, ok := DecodeFixedF32(data, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestSelectFloat64PicksGorillaForSmoothSeries(t *testing.T) {
	require := require.New(t)

	values := make([]float64, 100)
	for i := range values {
		values[i] = 100.0
	}

	tag, payload := SelectFloat64(values, 0)
	require.Equal(wiretag.ADoubleGorilla, tag)

	got, ok := DecodeGorillaF64(payload, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestSelectFloat64WithToleranceOffersZfp(t *testing.T) {
	require := require.New(t)

	values := []float64{1.0001, 1.0002, 1.0003, 1.0004, 1.0005}
	tag, payload := SelectFloat64(values, 0.01)
	require.NotEmpty(payload)

	switch tag {
	case wiretag.AZfp64:
		got, ok := DecodeZfp64(payload, len(values))
		require.True(ok)
		for i, v := range got {
			require.InDelta(values[i], v, 0.02)
		}
	case wiretag.AF64:
		got, ok := DecodeFixedF64(payload, len(values))
		require.True(ok)
		require.Equal(values, got)
	case wiretag.ADoubleGorilla:
		got, ok := DecodeGorillaF64(payload, len(values))
		require.True(ok)
		require.Equal(values, got)
	}
}
