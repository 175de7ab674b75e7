package schemabridge

import (
	"testing"

	"github.com/arloliu/colex/codecerr"
	"github.com/stretchr/testify/require"
)

func TestWidenSignedInt(t *testing.T) {
	require := require.New(t)

	v, err := WidenSignedInt(-5, 8, 64)
	require.NoError(err)
	require.Equal(int64(-5), v)

	_, err = WidenSignedInt(-5, 64, 8)
	require.ErrorIs(err, codecerr.SchemaMismatch)
}

func TestWidenUnsignedToSignedInt(t *testing.T) {
	require := require.New(t)

	v, err := WidenUnsignedToSignedInt(200, 8, 16)
	require.NoError(err)
	require.Equal(int64(200), v)

	_, err = WidenUnsignedToSignedInt(200, 64, 64)
	require.ErrorIs(err, codecerr.SchemaMismatch)
}

func TestWidenSignedToUnsignedInt(t *testing.T) {
	require := require.New(t)

	v, err := WidenSignedToUnsignedInt(5, 8, 64)
	require.NoError(err)
	require.Equal(uint64(5), v)

	_, err = WidenSignedToUnsignedInt(-1, 8, 64)
	require.ErrorIs(err, codecerr.SchemaMismatch)
}

func TestNegOneFor(t *testing.T) {
	require := require.New(t)

	v, ok := NegOneFor(true)
	require.True(ok)
	require.Equal(int64(-1), v)

	_, ok = NegOneFor(false)
	require.False(ok)
}
