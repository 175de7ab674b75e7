package schemabridge

import (
	"testing"

	"github.com/arloliu/colex/codecerr"
	"github.com/stretchr/testify/require"
)

func TestWidenFloat(t *testing.T) {
	require := require.New(t)

	v, err := WidenFloat(1.5, 32, 64)
	require.NoError(err)
	require.Equal(1.5, v)

	v, err = WidenFloat(2.5, 64, 64)
	require.NoError(err)
	require.Equal(2.5, v)

	_, err = WidenFloat(3.5, 64, 32)
	require.ErrorIs(err, codecerr.SchemaMismatch)
}
