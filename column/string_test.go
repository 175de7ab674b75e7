package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colex/wiretag"
)

func TestUtf8ColumnRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []string{"hello", "", "world", "colex"}
	data := EncodeUtf8(values)
	got, ok := DecodeUtf8(data, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestUtf8FsstRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []string{
		"user.login.success", "user.login.failure", "user.logout.success",
		"user.login.success", "user.login.success", "user.logout.failure",
	}

	data, ok := EncodeUtf8Fsst(values)
	require.True(ok)

	got, ok := DecodeUtf8Fsst(data, len(values))
	require.True(ok)
	require.Equal(values, got)
}

func TestSelectStringPicksSmallerEncoding(t *testing.T) {
	require := require.New(t)

	values := []string{"a", "b", "c"}
	tag, payload := SelectString(values)
	require.True(tag == wiretag.AUtf8 || tag == wiretag.AUtf8Fsst)
	require.NotEmpty(payload)
}
