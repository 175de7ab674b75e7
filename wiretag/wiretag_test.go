package wiretag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootTupleArityTag(t *testing.T) {
	require := require.New(t)

	for arity := 2; arity <= 8; arity++ {
		tag, packed := TupleArityTag(arity)
		require.True(packed)
		require.NotEqual(TupleN, tag)
	}

	tag, packed := TupleArityTag(9)
	require.False(packed)
	require.Equal(TupleN, tag)

	tag, packed = TupleArityTag(100)
	require.False(packed)
	require.Equal(TupleN, tag)
}

func TestRootObjArityTag(t *testing.T) {
	require := require.New(t)

	for n := 1; n <= 8; n++ {
		tag, packed := ObjArityTag(n)
		require.True(packed)
		require.NotEqual(ObjN, tag)
	}

	tag, packed := ObjArityTag(9)
	require.False(packed)
	require.Equal(ObjN, tag)
}

func TestArrayObjArityTagIncludesZero(t *testing.T) {
	require := require.New(t)

	tag, packed := ArrayObjArityTag(0)
	require.True(packed)
	require.Equal(AObj0, tag)
}

func TestCountRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, count := range []int{9, 10, 100, 9 + 1<<20} {
		buf := AppendCount(nil, count)
		got, n, ok := ReadCount(buf)
		require.True(ok)
		require.Equal(len(buf), n)
		require.Equal(count, got)
	}
}

func TestTagStringers(t *testing.T) {
	require := require.New(t)

	require.Equal("Obj2", Obj2.String())
	require.Equal("Utf8Fsst", AUtf8Fsst.String())
	require.Equal("RootTypeId(?)", RootTypeId(250).String())
	require.Equal("ArrayTypeId(?)", ArrayTypeId(250).String())
}
