package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X int32
	Y int32
}

type withOptional struct {
	Name string
	Age  *int32
}

type linkedNode struct {
	Value int32
	Next  *linkedNode
}

func TestCanonicalizeIdent(t *testing.T) {
	require := require.New(t)

	require.Equal("userId", CanonicalizeIdent("UserID"))
	require.Equal("userId", CanonicalizeIdent("user_id"))
	require.Equal("x", CanonicalizeIdent("X"))
	require.Equal("httpServer", CanonicalizeIdent("HTTPServer"))
	require.Equal("name", CanonicalizeIdent("Name"))
}

func TestBuildRecord(t *testing.T) {
	require := require.New(t)

	n := Of[point]()
	require.Equal(KindRecord, n.Kind)
	require.Len(n.Fields, 2)
	require.Equal("x", n.Fields[0].Name)
	require.Equal("y", n.Fields[1].Name)
	require.Equal(KindInteger, n.Fields[0].Node.Kind)
	require.True(n.Fields[0].Node.IntSigned)
	require.Equal(32, n.Fields[0].Node.IntBits)
}

func TestBuildOptional(t *testing.T) {
	require := require.New(t)

	n := Of[withOptional]()
	require.Equal(KindRecord, n.Kind)

	var ageField *Field
	for i := range n.Fields {
		if n.Fields[i].Name == "age" {
			ageField = &n.Fields[i]
		}
	}
	require.NotNil(ageField)
	require.Equal(KindOptional, ageField.Node.Kind)
	require.Equal(KindInteger, ageField.Node.Elem.Kind)
}

func TestBuildSequence(t *testing.T) {
	require := require.New(t)

	n := Of[[]int64]()
	require.Equal(KindSequence, n.Kind)
	require.Equal(-1, n.FixedLen)
	require.Equal(KindInteger, n.Elem.Kind)
}

func TestBuildFixedArray(t *testing.T) {
	require := require.New(t)

	n := Of[[4]float64]()
	require.Equal(KindSequence, n.Kind)
	require.Equal(4, n.FixedLen)
	require.Equal(KindFloat, n.Elem.Kind)
	require.Equal(64, n.Elem.FloatBits)
}

func TestBuildMap(t *testing.T) {
	require := require.New(t)

	n := Of[map[string]int32]()
	require.Equal(KindMap, n.Kind)
	require.Equal(KindString, n.Key.Kind)
	require.Equal(KindInteger, n.Elem.Kind)
}

func TestBuildRecursiveType(t *testing.T) {
	require := require.New(t)

	n := Of[linkedNode]()
	require.Equal(KindRecord, n.Kind)

	var nextField *Field
	for i := range n.Fields {
		if n.Fields[i].Name == "next" {
			nextField = &n.Fields[i]
		}
	}
	require.NotNil(nextField)
	require.Equal(KindOptional, nextField.Node.Kind)
	require.True(nextField.Node.Elem.IsRecursive())
	require.Equal(KindRecord, nextField.Node.Elem.Kind)
}

func TestBuildTuple(t *testing.T) {
	require := require.New(t)

	n := Of[Tuple2[int32, string]]()
	require.Equal(KindTuple, n.Kind)
	require.Len(n.Elems, 2)
	require.Equal(KindInteger, n.Elems[0].Kind)
	require.Equal(KindString, n.Elems[1].Kind)
}

func TestBuildVoid(t *testing.T) {
	require := require.New(t)

	n := Of[Void]()
	require.Equal(KindVoid, n.Kind)
}

type shapeVariant struct {
	Area float64
}

func (shapeVariant) VariantName() string { return "Circle" }

type shape interface {
	shapeMarker()
}

func TestSumRegistry(t *testing.T) {
	require := require.New(t)

	RegisterVariant[shape](shapeVariant{})

	ifaceType := Of[shape]().GoType
	got, ok := LookupVariant(ifaceType, "circle")
	require.True(ok)
	require.Equal("shapeVariant", got.Name())
}

func (shapeVariant) shapeMarker() {}
