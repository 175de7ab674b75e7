package schema

import (
	"fmt"
	"reflect"
	"sort"
)

var tupleMarkerType = reflect.TypeOf((*tupleMarker)(nil)).Elem()
var voidType = reflect.TypeOf(Void{})

// builder walks Go types into Nodes, caching one Node per reflect.Type so
// that a type which transitively contains itself (through a Sequence,
// Optional, or Map) terminates instead of recursing forever. A stub Node is
// registered in the cache before its children are built; any self-reference
// encountered while building those children finds the stub and marks it
// Indirect, exactly as the source's own design notes demand ("reimplementers
// must break the recursion with indirection").
type builder struct {
	cache map[reflect.Type]*Node
}

// Of builds the Node tree describing Go type T.
func Of[T any]() *Node {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// T is an interface type with a nil zero value; recover it via a
		// pointer so reflect.TypeOf doesn't collapse to nil.
		t = reflect.TypeOf((*T)(nil)).Elem()
	}

	b := &builder{cache: map[reflect.Type]*Node{}}

	return b.build(t)
}

// OfType builds the Node tree for an arbitrary reflect.Type, for callers
// (such as the encoder's Sum-variant handling) that only have a concrete
// reflect.Type discovered at runtime rather than a compile-time type
// parameter.
func OfType(t reflect.Type) *Node {
	b := &builder{cache: map[reflect.Type]*Node{}}

	return b.build(t)
}

func (b *builder) build(t reflect.Type) *Node {
	if n, ok := b.cache[t]; ok {
		return n
	}

	n := &Node{GoType: t, FixedLen: -1}
	b.cache[t] = n
	b.fill(n, t)

	return n
}

// resolve returns the Node for t, marking it Indirect if it's a cycle back
// to a Node currently under construction (i.e. already in the cache but not
// yet filled in beyond its stub).
func (b *builder) resolve(t reflect.Type) *Node {
	if existing, ok := b.cache[t]; ok {
		existing.Indirect = true

		return existing
	}

	return b.build(t)
}

func (b *builder) fill(n *Node, t reflect.Type) {
	switch t.Kind() {
	case reflect.Bool:
		n.Kind = KindBoolean

	case reflect.String:
		n.Kind = KindString

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n.Kind = KindInteger
		n.IntSigned = true
		n.IntBits = intBits(t.Kind())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n.Kind = KindInteger
		n.IntSigned = false
		n.IntBits = intBits(t.Kind())

	case reflect.Float32:
		n.Kind = KindFloat
		n.FloatBits = 32

	case reflect.Float64:
		n.Kind = KindFloat
		n.FloatBits = 64

	case reflect.Pointer:
		n.Kind = KindOptional
		n.Elem = b.resolve(t.Elem())

	case reflect.Slice:
		n.Kind = KindSequence
		n.FixedLen = -1
		n.Elem = b.resolve(t.Elem())

	case reflect.Array:
		n.Kind = KindSequence
		n.FixedLen = t.Len()
		n.Elem = b.resolve(t.Elem())

	case reflect.Map:
		n.Kind = KindMap
		n.Key = b.resolve(t.Key())
		n.Elem = b.resolve(t.Elem())

	case reflect.Interface:
		n.Kind = KindSum

	case reflect.Struct:
		b.fillStruct(n, t)

	default:
		panic(fmt.Sprintf("schema: unsupported Go kind %s for type %s", t.Kind(), t))
	}
}

func (b *builder) fillStruct(n *Node, t reflect.Type) {
	if t == voidType {
		n.Kind = KindVoid

		return
	}

	if reflect.PointerTo(t).Implements(tupleMarkerType) || t.Implements(tupleMarkerType) {
		n.Kind = KindTuple
		for i := range t.NumField() {
			f := t.Field(i)
			if f.Anonymous && f.Type == reflect.TypeOf(AsTuple{}) {
				continue
			}
			if !f.IsExported() {
				continue
			}

			n.Elems = append(n.Elems, b.resolve(f.Type))
		}

		return
	}

	n.Kind = KindRecord
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		n.Fields = append(n.Fields, Field{
			Name:  CanonicalizeIdent(f.Name),
			Index: i,
			Node:  b.resolve(f.Type),
		})
	}

	sort.Slice(n.Fields, func(i, j int) bool { return n.Fields[i].Name < n.Fields[j].Name })
}

func intBits(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32:
		return 32
	case reflect.Int64, reflect.Uint64:
		return 64
	case reflect.Int, reflect.Uint:
		return 64
	default:
		return 64
	}
}
