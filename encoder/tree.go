package encoder

import (
	"reflect"

	"github.com/arloliu/colex/schema"
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// encodeRootString writes str using the Str0..Str3 inline shortcuts for
// lengths 0..3 and the general Str (length-prefixed) tag otherwise.
func encodeRootString(s *state, str string) {
	switch len(str) {
	case 0:
		s.writeByte(byte(wiretag.Str0))
	case 1:
		s.writeByte(byte(wiretag.Str1))
		s.writeBytes([]byte(str))
	case 2:
		s.writeByte(byte(wiretag.Str2))
		s.writeBytes([]byte(str))
	case 3:
		s.writeByte(byte(wiretag.Str3))
		s.writeBytes([]byte(str))
	default:
		s.writeByte(byte(wiretag.Str))
		s.writeCount(len(str))
		s.writeBytes([]byte(str))
	}
}

// encodeRootInteger writes an Integer node's value in root context, using
// the Zero/One/NegOne literal shortcuts where they apply.
func encodeRootInteger(s *state, n *schema.Node, v reflect.Value) {
	if n.IntSigned {
		iv := v.Int()
		switch iv {
		case 0:
			s.writeByte(byte(wiretag.Zero))
		case 1:
			s.writeByte(byte(wiretag.One))
		case -1:
			s.writeByte(byte(wiretag.NegOne))
		default:
			tag := map[int]wiretag.RootTypeId{8: wiretag.IntS8, 16: wiretag.IntS16, 32: wiretag.IntS32, 64: wiretag.IntS64}[n.IntBits]
			s.writeByte(byte(tag))
			s.main = varint.AppendFixedUint(s.main, littleEndian, n.IntBits/8, uint64(iv))
		}

		return
	}

	uv := v.Uint()
	switch uv {
	case 0:
		s.writeByte(byte(wiretag.Zero))
	case 1:
		s.writeByte(byte(wiretag.One))
	default:
		tag := map[int]wiretag.RootTypeId{8: wiretag.IntU8, 16: wiretag.IntU16, 32: wiretag.IntU32, 64: wiretag.IntU64}[n.IntBits]
		s.writeByte(byte(tag))
		s.main = varint.AppendFixedUint(s.main, littleEndian, n.IntBits/8, uv)
	}
}

func encodeRootFloat(s *state, n *schema.Node, v reflect.Value) {
	f := v.Float()

	switch {
	case f != f: // NaN
		s.writeByte(byte(wiretag.NaN))

		return
	case f == 0:
		s.writeByte(byte(wiretag.Zero))

		return
	case f == 1:
		s.writeByte(byte(wiretag.One))

		return
	case f == -1:
		s.writeByte(byte(wiretag.NegOne))

		return
	}

	if n.FloatBits == 32 {
		s.writeByte(byte(wiretag.F32))
		s.main = varint.AppendFixedFloat32(s.main, littleEndian, float32(f))
	} else {
		s.writeByte(byte(wiretag.F64))
		s.main = varint.AppendFixedFloat64(s.main, littleEndian, f)
	}
}

// encodeRoot writes v (described by n) in root context: a single tag byte
// followed by the tag's payload, possibly opening array contexts for any
// Sequence/Map/Record/Tuple/Sum child.
func encodeRoot(s *state, n *schema.Node, v reflect.Value) error {
	switch n.Kind {
	case schema.KindVoid:
		s.writeByte(byte(wiretag.Void))

	case schema.KindBoolean:
		if v.Bool() {
			s.writeByte(byte(wiretag.True))
		} else {
			s.writeByte(byte(wiretag.False))
		}

	case schema.KindInteger:
		encodeRootInteger(s, n, v)

	case schema.KindFloat:
		encodeRootFloat(s, n, v)

	case schema.KindString:
		encodeRootString(s, v.String())

	case schema.KindOptional:
		if v.IsNil() {
			s.writeByte(byte(wiretag.Void))

			return nil
		}

		return encodeRoot(s, n.Elem, v.Elem())

	case schema.KindSequence:
		return encodeRootSequence(s, n, v)

	case schema.KindRecord:
		return encodeRootRecord(s, n, v)

	case schema.KindTuple:
		return encodeRootTuple(s, n, v)

	case schema.KindMap:
		return encodeRootMap(s, n, v)

	case schema.KindSum:
		return encodeRootSum(s, n, v)

	default:
		panic("encoder: unhandled schema kind " + n.Kind.String())
	}

	return nil
}

func encodeRootSequence(s *state, n *schema.Node, v reflect.Value) error {
	count := v.Len()

	switch count {
	case 0:
		s.writeByte(byte(wiretag.Array0))

		return nil
	case 1:
		s.writeByte(byte(wiretag.Array1))
	default:
		s.writeByte(byte(wiretag.ArrayN))
		s.writeCount(count)
	}

	buf := buildColBuf(n.Elem)
	for i := range count {
		buf.add(v.Index(i))
	}
	buf.flush(s)

	return nil
}

func encodeRootRecord(s *state, n *schema.Node, v reflect.Value) error {
	fieldCount := len(n.Fields)
	if fieldCount == 0 {
		s.writeByte(byte(wiretag.Void))

		return nil
	}

	if tag, ok := wiretag.ObjArityTag(fieldCount); ok {
		s.writeByte(byte(tag))
	} else {
		s.writeByte(byte(wiretag.ObjN))
		s.main = wiretag.AppendCount(s.main, fieldCount)
	}

	for _, f := range n.Fields {
		s.writeIdent(f.Name)
		if err := encodeRoot(s, f.Node, v.Field(f.Index)); err != nil {
			return err
		}
	}

	return nil
}

// tupleFieldIndices returns the reflect.StructField indices that make up a
// Tuple's positional elements, in the same declaration order build.go's
// fillStruct used to populate Node.Elems (skipping the embedded AsTuple
// marker and any unexported field).
func tupleFieldIndices(v reflect.Value) []int {
	idxs := make([]int, 0, v.NumField())
	for i := range v.NumField() {
		f := v.Type().Field(i)
		if f.Anonymous && f.Type == reflect.TypeOf(schema.AsTuple{}) {
			continue
		}
		if !f.IsExported() {
			continue
		}

		idxs = append(idxs, i)
	}

	return idxs
}

func encodeRootTuple(s *state, n *schema.Node, v reflect.Value) error {
	arity := len(n.Elems)
	fields := tupleFieldIndices(v)

	// Arity 0 degenerates to Void (no positional elements to carry); arity
	// 1 has no dedicated tag in either RootTypeId or ArrayTypeId, so a
	// one-element tuple is just its element, the same "wrapper-free
	// singleton" idiom Array1/Some(v) use elsewhere in this format.
	switch arity {
	case 0:
		s.writeByte(byte(wiretag.Void))

		return nil
	case 1:
		return encodeRoot(s, n.Elems[0], v.Field(fields[0]))
	}

	if tag, ok := wiretag.TupleArityTag(arity); ok {
		s.writeByte(byte(tag))
	} else {
		s.writeByte(byte(wiretag.TupleN))
		s.main = wiretag.AppendCount(s.main, arity)
	}

	for i, fieldIdx := range fields {
		if err := encodeRoot(s, n.Elems[i], v.Field(fieldIdx)); err != nil {
			return err
		}
	}

	return nil
}

func encodeRootMap(s *state, n *schema.Node, v reflect.Value) error {
	keys := v.MapKeys()

	switch len(keys) {
	case 0:
		s.writeByte(byte(wiretag.Map0))

		return nil
	case 1:
		s.writeByte(byte(wiretag.Map1))
		if err := encodeRoot(s, n.Key, keys[0]); err != nil {
			return err
		}

		return encodeRoot(s, n.Elem, v.MapIndex(keys[0]))
	default:
		s.writeByte(byte(wiretag.Map))
		s.writeCount(len(keys))
		for _, k := range keys {
			if err := encodeRoot(s, n.Key, k); err != nil {
				return err
			}
			if err := encodeRoot(s, n.Elem, v.MapIndex(k)); err != nil {
				return err
			}
		}

		return nil
	}
}

func encodeRootSum(s *state, n *schema.Node, v reflect.Value) error {
	s.writeByte(byte(wiretag.Enum))

	concrete := v.Elem()
	name, payloadNode := resolveVariant(concrete)

	s.writeIdent(name)

	if payloadNode.Kind == schema.KindVoid {
		s.writeByte(byte(wiretag.Void))

		return nil
	}

	return encodeRoot(s, payloadNode, concrete)
}

// resolveVariant returns the canonicalized variant name and schema.Node for
// the dynamic value held by a Sum (interface) field. The concrete type must
// implement schema.Variant.
func resolveVariant(concrete reflect.Value) (string, *schema.Node) {
	variant, ok := concrete.Interface().(schema.Variant)
	if !ok {
		panic("encoder: sum variant " + concrete.Type().String() + " does not implement schema.Variant")
	}

	name := schema.CanonicalizeIdent(variant.VariantName())

	return name, schema.OfType(concrete.Type())
}
