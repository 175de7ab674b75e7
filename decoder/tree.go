package decoder

import (
	"math"
	"reflect"

	"github.com/arloliu/colex/codecerr"
	"github.com/arloliu/colex/endian"
	"github.com/arloliu/colex/schema"
	"github.com/arloliu/colex/schemabridge"
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

var littleEndian = endian.GetLittleEndianEngine()

// decodeRootString reads a Str0..Str3/Str-tagged string given its
// already-consumed tag byte.
func decodeRootString(c *cursor, tag wiretag.RootTypeId) (string, error) {
	switch tag {
	case wiretag.Str0:
		return "", nil
	case wiretag.Str1:
		b, err := c.readBytes(1)
		if err != nil {
			return "", err
		}

		return string(b), nil
	case wiretag.Str2:
		b, err := c.readBytes(2)
		if err != nil {
			return "", err
		}

		return string(b), nil
	case wiretag.Str3:
		b, err := c.readBytes(3)
		if err != nil {
			return "", err
		}

		return string(b), nil
	case wiretag.Str:
		l, err := c.readCount()
		if err != nil {
			return "", err
		}
		b, err := c.readBytes(l)
		if err != nil {
			return "", err
		}

		return string(b), nil
	default:
		return "", codecerr.SchemaMismatch
	}
}

// readIdent reads a canonicalized identifier, using the same inline string
// shapes as any root-context string.
func readIdent(c *cursor) (string, error) {
	tagByte, err := c.readByte()
	if err != nil {
		return "", err
	}

	return decodeRootString(c, wiretag.RootTypeId(tagByte))
}

// intRootTags maps a fixed-width Integer tag to its {bits, signed} shape.
var intRootTags = map[wiretag.RootTypeId][2]int{
	wiretag.IntU8: {8, 0}, wiretag.IntU16: {16, 0}, wiretag.IntU32: {32, 0}, wiretag.IntU64: {64, 0},
	wiretag.IntS8: {8, 1}, wiretag.IntS16: {16, 1}, wiretag.IntS32: {32, 1}, wiretag.IntS64: {64, 1},
}

func signExtend(u uint64, bits int) int64 {
	switch bits {
	case 8:
		return int64(int8(u))
	case 16:
		return int64(int16(u))
	case 32:
		return int64(int32(u))
	default:
		return int64(u) //nolint:gosec
	}
}

// decodeLiteralNumber handles the Zero/One/NegOne shortcuts, which carry no
// width of their own and so map onto any numeric target per the Schema
// Bridge's literal-widening rule.
func decodeLiteralNumber(tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	switch n.Kind {
	case schema.KindFloat:
		var f float64
		switch tag {
		case wiretag.Zero:
			f = 0
		case wiretag.One:
			f = 1
		case wiretag.NegOne:
			f = -1
		default:
			return reflect.Value{}, codecerr.SchemaMismatch
		}

		return reflect.ValueOf(f).Convert(n.GoType), nil

	case schema.KindInteger:
		switch tag {
		case wiretag.Zero:
			if n.IntSigned {
				return reflect.ValueOf(int64(0)).Convert(n.GoType), nil
			}

			return reflect.ValueOf(uint64(0)).Convert(n.GoType), nil
		case wiretag.One:
			if n.IntSigned {
				return reflect.ValueOf(int64(1)).Convert(n.GoType), nil
			}

			return reflect.ValueOf(uint64(1)).Convert(n.GoType), nil
		case wiretag.NegOne:
			v, ok := schemabridge.NegOneFor(n.IntSigned)
			if !ok {
				return reflect.Value{}, codecerr.SchemaMismatch
			}

			return reflect.ValueOf(v).Convert(n.GoType), nil
		default:
			return reflect.Value{}, codecerr.SchemaMismatch
		}

	default:
		return reflect.Value{}, codecerr.SchemaMismatch
	}
}

// decodeFixedInt reads a fixed-width Integer tag's payload and widens it
// into n's declared width/sign via the schemabridge rules.
func decodeFixedInt(c *cursor, tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	if n.Kind != schema.KindInteger {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	shape, ok := intRootTags[tag]
	if !ok {
		return reflect.Value{}, codecerr.SchemaMismatch
	}
	bits, producerSigned := shape[0], shape[1] == 1

	raw, err := c.readBytes(bits / 8)
	if err != nil {
		return reflect.Value{}, err
	}

	u, ok := varint.ReadFixedUint(raw, littleEndian, bits/8)
	if !ok {
		return reflect.Value{}, codecerr.EndOfFile
	}

	switch {
	case producerSigned && n.IntSigned:
		v, err := schemabridge.WidenSignedInt(signExtend(u, bits), bits, n.IntBits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(v).Convert(n.GoType), nil

	case !producerSigned && !n.IntSigned:
		v, err := schemabridge.WidenUnsignedInt(u, bits, n.IntBits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(v).Convert(n.GoType), nil

	case !producerSigned && n.IntSigned:
		v, err := schemabridge.WidenUnsignedToSignedInt(u, bits, n.IntBits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(v).Convert(n.GoType), nil

	default: // producerSigned && !n.IntSigned
		v, err := schemabridge.WidenSignedToUnsignedInt(signExtend(u, bits), bits, n.IntBits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(v).Convert(n.GoType), nil
	}
}

// decodeFloat reads an F32/F64/NaN tag's payload and widens it into n's
// declared float width.
func decodeFloat(c *cursor, tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	if n.Kind != schema.KindFloat {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	switch tag {
	case wiretag.NaN:
		return reflect.ValueOf(math.NaN()).Convert(n.GoType), nil

	case wiretag.F32:
		raw, err := c.readBytes(4)
		if err != nil {
			return reflect.Value{}, err
		}
		f, ok := varint.ReadFixedFloat32(raw, littleEndian)
		if !ok {
			return reflect.Value{}, codecerr.EndOfFile
		}
		v, err := schemabridge.WidenFloat(float64(f), 32, n.FloatBits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(v).Convert(n.GoType), nil

	case wiretag.F64:
		raw, err := c.readBytes(8)
		if err != nil {
			return reflect.Value{}, err
		}
		f, ok := varint.ReadFixedFloat64(raw, littleEndian)
		if !ok {
			return reflect.Value{}, codecerr.EndOfFile
		}
		v, err := schemabridge.WidenFloat(f, 64, n.FloatBits)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(v).Convert(n.GoType), nil

	default:
		return reflect.Value{}, codecerr.SchemaMismatch
	}
}

// tupleGoFieldIndices is tupleFieldIndices' type-only counterpart, used when
// constructing a fresh struct rather than walking an existing one.
func tupleGoFieldIndices(t reflect.Type) []int {
	idxs := make([]int, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
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

// decodeRoot reads one root-context value and builds a reflect.Value of
// n.GoType, applying the Schema Bridge rules along the way.
func decodeRoot(c *cursor, n *schema.Node) (reflect.Value, error) {
	tagByte, err := c.readByte()
	if err != nil {
		return reflect.Value{}, err
	}

	return decodeRootTagged(c, wiretag.RootTypeId(tagByte), n)
}

func decodeRootTagged(c *cursor, tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	// Optional: None is the bare Void tag; Some(v) is v's own tag with no
	// wrapper, so an already-read non-Void tag belongs to the Elem. A
	// non-optional producer value decoded into an optional target is
	// always wrapped as Some, per the Optional-upgrade bridge rule.
	if n.Kind == schema.KindOptional {
		if tag == wiretag.Void {
			return reflect.Zero(n.GoType), nil
		}

		elem, err := decodeRootTagged(c, tag, n.Elem)
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(n.Elem.GoType)
		ptr.Elem().Set(elem)

		return ptr, nil
	}

	// A one-element tuple is written as its sole element with no wrapper
	// tag (see encodeRootTuple), so the already-read tag belongs to it.
	if n.Kind == schema.KindTuple && len(n.Elems) == 1 {
		elem, err := decodeRootTagged(c, tag, n.Elems[0])
		if err != nil {
			return reflect.Value{}, err
		}
		result := reflect.New(n.GoType).Elem()
		result.Field(tupleGoFieldIndices(n.GoType)[0]).Set(elem)

		return result, nil
	}

	switch tag {
	case wiretag.Void:
		return reflect.Zero(n.GoType), nil

	case wiretag.True, wiretag.False:
		if n.Kind != schema.KindBoolean {
			return reflect.Value{}, codecerr.SchemaMismatch
		}

		return reflect.ValueOf(tag == wiretag.True).Convert(n.GoType), nil

	case wiretag.Zero, wiretag.One, wiretag.NegOne:
		return decodeLiteralNumber(tag, n)

	case wiretag.IntU8, wiretag.IntU16, wiretag.IntU32, wiretag.IntU64,
		wiretag.IntS8, wiretag.IntS16, wiretag.IntS32, wiretag.IntS64:
		return decodeFixedInt(c, tag, n)

	case wiretag.F32, wiretag.F64, wiretag.NaN:
		return decodeFloat(c, tag, n)

	case wiretag.Str0, wiretag.Str1, wiretag.Str2, wiretag.Str3, wiretag.Str:
		if n.Kind != schema.KindString {
			return reflect.Value{}, codecerr.SchemaMismatch
		}
		s, err := decodeRootString(c, tag)
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(s).Convert(n.GoType), nil

	case wiretag.Tuple2, wiretag.Tuple3, wiretag.Tuple4, wiretag.Tuple5,
		wiretag.Tuple6, wiretag.Tuple7, wiretag.Tuple8, wiretag.TupleN:
		return decodeRootTuple(c, tag, n)

	case wiretag.Obj1, wiretag.Obj2, wiretag.Obj3, wiretag.Obj4, wiretag.Obj5,
		wiretag.Obj6, wiretag.Obj7, wiretag.Obj8, wiretag.ObjN:
		return decodeRootRecord(c, tag, n)

	case wiretag.Array0, wiretag.Array1, wiretag.ArrayN:
		return decodeRootSequence(c, tag, n)

	case wiretag.Map0, wiretag.Map1, wiretag.Map:
		return decodeRootMap(c, tag, n)

	case wiretag.Enum:
		return decodeRootSum(c, n)

	default:
		return reflect.Value{}, codecerr.UnrecognizedTypeId
	}
}

var tupleArities = map[wiretag.RootTypeId]int{
	wiretag.Tuple2: 2, wiretag.Tuple3: 3, wiretag.Tuple4: 4, wiretag.Tuple5: 5,
	wiretag.Tuple6: 6, wiretag.Tuple7: 7, wiretag.Tuple8: 8,
}

// decodeRootTuple handles arity 2..8 and TupleN tags. Arity 0 and arity 1
// never reach here: an empty tuple is written as Void and decoded by
// decodeRootTagged's Void branch, and a one-element tuple is written as its
// sole element's own tag, which decodeRootTagged unwraps into the
// one-field struct before its tag switch.
func decodeRootTuple(c *cursor, tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	if n.Kind != schema.KindTuple {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	arity, ok := tupleArities[tag]
	if !ok {
		a, err := c.readArityCount()
		if err != nil {
			return reflect.Value{}, err
		}
		arity = a
	}

	if arity != len(n.Elems) {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	result := reflect.New(n.GoType).Elem()
	idxs := tupleGoFieldIndices(n.GoType)

	for i, elemNode := range n.Elems {
		v, err := decodeRoot(c, elemNode)
		if err != nil {
			return reflect.Value{}, err
		}
		result.Field(idxs[i]).Set(v)
	}

	return result, nil
}

var objArities = map[wiretag.RootTypeId]int{
	wiretag.Obj1: 1, wiretag.Obj2: 2, wiretag.Obj3: 3, wiretag.Obj4: 4,
	wiretag.Obj5: 5, wiretag.Obj6: 6, wiretag.Obj7: 7, wiretag.Obj8: 8,
}

// decodeRootRecord applies the Record field addition/removal bridge rules:
// a target field absent from the producer keeps its decoder-side zero
// value; a producer field absent from the target is read structurally and
// discarded.
func decodeRootRecord(c *cursor, tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	if n.Kind != schema.KindRecord {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	fieldCount, ok := objArities[tag]
	if !ok {
		fc, err := c.readArityCount()
		if err != nil {
			return reflect.Value{}, err
		}
		fieldCount = fc
	}

	targetByName := make(map[string]schema.Field, len(n.Fields))
	for _, f := range n.Fields {
		targetByName[f.Name] = f
	}

	result := reflect.New(n.GoType).Elem()

	seen := make(map[string]struct{}, fieldCount)
	for range fieldCount {
		name, err := readIdent(c)
		if err != nil {
			return reflect.Value{}, err
		}
		if _, dup := seen[name]; dup {
			return reflect.Value{}, codecerr.DuplicateIdent
		}
		seen[name] = struct{}{}

		if f, ok := targetByName[name]; ok {
			v, err := decodeRoot(c, f.Node)
			if err != nil {
				return reflect.Value{}, err
			}
			result.Field(f.Index).Set(v)

			continue
		}

		if err := skipRoot(c); err != nil {
			return reflect.Value{}, err
		}
	}

	return result, nil
}

// decodeRootSequence applies the sequence fixed/variable acceptance rule: a
// target Array of static length FixedLen requires the actual count equal
// FixedLen; a target slice accepts any count.
func decodeRootSequence(c *cursor, tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	if n.Kind != schema.KindSequence {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	var count int
	switch tag {
	case wiretag.Array0:
		count = 0
	case wiretag.Array1:
		count = 1
	default: // ArrayN
		c2, err := c.readCount()
		if err != nil {
			return reflect.Value{}, err
		}
		count = c2
	}

	if n.FixedLen >= 0 && count != n.FixedLen {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	if count == 0 {
		return makeSequence(n, 0), nil
	}

	values, err := decodeColumn(c, n.Elem, count)
	if err != nil {
		return reflect.Value{}, err
	}

	result := makeSequence(n, count)
	for i, v := range values {
		result.Index(i).Set(v)
	}

	return result, nil
}

func makeSequence(n *schema.Node, count int) reflect.Value {
	if n.GoType.Kind() == reflect.Array {
		return reflect.New(n.GoType).Elem()
	}

	return reflect.MakeSlice(n.GoType, count, count)
}

func decodeRootMap(c *cursor, tag wiretag.RootTypeId, n *schema.Node) (reflect.Value, error) {
	if n.Kind != schema.KindMap {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	result := reflect.MakeMap(n.GoType)

	switch tag {
	case wiretag.Map0:
		return result, nil
	case wiretag.Map1:
		k, err := decodeRoot(c, n.Key)
		if err != nil {
			return reflect.Value{}, err
		}
		v, err := decodeRoot(c, n.Elem)
		if err != nil {
			return reflect.Value{}, err
		}
		result.SetMapIndex(k, v)

		return result, nil
	default: // Map
		count, err := c.readCount()
		if err != nil {
			return reflect.Value{}, err
		}
		for range count {
			k, err := decodeRoot(c, n.Key)
			if err != nil {
				return reflect.Value{}, err
			}
			v, err := decodeRoot(c, n.Elem)
			if err != nil {
				return reflect.Value{}, err
			}
			result.SetMapIndex(k, v)
		}

		return result, nil
	}
}

// decodeRootSum applies the Sum variant-matching rule: an unrecognized
// discriminant identifier is a SchemaMismatch.
func decodeRootSum(c *cursor, n *schema.Node) (reflect.Value, error) {
	if n.Kind != schema.KindSum {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	name, err := readIdent(c)
	if err != nil {
		return reflect.Value{}, err
	}

	concreteType, ok := schema.LookupVariant(n.GoType, name)
	if !ok {
		return reflect.Value{}, codecerr.SchemaMismatch
	}

	payloadNode := schema.OfType(concreteType)

	concrete, err := decodeRoot(c, payloadNode)
	if err != nil {
		return reflect.Value{}, err
	}

	iface := reflect.New(n.GoType).Elem()
	iface.Set(concrete)

	return iface, nil
}
