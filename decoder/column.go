package decoder

import (
	"reflect"

	"github.com/arloliu/colex/codecerr"
	"github.com/arloliu/colex/column"
	"github.com/arloliu/colex/schema"
	"github.com/arloliu/colex/schemabridge"
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// decodeColumn reads one array-context column of count logical elements
// described by n, returning one reflect.Value per element (each already
// Convertible to n.GoType). Composite tags (Nullable, ArrayFixed/Var,
// ObjN/TupleN, Map, Enum) recurse; leaf tags dispatch into the column
// package's per-kind candidate decoders.
//
// Array-context Integer/columns carry no producer-sign marker of their
// own (unlike root-context scalars, where IntU8 vs IntS8 discloses it):
// the zigzag-vs-raw storage choice is made purely from the node that built
// the column. Cross-sign Schema Bridge widening is therefore only applied
// at root-context leaves; array-context leaves decode assuming the
// producer's declared sign/width matches the target's (true for the
// common same-type round trip this format exists to serve) — see
// DESIGN.md.
func decodeColumn(c *cursor, n *schema.Node, count int) ([]reflect.Value, error) {
	// A Void-kind column (a zero-field record's own column, or a Sum's
	// Void-variant sub-column read through the generic path) writes no
	// tag byte at all outside the Sum-variant marker context — see
	// decodeSumColumn, which handles AVoid itself before ever reaching
	// here.
	if n.Kind == schema.KindVoid {
		out := make([]reflect.Value, count)
		for i := range out {
			out[i] = reflect.Zero(n.GoType)
		}

		return out, nil
	}

	tagByte, err := c.readByte()
	if err != nil {
		return nil, err
	}

	return decodeColumnTagged(c, wiretag.ArrayTypeId(tagByte), n, count)
}

func decodeColumnTagged(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	if n.Kind == schema.KindOptional {
		return decodeNullableColumn(c, tag, n, count)
	}

	switch n.Kind {
	case schema.KindVoid:
		out := make([]reflect.Value, count)
		for i := range out {
			out[i] = reflect.Zero(n.GoType)
		}

		return out, nil

	case schema.KindBoolean:
		payload, err := c.readColumn()
		if err != nil {
			return nil, err
		}
		values, ok := column.DecodeBoolean(tag, payload, count)
		if !ok {
			return nil, codecerr.InvalidFormat
		}

		return convertEach(values, n.GoType), nil

	case schema.KindString:
		payload, err := c.readColumn()
		if err != nil {
			return nil, err
		}
		values, ok := column.DecodeString(tag, payload, count)
		if !ok {
			return nil, codecerr.InvalidFormat
		}

		return convertEach(values, n.GoType), nil

	case schema.KindInteger:
		payload, err := c.readColumn()
		if err != nil {
			return nil, err
		}
		raw, ok := column.DecodeInteger(tag, payload, count)
		if !ok {
			return nil, codecerr.InvalidFormat
		}

		out := make([]reflect.Value, count)
		for i, u := range raw {
			if n.IntSigned {
				out[i] = reflect.ValueOf(varint.ZigZagDecode(u)).Convert(n.GoType)
			} else {
				out[i] = reflect.ValueOf(u).Convert(n.GoType)
			}
		}

		return out, nil

	case schema.KindFloat:
		return decodeFloatColumn(c, tag, n, count)

	case schema.KindSequence:
		return decodeNestedSequenceColumn(c, tag, n, count)

	case schema.KindRecord:
		return decodeRecordColumn(c, tag, n, count)

	case schema.KindTuple:
		return decodeTupleColumn(c, tag, n, count)

	case schema.KindMap:
		return decodeMapColumn(c, tag, n, count)

	case schema.KindSum:
		return decodeSumColumn(c, tag, n, count)

	default:
		return nil, codecerr.SchemaMismatch
	}
}

func convertEach[T any](values []T, t reflect.Type) []reflect.Value {
	out := make([]reflect.Value, len(values))
	for i, v := range values {
		out[i] = reflect.ValueOf(v).Convert(t)
	}

	return out
}

func decodeFloatColumn(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	payload, err := c.readColumn()
	if err != nil {
		return nil, err
	}

	out := make([]reflect.Value, count)

	switch tag {
	case wiretag.AF32, wiretag.AZfp32:
		raw, ok := column.DecodeFloat32(tag, payload, count)
		if !ok {
			return nil, codecerr.InvalidFormat
		}
		for i, f := range raw {
			v, err := schemabridge.WidenFloat(float64(f), 32, n.FloatBits)
			if err != nil {
				return nil, err
			}
			out[i] = reflect.ValueOf(v).Convert(n.GoType)
		}
	default: // AF64, ADoubleGorilla, AZfp64
		raw, ok := column.DecodeFloat64(tag, payload, count)
		if !ok {
			return nil, codecerr.InvalidFormat
		}
		for i, f := range raw {
			v, err := schemabridge.WidenFloat(f, 64, n.FloatBits)
			if err != nil {
				return nil, err
			}
			out[i] = reflect.ValueOf(v).Convert(n.GoType)
		}
	}

	return out, nil
}

// decodeNullableColumn handles both the Nullable producer shape (a presence
// boolean sub-column followed by an inner column over only the present
// positions) and the Optional-upgrade shape (a non-optional producer column
// decoded wholesale into an Optional target, always Some).
func decodeNullableColumn(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	if tag != wiretag.ANullable {
		elems, err := decodeColumnTagged(c, tag, n.Elem, count)
		if err != nil {
			return nil, err
		}
		out := make([]reflect.Value, count)
		for i, e := range elems {
			ptr := reflect.New(n.Elem.GoType)
			ptr.Elem().Set(e)
			out[i] = ptr
		}

		return out, nil
	}

	presenceTagByte, err := c.readByte()
	if err != nil {
		return nil, err
	}
	presencePayload, err := c.readColumn()
	if err != nil {
		return nil, err
	}
	presence, ok := column.DecodeBoolean(wiretag.ArrayTypeId(presenceTagByte), presencePayload, count)
	if !ok {
		return nil, codecerr.InvalidFormat
	}

	presentCount := 0
	for _, p := range presence {
		if p {
			presentCount++
		}
	}

	inner, err := decodeColumn(c, n.Elem, presentCount)
	if err != nil {
		return nil, err
	}

	out := make([]reflect.Value, count)
	j := 0
	for i, p := range presence {
		if !p {
			out[i] = reflect.Zero(n.GoType)

			continue
		}
		ptr := reflect.New(n.Elem.GoType)
		ptr.Elem().Set(inner[j])
		out[i] = ptr
		j++
	}

	return out, nil
}

// decodeNestedSequenceColumn handles a column whose elements are themselves
// sequences (array-of-arrays), both the ArrayFixed (uniform length,
// literal count) and ArrayVar (per-occurrence lengths as a leaf Integer
// column) shapes.
func decodeNestedSequenceColumn(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	switch tag {
	case wiretag.AArrayFixed:
		fixedLen, err := c.readCount()
		if err != nil {
			return nil, err
		}
		if n.FixedLen >= 0 && fixedLen != n.FixedLen {
			return nil, codecerr.SchemaMismatch
		}

		flat, err := decodeColumn(c, n.Elem, count*fixedLen)
		if err != nil {
			return nil, err
		}

		out := make([]reflect.Value, count)
		for i := range count {
			out[i] = makeSequence(n, fixedLen)
			for j := range fixedLen {
				out[i].Index(j).Set(flat[i*fixedLen+j])
			}
		}

		return out, nil

	case wiretag.AArrayVar:
		countsTagByte, err := c.readByte()
		if err != nil {
			return nil, err
		}
		countsPayload, err := c.readColumn()
		if err != nil {
			return nil, err
		}
		outerCounts, ok := column.DecodeInteger(wiretag.ArrayTypeId(countsTagByte), countsPayload, count)
		if !ok {
			return nil, codecerr.InvalidFormat
		}

		total := 0
		for _, oc := range outerCounts {
			total += int(oc)
		}

		flat, err := decodeColumn(c, n.Elem, total)
		if err != nil {
			return nil, err
		}

		out := make([]reflect.Value, count)
		off := 0
		for i, oc := range outerCounts {
			l := int(oc)
			if n.FixedLen >= 0 && l != n.FixedLen {
				return nil, codecerr.SchemaMismatch
			}
			out[i] = makeSequence(n, l)
			for j := range l {
				out[i].Index(j).Set(flat[off+j])
			}
			off += l
		}

		return out, nil

	default:
		return nil, codecerr.SchemaMismatch
	}
}

var arrayObjArities = map[wiretag.ArrayTypeId]int{
	wiretag.AObj0: 0, wiretag.AObj1: 1, wiretag.AObj2: 2, wiretag.AObj3: 3,
	wiretag.AObj4: 4, wiretag.AObj5: 5, wiretag.AObj6: 6, wiretag.AObj7: 7, wiretag.AObj8: 8,
}

// decodeRecordColumn reverses recordColBuf.flush: the field identifiers and
// their per-field columns appear in the producer's field order, which need
// not match the target's.
func decodeRecordColumn(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	if n.Kind != schema.KindRecord {
		return nil, codecerr.SchemaMismatch
	}

	fieldCount, ok := arrayObjArities[tag]
	if !ok {
		fc, err := c.readArityCount()
		if err != nil {
			return nil, err
		}
		fieldCount = fc
	}

	targetByName := make(map[string]schema.Field, len(n.Fields))
	for _, f := range n.Fields {
		targetByName[f.Name] = f
	}

	results := make([]reflect.Value, count)
	for i := range results {
		results[i] = reflect.New(n.GoType).Elem()
	}

	seen := make(map[string]struct{}, fieldCount)
	for range fieldCount {
		name, err := readIdent(c)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, codecerr.DuplicateIdent
		}
		seen[name] = struct{}{}

		if f, ok := targetByName[name]; ok {
			values, err := decodeColumn(c, f.Node, count)
			if err != nil {
				return nil, err
			}
			for i, v := range values {
				results[i].Field(f.Index).Set(v)
			}

			continue
		}

		if err := skipColumn(c, count); err != nil {
			return nil, err
		}
	}

	return results, nil
}

var arrayTupleArities = map[wiretag.ArrayTypeId]int{
	wiretag.ATuple2: 2, wiretag.ATuple3: 3, wiretag.ATuple4: 4, wiretag.ATuple5: 5,
	wiretag.ATuple6: 6, wiretag.ATuple7: 7, wiretag.ATuple8: 8,
}

func decodeTupleColumn(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	if n.Kind != schema.KindTuple {
		return nil, codecerr.SchemaMismatch
	}

	arity, ok := arrayTupleArities[tag]
	if !ok {
		a, err := c.readArityCount()
		if err != nil {
			return nil, err
		}
		arity = a
	}

	if arity != len(n.Elems) {
		return nil, codecerr.SchemaMismatch
	}

	idxs := tupleGoFieldIndices(n.GoType)
	results := make([]reflect.Value, count)
	for i := range results {
		results[i] = reflect.New(n.GoType).Elem()
	}

	for pos, elemNode := range n.Elems {
		values, err := decodeColumn(c, elemNode, count)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			results[i].Field(idxs[pos]).Set(v)
		}
	}

	return results, nil
}

func decodeMapColumn(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	if n.Kind != schema.KindMap || tag != wiretag.AMap {
		return nil, codecerr.SchemaMismatch
	}

	countsTagByte, err := c.readByte()
	if err != nil {
		return nil, err
	}
	countsPayload, err := c.readColumn()
	if err != nil {
		return nil, err
	}
	pairCounts, ok := column.DecodeInteger(wiretag.ArrayTypeId(countsTagByte), countsPayload, count)
	if !ok {
		return nil, codecerr.InvalidFormat
	}

	total := 0
	for _, pc := range pairCounts {
		total += int(pc)
	}

	keys, err := decodeColumn(c, n.Key, total)
	if err != nil {
		return nil, err
	}
	vals, err := decodeColumn(c, n.Elem, total)
	if err != nil {
		return nil, err
	}

	out := make([]reflect.Value, count)
	off := 0
	for i, pc := range pairCounts {
		m := reflect.MakeMap(n.GoType)
		for range int(pc) {
			m.SetMapIndex(keys[off], vals[off])
			off++
		}
		out[i] = m
	}

	return out, nil
}

func decodeSumColumn(c *cursor, tag wiretag.ArrayTypeId, n *schema.Node, count int) ([]reflect.Value, error) {
	if n.Kind != schema.KindSum || tag != wiretag.AEnum {
		return nil, codecerr.SchemaMismatch
	}

	variantCount, err := c.readCount()
	if err != nil {
		return nil, err
	}

	discTagByte, err := c.readByte()
	if err != nil {
		return nil, err
	}
	discPayload, err := c.readColumn()
	if err != nil {
		return nil, err
	}
	disc, ok := column.DecodeInteger(wiretag.ArrayTypeId(discTagByte), discPayload, count)
	if !ok {
		return nil, codecerr.InvalidFormat
	}

	variantCounts := make([]int, variantCount)
	for _, d := range disc {
		if d >= uint64(variantCount) {
			return nil, codecerr.InvalidFormat
		}
		variantCounts[d]++
	}

	names := make([]string, variantCount)
	values := make([][]reflect.Value, variantCount)
	types := make([]reflect.Type, variantCount)

	seenNames := make(map[string]struct{}, variantCount)
	for i := range variantCount {
		name, err := readIdent(c)
		if err != nil {
			return nil, err
		}
		if _, dup := seenNames[name]; dup {
			return nil, codecerr.DuplicateIdent
		}
		seenNames[name] = struct{}{}
		names[i] = name

		concreteType, ok := schema.LookupVariant(n.GoType, name)
		if !ok {
			return nil, codecerr.SchemaMismatch
		}
		types[i] = concreteType
		payloadNode := schema.OfType(concreteType)

		voidTagByte, err := c.readByte()
		if err != nil {
			return nil, err
		}

		if wiretag.ArrayTypeId(voidTagByte) == wiretag.AVoid && payloadNode.Kind == schema.KindVoid {
			values[i] = make([]reflect.Value, variantCounts[i])
			for j := range values[i] {
				values[i][j] = reflect.Zero(concreteType)
			}

			continue
		}

		vs, err := decodeColumnTagged(c, wiretag.ArrayTypeId(voidTagByte), payloadNode, variantCounts[i])
		if err != nil {
			return nil, err
		}
		values[i] = vs
	}

	cursors := make([]int, variantCount)
	out := make([]reflect.Value, count)
	for i, d := range disc {
		concrete := values[d][cursors[d]]
		cursors[d]++

		iface := reflect.New(n.GoType).Elem()
		iface.Set(concrete)
		out[i] = iface
	}

	return out, nil
}
