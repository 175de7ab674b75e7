package encoder

import (
	"reflect"

	"github.com/arloliu/colex/column"
	"github.com/arloliu/colex/schema"
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// colNode accumulates one array-context column's values while a Sequence is
// being walked, then flushes the chosen candidate encoding's tag and
// payload to state once the full column is known. One colNode tree is built
// per array-context entry (buildColBuf), mirroring the teacher's
// buffer-then-flush blob lifecycle at the granularity of a single column
// instead of a whole metric stream.
type colNode interface {
	add(v reflect.Value)
	flush(s *state)
}

// buildColBuf constructs the colNode tree for one array context, rooted at
// the Sequence element's (or Record/Tuple/Map/Sum field's) schema Node.
func buildColBuf(n *schema.Node) colNode {
	switch n.Kind {
	case schema.KindInteger:
		return &intColBuf{node: n}
	case schema.KindFloat:
		return &floatColBuf{node: n}
	case schema.KindBoolean:
		return &boolColBuf{}
	case schema.KindString:
		return &stringColBuf{}
	case schema.KindOptional:
		return &optionalColBuf{elem: n.Elem}
	case schema.KindSequence:
		return &seqColBuf{elemNode: n.Elem}
	case schema.KindRecord:
		return newRecordColBuf(n)
	case schema.KindTuple:
		return newTupleColBuf(n)
	case schema.KindMap:
		return &mapColBuf{keyNode: n.Key, valNode: n.Elem}
	case schema.KindSum:
		return &sumColBuf{variants: map[string]colNode{}}
	case schema.KindVoid:
		return voidColBuf{}
	default:
		panic("encoder: unhandled column kind " + n.Kind.String())
	}
}

// voidColBuf backs a column of zero-field records: nothing to buffer or
// flush, since a Void column carries no values at all.
type voidColBuf struct{}

func (voidColBuf) add(reflect.Value) {}
func (voidColBuf) flush(*state)      {}

// intColBuf buffers an Integer column, zigzag-mapping signed values to
// uint64 at add() time so the buffered slice is always the column package's
// native uint64 shape.
type intColBuf struct {
	node   *schema.Node
	values []uint64
}

func (b *intColBuf) add(v reflect.Value) {
	if b.node.IntSigned {
		b.values = append(b.values, varint.ZigZagEncode(v.Int()))
	} else {
		b.values = append(b.values, v.Uint())
	}
}

func (b *intColBuf) flush(s *state) {
	tag, payload := column.SelectInteger(b.values)
	s.writeByte(byte(tag))
	s.writeBytes(payload)
	s.recordLen(len(payload))
}

// floatColBuf buffers a Float column as float64 regardless of the schema's
// declared bit width, downcasting to float32 only at flush time so 32-bit
// Gorilla/Zfp candidates see genuine float32 rounding.
type floatColBuf struct {
	node   *schema.Node
	values []float64
}

func (b *floatColBuf) add(v reflect.Value) { b.values = append(b.values, v.Float()) }

func (b *floatColBuf) flush(s *state) {
	var tag wiretag.ArrayTypeId
	var payload []byte

	if b.node.FloatBits == 32 {
		values32 := make([]float32, len(b.values))
		for i, f := range b.values {
			values32[i] = float32(f)
		}
		tag, payload = column.SelectFloat32(values32, s.lossyFloatTolerance)
	} else {
		tag, payload = column.SelectFloat64(b.values, s.lossyFloatTolerance)
	}

	s.writeByte(byte(tag))
	s.writeBytes(payload)
	s.recordLen(len(payload))
}

type boolColBuf struct {
	values []bool
}

func (b *boolColBuf) add(v reflect.Value) { b.values = append(b.values, v.Bool()) }

func (b *boolColBuf) flush(s *state) {
	tag, payload := column.SelectBoolean(b.values)
	s.writeByte(byte(tag))
	s.writeBytes(payload)
	s.recordLen(len(payload))
}

type stringColBuf struct {
	values []string
}

func (b *stringColBuf) add(v reflect.Value) { b.values = append(b.values, v.String()) }

func (b *stringColBuf) flush(s *state) {
	tag, payload := column.SelectString(b.values)
	s.writeByte(byte(tag))
	s.writeBytes(payload)
	s.recordLen(len(payload))
}

// optionalColBuf flushes a Nullable column as a presence boolean sub-column
// (true = present) followed by the inner element's own column, populated
// only from the present positions. Two nested primitive flushes, so two
// lens entries, per Nullable column.
type optionalColBuf struct {
	elem     *schema.Node
	presence []bool
	inner    colNode
}

func (b *optionalColBuf) add(v reflect.Value) {
	present := !v.IsNil()
	b.presence = append(b.presence, present)

	if present {
		if b.inner == nil {
			b.inner = buildColBuf(b.elem)
		}
		b.inner.add(v.Elem())
	}
}

func (b *optionalColBuf) flush(s *state) {
	s.writeByte(byte(wiretag.ANullable))

	presenceBuf := &boolColBuf{values: b.presence}
	presenceBuf.flush(s)

	if b.inner == nil {
		b.inner = buildColBuf(b.elem)
	}
	b.inner.flush(s)
}

// seqColBuf backs a column whose elements are themselves sequences (nested
// arrays). If every occurrence has the same length the column is emitted as
// ArrayFixed (one scalar header, no lens entry of its own); otherwise it is
// ArrayVar, with the per-occurrence lengths as a genuine leaf Integer
// column.
type seqColBuf struct {
	elemNode    *schema.Node
	outerCounts []int
	fixedLen    int
	allSame     bool
	first       bool
	elemBuf     colNode
}

func (b *seqColBuf) add(v reflect.Value) {
	n := v.Len()
	if !b.first {
		b.first = true
		b.fixedLen = n
		b.allSame = true
	} else if n != b.fixedLen {
		b.allSame = false
	}
	b.outerCounts = append(b.outerCounts, n)

	if b.elemBuf == nil {
		b.elemBuf = buildColBuf(b.elemNode)
	}
	for i := range n {
		b.elemBuf.add(v.Index(i))
	}
}

func (b *seqColBuf) flush(s *state) {
	if b.elemBuf == nil {
		b.elemBuf = buildColBuf(b.elemNode)
	}

	if b.allSame {
		s.writeByte(byte(wiretag.AArrayFixed))
		s.writeCount(b.fixedLen)
		b.elemBuf.flush(s)

		return
	}

	s.writeByte(byte(wiretag.AArrayVar))

	counts := make([]uint64, len(b.outerCounts))
	for i, c := range b.outerCounts {
		counts[i] = uint64(c)
	}
	countsBuf := &intColBuf{node: &schema.Node{Kind: schema.KindInteger, IntBits: 64, IntSigned: false}, values: counts}
	countsBuf.flush(s)

	b.elemBuf.flush(s)
}

// recordColBuf transposes a column of structs into struct-of-arrays: each
// field's canonicalized identifier is written once (schema-level, not once
// per record), followed by that field's own column flushed over the whole
// outer length.
type recordColBuf struct {
	node   *schema.Node
	fields []colNode
}

func newRecordColBuf(n *schema.Node) *recordColBuf {
	b := &recordColBuf{node: n, fields: make([]colNode, len(n.Fields))}
	for i, f := range n.Fields {
		b.fields[i] = buildColBuf(f.Node)
	}

	return b
}

func (b *recordColBuf) add(v reflect.Value) {
	for i, f := range b.node.Fields {
		b.fields[i].add(v.Field(f.Index))
	}
}

func (b *recordColBuf) flush(s *state) {
	fieldCount := len(b.node.Fields)
	if tag, ok := wiretag.ArrayObjArityTag(fieldCount); ok {
		s.writeByte(byte(tag))
	} else {
		s.writeByte(byte(wiretag.AObjN))
		s.main = wiretag.AppendCount(s.main, fieldCount)
	}

	for i, f := range b.node.Fields {
		s.writeIdent(f.Name)
		b.fields[i].flush(s)
	}
}

// tupleColBuf is recordColBuf's positional analogue: no identifiers, one
// column per element position.
type tupleColBuf struct {
	node []colNode
}

func newTupleColBuf(n *schema.Node) *tupleColBuf {
	b := &tupleColBuf{node: make([]colNode, len(n.Elems))}
	for i, e := range n.Elems {
		b.node[i] = buildColBuf(e)
	}

	return b
}

func (b *tupleColBuf) add(v reflect.Value) {
	idxs := tupleFieldIndices(v)
	for i, fieldIdx := range idxs {
		b.node[i].add(v.Field(fieldIdx))
	}
}

func (b *tupleColBuf) flush(s *state) {
	arity := len(b.node)
	if tag, ok := wiretag.ArrayTupleArityTag(arity); ok {
		s.writeByte(byte(tag))
	} else {
		s.writeByte(byte(wiretag.ATupleN))
		s.main = wiretag.AppendCount(s.main, arity)
	}

	for _, f := range b.node {
		f.flush(s)
	}
}

// mapColBuf backs a column of maps: a pairs-per-map leaf Integer column
// plus flattened key and value columns across every pair of every map, in
// iteration order. The AMap0 always-empty-map shortcut tag is deliberately
// not wired — see DESIGN.md.
type mapColBuf struct {
	keyNode, valNode *schema.Node
	counts           []uint64
	keyBuf, valBuf   colNode
}

func (b *mapColBuf) add(v reflect.Value) {
	keys := v.MapKeys()
	b.counts = append(b.counts, uint64(len(keys)))

	if b.keyBuf == nil {
		b.keyBuf = buildColBuf(b.keyNode)
		b.valBuf = buildColBuf(b.valNode)
	}

	for _, k := range keys {
		b.keyBuf.add(k)
		b.valBuf.add(v.MapIndex(k))
	}
}

func (b *mapColBuf) flush(s *state) {
	s.writeByte(byte(wiretag.AMap))

	countsBuf := &intColBuf{node: &schema.Node{Kind: schema.KindInteger, IntBits: 64, IntSigned: false}, values: b.counts}
	countsBuf.flush(s)

	if b.keyBuf == nil {
		b.keyBuf = buildColBuf(b.keyNode)
		b.valBuf = buildColBuf(b.valNode)
	}
	b.keyBuf.flush(s)
	b.valBuf.flush(s)
}

// sumColBuf backs an Enum column: one discriminant Integer column (assigned
// by first-appearance order of the variant name) plus, per distinct
// variant, its canonicalized identifier and its own nested column built
// lazily from the variant's concrete schema.Node.
type sumColBuf struct {
	variantOrder []string
	variants     map[string]colNode
	variantNode  map[string]*schema.Node
	discriminant []uint64
}

func (b *sumColBuf) add(v reflect.Value) {
	concrete := v.Elem()
	name, node := resolveVariant(concrete)

	idx, ok := indexOf(b.variantOrder, name)
	if !ok {
		idx = len(b.variantOrder)
		b.variantOrder = append(b.variantOrder, name)
		if b.variantNode == nil {
			b.variantNode = map[string]*schema.Node{}
		}
		b.variantNode[name] = node
		if node.Kind != schema.KindVoid {
			b.variants[name] = buildColBuf(node)
		}
	}
	b.discriminant = append(b.discriminant, uint64(idx))

	if node.Kind != schema.KindVoid {
		b.variants[name].add(concrete)
	}
}

func (b *sumColBuf) flush(s *state) {
	s.writeByte(byte(wiretag.AEnum))
	s.writeCount(len(b.variantOrder))

	discBuf := &intColBuf{node: &schema.Node{Kind: schema.KindInteger, IntBits: 64, IntSigned: false}, values: b.discriminant}
	discBuf.flush(s)

	for _, name := range b.variantOrder {
		s.writeIdent(name)

		if b.variantNode[name].Kind == schema.KindVoid {
			s.writeByte(byte(wiretag.AVoid))

			continue
		}

		b.variants[name].flush(s)
	}
}

func indexOf(xs []string, x string) (int, bool) {
	for i, v := range xs {
		if v == x {
			return i, true
		}
	}

	return 0, false
}
