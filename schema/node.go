// Package schema analyzes a Go type via reflection and produces the tree of
// logical value kinds (Record, Tuple, Sum, Sequence, Map, Optional, Integer,
// Float, Boolean, String, Void) that the encoder and decoder packages walk.
//
// A code-generation collaborator that emits one concrete encoder/decoder
// pair per user type is explicitly out of scope (see spec.md's Out of
// scope list); this package is the runtime-polymorphism alternative noted
// in the source's own design notes ("(b) runtime polymorphism via a
// capability interface"), built with reflect.Type walking instead of a
// generated static dispatch table.
package schema

import "reflect"

// Kind is one of the logical value kinds the codec understands.
type Kind uint8

const (
	KindRecord Kind = iota
	KindTuple
	KindSum
	KindSequence
	KindMap
	KindOptional
	KindInteger
	KindFloat
	KindBoolean
	KindString
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "Record"
	case KindTuple:
		return "Tuple"
	case KindSum:
		return "Sum"
	case KindSequence:
		return "Sequence"
	case KindMap:
		return "Map"
	case KindOptional:
		return "Optional"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindVoid:
		return "Void"
	default:
		return "Kind(?)"
	}
}

// Field is one named member of a Record, in canonicalized-identifier order.
type Field struct {
	Name  string // canonicalized identifier
	Index int    // reflect.StructField index in the Go type
	Node  *Node
}

// Node describes the shape of one position in the value tree.
//
// Only the fields relevant to Kind are populated; the rest are zero. Fields
// is sorted by Name (the sibling column ordering the encoder pipeline
// requires). Recursive types are broken by indirection: a field whose type
// transitively contains itself (directly, or through a Sequence/Optional)
// is represented with Indirect=true and its Node is filled in after the
// enclosing type's own Node has been cached, so the cycle terminates.
type Node struct {
	Kind   Kind
	GoType reflect.Type

	Fields []Field // Record

	Elems []*Node // Tuple, fixed heterogeneous arity

	Elem *Node // Sequence element / Optional payload / Map value

	// FixedLen is the element count for a Sequence built from a Go array
	// type ([N]T), or -1 for a Go slice ([]T). The encoder treats this as a
	// hint only: per spec it SHOULD still emit ArrayFixed whenever every
	// observed element actually has the same length, independent of the
	// static Go type.
	FixedLen int

	Key *Node // Map key

	IntBits   int  // Integer: 8/16/32/64
	IntSigned bool // Integer: signed vs unsigned

	FloatBits int // Float: 32/64

	Indirect bool // true if this node closes a recursive cycle
}

// IsRecursive reports whether building this node required breaking a cycle.
func (n *Node) IsRecursive() bool { return n.Indirect }
