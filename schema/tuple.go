package schema

// AsTuple marks a struct as a Tuple value: its exported fields are encoded
// positionally, in declaration order, instead of by canonicalized
// identifier like a Record. Embed it to build a tuple of arity other than
// 2..8 (those have the generic Tuple2..Tuple8 wrappers below); AsTuple
// itself contributes no field to the tuple.
type AsTuple struct{}

func (AsTuple) isTuple() {}

type tupleMarker interface {
	isTuple()
}

// Tuple2 is a fixed 2-arity heterogeneous tuple; F0..F1 are encoded
// positionally per spec's "arities 1-8 are packed in the tag" rule.
type Tuple2[A, B any] struct {
	AsTuple
	F0 A
	F1 B
}

func (Tuple2[A, B]) isTuple() {}

type Tuple3[A, B, C any] struct {
	AsTuple
	F0 A
	F1 B
	F2 C
}

type Tuple4[A, B, C, D any] struct {
	AsTuple
	F0 A
	F1 B
	F2 C
	F3 D
}

type Tuple5[A, B, C, D, E any] struct {
	AsTuple
	F0 A
	F1 B
	F2 C
	F3 D
	F4 E
}

type Tuple6[A, B, C, D, E, F any] struct {
	AsTuple
	F0 A
	F1 B
	F2 C
	F3 D
	F4 E
	F5 F
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	AsTuple
	F0 A
	F1 B
	F2 C
	F3 D
	F4 E
	F5 F
	F6 G
}

type Tuple8[A, B, C, D, E, F, G, H any] struct {
	AsTuple
	F0 A
	F1 B
	F2 C
	F3 D
	F4 E
	F5 F
	F6 G
	F7 H
}
