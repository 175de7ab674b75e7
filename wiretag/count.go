package wiretag

import "github.com/arloliu/colex/varint"

// packedArityFloor is the smallest arity that does NOT fit directly in a
// tag (Obj/Tuple arities 0..8 are packed in the tag itself); count.go
// carries the "…N" extension of that idiom, writing the difference from the
// floor so the varint payload stays minimal for the common "just over 8"
// case.
const packedArityFloor = 9

// AppendCount writes the overflow count for an "…N" tag whose packed-tag
// range is 0/1..8 (TupleN, ObjN and their array-context mirrors): a prefix
// varint of count-9. Callers must only call this when count >=
// packedArityFloor; smaller counts belong in the tag itself.
//
// ArrayN has no packed per-count tags beyond Array0/Array1, so a root- or
// array-context sequence of length 2..8 also falls through to ArrayN; that
// tag carries its count as a plain prefix varint (see encoder/tree.go)
// rather than through AppendCount, since the count-9 floor would underflow
// for those lengths.
func AppendCount(buf []byte, count int) []byte {
	return varint.AppendPrefixVarint(buf, uint64(count-packedArityFloor))
}

// ReadCount reads the overflow count written by AppendCount and adds back
// the floor to recover the true count.
func ReadCount(data []byte) (count int, n int, ok bool) {
	v, n, ok := varint.ReadPrefixVarint(data)
	if !ok {
		return 0, 0, false
	}

	return int(v) + packedArityFloor, n, true
}
