package wiretag

// ArrayTypeId identifies the encoding of a column encoded in array context:
// the value is one element of a sequence, so the tag is paired with a
// byte-length drawn from the lens stream rather than an inline payload.
type ArrayTypeId uint8

const (
	AVoid ArrayTypeId = iota
	ANullable
	AArrayVar
	AArrayFixed
	ABoolean
	AIntSimple16
	AIntPrefixVar

	// AIntU8Fixed is not in the source's illustrative ArrayTypeId list but is
	// required: section 4.3 names "U8-fixed" as an Integer candidate
	// encoding, and without a dedicated tag it could never be selected on
	// the wire. Placed right after the other integer tags so it doesn't
	// disturb the ordering of the tags the source does enumerate.
	AIntU8Fixed

	AF32
	AF64
	AUtf8

	// AUtf8Fsst is the FSST-compressed string column candidate (see the
	// column package); placed immediately after AUtf8 per the domain-stack
	// extension.
	AUtf8Fsst

	ADoubleGorilla
	AZfp32
	AZfp64

	AMap
	AMap0
	AArray0
	AEnum

	AObj0
	AObj1
	AObj2
	AObj3
	AObj4
	AObj5
	AObj6
	AObj7
	AObj8
	AObjN

	ATuple2
	ATuple3
	ATuple4
	ATuple5
	ATuple6
	ATuple7
	ATuple8
	ATupleN

	ARLE
	ARLEBoolTrue
	ARLEBoolFalse
	ADictionary
	APackedBoolean
)

func (t ArrayTypeId) String() string {
	if s, ok := arrayNames[t]; ok {
		return s
	}

	return "ArrayTypeId(?)"
}

var arrayNames = map[ArrayTypeId]string{
	AVoid: "Void", ANullable: "Nullable", AArrayVar: "ArrayVar", AArrayFixed: "ArrayFixed",
	ABoolean: "Boolean", AIntSimple16: "IntSimple16", AIntPrefixVar: "IntPrefixVar",
	AIntU8Fixed: "IntU8Fixed", AF32: "F32", AF64: "F64", AUtf8: "Utf8", AUtf8Fsst: "Utf8Fsst",
	ADoubleGorilla: "DoubleGorilla", AZfp32: "Zfp32", AZfp64: "Zfp64",
	AMap: "Map", AMap0: "Map0", AArray0: "Array0", AEnum: "Enum",
	AObj0: "Obj0", AObj1: "Obj1", AObj2: "Obj2", AObj3: "Obj3", AObj4: "Obj4",
	AObj5: "Obj5", AObj6: "Obj6", AObj7: "Obj7", AObj8: "Obj8", AObjN: "ObjN",
	ATuple2: "Tuple2", ATuple3: "Tuple3", ATuple4: "Tuple4", ATuple5: "Tuple5",
	ATuple6: "Tuple6", ATuple7: "Tuple7", ATuple8: "Tuple8", ATupleN: "TupleN",
	ARLE: "RLE", ARLEBoolTrue: "RLEBoolTrue", ARLEBoolFalse: "RLEBoolFalse",
	ADictionary: "Dictionary", APackedBoolean: "PackedBoolean",
}

// ArrayObjArityTag mirrors the root-context ObjArityTag for array-context
// records (the Enum-nested-record and record-of-records cases), including the
// Obj0 tag that root context has no use for (a 0-field record in root
// context degenerates to Void, but an array column still needs to name
// "zero fields" explicitly since it has no payload to fall back on).
func ArrayObjArityTag(fieldCount int) (ArrayTypeId, bool) {
	switch fieldCount {
	case 0:
		return AObj0, true
	case 1:
		return AObj1, true
	case 2:
		return AObj2, true
	case 3:
		return AObj3, true
	case 4:
		return AObj4, true
	case 5:
		return AObj5, true
	case 6:
		return AObj6, true
	case 7:
		return AObj7, true
	case 8:
		return AObj8, true
	default:
		return AObjN, false
	}
}

// ArrayTupleArityTag mirrors the root-context TupleArityTag for
// array-context tuples.
func ArrayTupleArityTag(arity int) (ArrayTypeId, bool) {
	switch arity {
	case 2:
		return ATuple2, true
	case 3:
		return ATuple3, true
	case 4:
		return ATuple4, true
	case 5:
		return ATuple5, true
	case 6:
		return ATuple6, true
	case 7:
		return ATuple7, true
	case 8:
		return ATuple8, true
	default:
		return ATupleN, false
	}
}
