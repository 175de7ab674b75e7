package decoder

import (
	"github.com/arloliu/colex/codecerr"
	"github.com/arloliu/colex/column"
	"github.com/arloliu/colex/wiretag"
)

// skipRoot and skipColumn structurally walk a root- or array-context value
// with no target schema.Node at all, advancing the cursor past it without
// constructing anything. They back the Record field-removal bridge rule: a
// producer field absent from the target must still be read off the wire so
// the cursor lands correctly on the next field, but its value is discarded.
//
// Both tag enumerations are fully self-describing — every kind (Integer,
// Float, String, Boolean, composite) owns a disjoint tag range — so no
// schema is needed to know how many further bytes or nested columns a tag
// consumes.
//
// One gap: an array-context Void column writes no tag byte at all (see
// voidColBuf in encoder/colbuf.go), unlike every other array-context
// column and unlike a root-context Void value (which does write one). A
// removed Record/Tuple field that happens to be Void-kind therefore can't
// be skipped correctly in array context — skipColumn has no schema for an
// unmatched field and so always expects a leading tag byte. This is a
// narrow schema-evolution case (dropping a zero-width field) and is not
// handled; see DESIGN.md.

func skipRoot(c *cursor) error {
	tagByte, err := c.readByte()
	if err != nil {
		return err
	}

	return skipRootTagged(c, wiretag.RootTypeId(tagByte))
}

func skipRootTagged(c *cursor, tag wiretag.RootTypeId) error {
	switch tag {
	case wiretag.Void, wiretag.True, wiretag.False, wiretag.Zero, wiretag.One,
		wiretag.NegOne, wiretag.NaN, wiretag.Str0, wiretag.Array0, wiretag.Map0:
		return nil

	case wiretag.Str1:
		_, err := c.readBytes(1)

		return err
	case wiretag.Str2:
		_, err := c.readBytes(2)

		return err
	case wiretag.Str3:
		_, err := c.readBytes(3)

		return err
	case wiretag.Str:
		l, err := c.readCount()
		if err != nil {
			return err
		}
		_, err = c.readBytes(l)

		return err

	case wiretag.IntU8, wiretag.IntS8:
		_, err := c.readBytes(1)

		return err
	case wiretag.IntU16, wiretag.IntS16:
		_, err := c.readBytes(2)

		return err
	case wiretag.IntU32, wiretag.IntS32:
		_, err := c.readBytes(4)

		return err
	case wiretag.IntU64, wiretag.IntS64:
		_, err := c.readBytes(8)

		return err

	case wiretag.F32:
		_, err := c.readBytes(4)

		return err
	case wiretag.F64:
		_, err := c.readBytes(8)

		return err

	case wiretag.Array1:
		return skipColumn(c, 1)
	case wiretag.ArrayN:
		count, err := c.readCount()
		if err != nil {
			return err
		}

		return skipColumn(c, count)

	case wiretag.Tuple2, wiretag.Tuple3, wiretag.Tuple4, wiretag.Tuple5,
		wiretag.Tuple6, wiretag.Tuple7, wiretag.Tuple8:
		arity := tupleArities[tag]
		for range arity {
			if err := skipRoot(c); err != nil {
				return err
			}
		}

		return nil
	case wiretag.TupleN:
		arity, err := c.readArityCount()
		if err != nil {
			return err
		}
		for range arity {
			if err := skipRoot(c); err != nil {
				return err
			}
		}

		return nil

	case wiretag.Obj1, wiretag.Obj2, wiretag.Obj3, wiretag.Obj4, wiretag.Obj5,
		wiretag.Obj6, wiretag.Obj7, wiretag.Obj8:
		fieldCount := objArities[tag]

		return skipRootFields(c, fieldCount)
	case wiretag.ObjN:
		fieldCount, err := c.readArityCount()
		if err != nil {
			return err
		}

		return skipRootFields(c, fieldCount)

	case wiretag.Map1:
		if err := skipRoot(c); err != nil {
			return err
		}

		return skipRoot(c)
	case wiretag.Map:
		count, err := c.readCount()
		if err != nil {
			return err
		}
		for range count * 2 {
			if err := skipRoot(c); err != nil {
				return err
			}
		}

		return nil

	case wiretag.Enum:
		if _, err := readIdent(c); err != nil {
			return err
		}

		return skipRoot(c)

	default:
		return codecerr.UnrecognizedTypeId
	}
}

func skipRootFields(c *cursor, fieldCount int) error {
	for range fieldCount {
		if _, err := readIdent(c); err != nil {
			return err
		}
		if err := skipRoot(c); err != nil {
			return err
		}
	}

	return nil
}

func skipColumn(c *cursor, count int) error {
	tagByte, err := c.readByte()
	if err != nil {
		return err
	}

	return skipColumnTagged(c, wiretag.ArrayTypeId(tagByte), count)
}

func skipColumnTagged(c *cursor, tag wiretag.ArrayTypeId, count int) error {
	switch tag {
	case wiretag.AVoid:
		return nil

	case wiretag.AIntU8Fixed, wiretag.AIntSimple16, wiretag.AIntPrefixVar,
		wiretag.ARLE, wiretag.ADictionary, wiretag.AF32, wiretag.AF64,
		wiretag.AUtf8, wiretag.AUtf8Fsst, wiretag.ADoubleGorilla,
		wiretag.AZfp32, wiretag.AZfp64, wiretag.ABoolean,
		wiretag.APackedBoolean, wiretag.ARLEBoolTrue, wiretag.ARLEBoolFalse:
		_, err := c.readColumn()

		return err

	case wiretag.ANullable:
		presenceTagByte, err := c.readByte()
		if err != nil {
			return err
		}
		presencePayload, err := c.readColumn()
		if err != nil {
			return err
		}
		presence, ok := column.DecodeBoolean(wiretag.ArrayTypeId(presenceTagByte), presencePayload, count)
		if !ok {
			return codecerr.InvalidFormat
		}
		presentCount := 0
		for _, p := range presence {
			if p {
				presentCount++
			}
		}

		return skipColumn(c, presentCount)

	case wiretag.AArrayFixed:
		fixedLen, err := c.readCount()
		if err != nil {
			return err
		}

		return skipColumn(c, count*fixedLen)

	case wiretag.AArrayVar:
		countsTagByte, err := c.readByte()
		if err != nil {
			return err
		}
		countsPayload, err := c.readColumn()
		if err != nil {
			return err
		}
		outerCounts, ok := column.DecodeInteger(wiretag.ArrayTypeId(countsTagByte), countsPayload, count)
		if !ok {
			return codecerr.InvalidFormat
		}
		total := 0
		for _, oc := range outerCounts {
			total += int(oc)
		}

		return skipColumn(c, total)

	case wiretag.AObj0, wiretag.AObj1, wiretag.AObj2, wiretag.AObj3, wiretag.AObj4,
		wiretag.AObj5, wiretag.AObj6, wiretag.AObj7, wiretag.AObj8:
		return skipColumnFields(c, arrayObjArities[tag], count)
	case wiretag.AObjN:
		fieldCount, err := c.readArityCount()
		if err != nil {
			return err
		}

		return skipColumnFields(c, fieldCount, count)

	case wiretag.ATuple2, wiretag.ATuple3, wiretag.ATuple4, wiretag.ATuple5,
		wiretag.ATuple6, wiretag.ATuple7, wiretag.ATuple8:
		arity := arrayTupleArities[tag]
		for range arity {
			if err := skipColumn(c, count); err != nil {
				return err
			}
		}

		return nil
	case wiretag.ATupleN:
		arity, err := c.readArityCount()
		if err != nil {
			return err
		}
		for range arity {
			if err := skipColumn(c, count); err != nil {
				return err
			}
		}

		return nil

	case wiretag.AMap:
		countsTagByte, err := c.readByte()
		if err != nil {
			return err
		}
		countsPayload, err := c.readColumn()
		if err != nil {
			return err
		}
		pairCounts, ok := column.DecodeInteger(wiretag.ArrayTypeId(countsTagByte), countsPayload, count)
		if !ok {
			return codecerr.InvalidFormat
		}
		total := 0
		for _, pc := range pairCounts {
			total += int(pc)
		}
		if err := skipColumn(c, total); err != nil {
			return err
		}

		return skipColumn(c, total)

	case wiretag.AEnum:
		variantCount, err := c.readCount()
		if err != nil {
			return err
		}
		discTagByte, err := c.readByte()
		if err != nil {
			return err
		}
		discPayload, err := c.readColumn()
		if err != nil {
			return err
		}
		disc, ok := column.DecodeInteger(wiretag.ArrayTypeId(discTagByte), discPayload, count)
		if !ok {
			return codecerr.InvalidFormat
		}
		variantCounts := make([]int, variantCount)
		for _, d := range disc {
			variantCounts[d]++
		}
		for i := range variantCount {
			if _, err := readIdent(c); err != nil {
				return err
			}
			if err := skipColumn(c, variantCounts[i]); err != nil {
				return err
			}
		}

		return nil

	default:
		return codecerr.UnrecognizedTypeId
	}
}

func skipColumnFields(c *cursor, fieldCount, count int) error {
	for range fieldCount {
		if _, err := readIdent(c); err != nil {
			return err
		}
		if err := skipColumn(c, count); err != nil {
			return err
		}
	}

	return nil
}
