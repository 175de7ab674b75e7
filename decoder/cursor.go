// Package decoder reads the wire-format bytes produced by the encoder
// package back into a Go value, applying the Schema Bridge widening rules
// (schemabridge package) as it assigns each decoded leaf into the target
// reflect.Value.
//
// Grounded on the teacher's blob/numeric_decoder.go two-cursor shape
// (header parsed forward, payload sections addressed by offsets computed
// from the header); here there is no fixed-size header, so the two cursors
// are the tag tree (read forward from byte 0) and the lens stream (read
// backward from the true end of the buffer), converging as described in
// encoder/state.go's finalize doc comment.
package decoder

import (
	"github.com/arloliu/colex/codecerr"
	"github.com/arloliu/colex/varint"
	"github.com/arloliu/colex/wiretag"
)

// cursor tracks the forward tag-tree position and the backward lens-stream
// position as they converge toward each other from opposite ends of data.
type cursor struct {
	data    []byte
	mainOff int
	tailEnd int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, mainOff: 0, tailEnd: len(data)}
}

func (c *cursor) readByte() (byte, error) {
	if c.mainOff >= c.tailEnd {
		return 0, codecerr.EndOfFile
	}
	b := c.data[c.mainOff]
	c.mainOff++

	return b, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.mainOff+n > c.tailEnd {
		return nil, codecerr.EndOfFile
	}
	b := c.data[c.mainOff : c.mainOff+n]
	c.mainOff += n

	return b, nil
}

// readCount reads a plain prefix varint from the forward cursor (used for
// ArrayN/Map/Enum counts, which are never floor-adjusted).
func (c *cursor) readCount() (int, error) {
	v, n, ok := varint.ReadPrefixVarint(c.data[c.mainOff:c.tailEnd])
	if !ok {
		return 0, codecerr.EndOfFile
	}
	c.mainOff += n

	return int(v), nil
}

// readArityCount reads the floor-9-adjusted overflow count written by
// wiretag.AppendCount (ObjN/TupleN and their array-context mirrors).
func (c *cursor) readArityCount() (int, error) {
	count, n, ok := wiretag.ReadCount(c.data[c.mainOff:c.tailEnd])
	if !ok {
		return 0, codecerr.EndOfFile
	}
	c.mainOff += n

	return count, nil
}

// nextLen peels one length off the tail, in the same order the encoder's
// state.finalize emitted it: the first column this cursor discovers gets
// the length closest to the buffer's true end.
func (c *cursor) nextLen() (int, error) {
	v, n, ok := varint.ReadSuffixVarintFromEnd(c.data, c.tailEnd)
	if !ok {
		return 0, codecerr.EndOfFile
	}
	c.tailEnd -= n

	return int(v), nil
}

// readColumn reads one primitive column's length off the tail then its
// payload bytes off the forward cursor.
func (c *cursor) readColumn() ([]byte, error) {
	n, err := c.nextLen()
	if err != nil {
		return nil, err
	}

	return c.readBytes(n)
}
