package lazy

import (
	"fmt"
	"math"

	"github.com/arloliu/lazyion/encoding"
	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/opcode"
)

// Cursor is an immutable view of the unread part of a byte region.
//
// Offset is the absolute position of the first unread byte within the
// stream. Methods that advance return a new Cursor and leave the receiver
// untouched, so a cursor can be saved and restored by plain assignment.
type Cursor struct {
	data   []byte
	offset int
}

// NewCursor returns a cursor over data starting at offset 0.
func NewCursor(data []byte) Cursor {
	return Cursor{data: data}
}

// NewCursorAt returns a cursor over data, where data[0] is located at the
// given absolute offset of a larger stream.
func NewCursorAt(data []byte, offset int) (Cursor, error) {
	if offset < 0 {
		return Cursor{}, fmt.Errorf("%w: negative offset %d", errs.ErrInvalidOffset, offset)
	}

	return Cursor{data: data, offset: offset}, nil
}

// Offset returns the absolute position of the first unread byte.
func (c Cursor) Offset() int {
	return c.offset
}

// Len returns the number of unread bytes.
func (c Cursor) Len() int {
	return len(c.data)
}

// IsEmpty reports whether no bytes remain.
func (c Cursor) IsEmpty() bool {
	return len(c.data) == 0
}

// Bytes returns the unread bytes. The slice aliases the underlying region.
func (c Cursor) Bytes() []byte {
	return c.data
}

// PeekByte returns the first unread byte.
func (c Cursor) PeekByte() (byte, error) {
	if len(c.data) == 0 {
		return 0, errs.Incomplete("opcode", c.offset)
	}

	return c.data[0], nil
}

// PeekOpcode classifies the first unread byte without consuming it.
func (c Cursor) PeekOpcode() (opcode.Descriptor, error) {
	b, err := c.PeekByte()
	if err != nil {
		return opcode.Descriptor{}, err
	}

	return opcode.Classify(b), nil
}

// Consume returns a cursor positioned n bytes further.
func (c Cursor) Consume(n int) (Cursor, error) {
	if n < 0 {
		return c, fmt.Errorf("%w: negative length %d", errs.ErrInvalidOffset, n)
	}

	if n > len(c.data) {
		return c, errs.Incomplete(fmt.Sprintf("%d bytes", n), c.offset)
	}

	return Cursor{data: c.data[n:], offset: c.offset + n}, nil
}

// Slice returns a cursor over exactly the next n bytes.
//
// The capacity of the returned view ends at n, so nothing derived from it can
// observe bytes past the slice.
func (c Cursor) Slice(n int) (Cursor, error) {
	if n < 0 {
		return c, fmt.Errorf("%w: negative length %d", errs.ErrInvalidOffset, n)
	}

	if n > len(c.data) {
		return c, errs.Incomplete(fmt.Sprintf("%d bytes", n), c.offset)
	}

	return Cursor{data: c.data[:n:n], offset: c.offset}, nil
}

// ReadFlexUInt decodes the FlexUInt at the cursor and returns the cursor after it.
func (c Cursor) ReadFlexUInt() (uint64, Cursor, error) {
	v, size, err := encoding.DecodeFlexUInt(c.data)
	if err != nil {
		return 0, c, errs.Rebase(err, c.offset)
	}

	return v, Cursor{data: c.data[size:], offset: c.offset + size}, nil
}

// ReadFlexUIntLength decodes a FlexUInt that denotes a byte count.
func (c Cursor) ReadFlexUIntLength() (int, Cursor, error) {
	v, next, err := c.ReadFlexUInt()
	if err != nil {
		return 0, c, err
	}

	if v > math.MaxInt-uint64(next.offset) { //nolint:gosec
		return 0, c, errs.Decoding(errs.ErrLengthOverflow, c.offset, "length %d", v)
	}

	return int(v), next, nil //nolint:gosec
}

// ReadVersionMarker decodes the four byte version marker at the cursor.
func (c Cursor) ReadVersionMarker() (VersionMarker, Cursor, error) {
	if len(c.data) < opcode.VersionMarkerLength {
		return VersionMarker{}, c, errs.Incomplete("version marker", c.offset)
	}

	if c.data[0] != opcode.VersionMarkerStart || c.data[3] != opcode.VersionMarkerEnd {
		return VersionMarker{}, c, errs.Decoding(errs.ErrInvalidVersionMarker, c.offset,
			"expected E0 xx xx EA, found % X", c.data[:opcode.VersionMarkerLength])
	}

	marker := VersionMarker{Major: c.data[1], Minor: c.data[2], Offset: c.offset}
	next := Cursor{data: c.data[opcode.VersionMarkerLength:], offset: c.offset + opcode.VersionMarkerLength}

	return marker, next, nil
}

// ConsumeNopPadding skips every consecutive no-op span at the cursor.
//
// It returns the number of bytes skipped and the cursor after the last span.
// A cursor that does not start with a no-op is returned unchanged.
func (c Cursor) ConsumeNopPadding() (int, Cursor, error) {
	cur := c
	for len(cur.data) > 0 {
		switch cur.data[0] {
		case opcode.Nop:
			cur = Cursor{data: cur.data[1:], offset: cur.offset + 1}
		case opcode.NopPadded:
			padding, afterLength, err := Cursor{data: cur.data[1:], offset: cur.offset + 1}.ReadFlexUIntLength()
			if err != nil {
				return 0, c, err
			}

			next, err := afterLength.Consume(padding)
			if err != nil {
				return 0, c, errs.Incomplete("nop padding", cur.offset)
			}
			cur = next
		default:
			return cur.offset - c.offset, cur, nil
		}
	}

	return cur.offset - c.offset, cur, nil
}
