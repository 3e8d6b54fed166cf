package lazy

import (
	"fmt"

	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/format"
	"github.com/arloliu/lazyion/opcode"
)

// EncodedHeader describes the encoded layout of one value.
type EncodedHeader struct {
	// Opcode is the classification of the value's first byte.
	Opcode opcode.Descriptor
	// Offset is the absolute position of the opcode.
	Offset int
	// HeaderLength counts the opcode and any length prefix.
	HeaderLength int
	// BodyLength counts the bytes after the header.
	BodyLength int
}

// Kind returns the kind of the value.
func (h EncodedHeader) Kind() format.Kind {
	return h.Opcode.Kind
}

// TotalLength returns the number of bytes the value occupies.
func (h EncodedHeader) TotalLength() int {
	return h.HeaderLength + h.BodyLength
}

// BodyOffset returns the absolute position of the first body byte.
func (h EncodedHeader) BodyOffset() int {
	return h.Offset + h.HeaderLength
}

func (h EncodedHeader) String() string {
	return fmt.Sprintf("%s@%d[%d+%d]", h.Opcode, h.Offset, h.HeaderLength, h.BodyLength)
}

// parseHeader reads the header of the value at the front of c.
// Only the opcode and length prefix need to be present.
func parseHeader(c Cursor) (EncodedHeader, error) {
	desc, err := c.PeekOpcode()
	if err != nil {
		return EncodedHeader{}, err
	}

	if !desc.IsValue() {
		if desc.IsValid() {
			return EncodedHeader{}, errs.Decoding(errs.ErrInvalidOpcode, c.offset, "%s does not start a value", desc)
		}

		return EncodedHeader{}, errs.Decoding(errs.ErrInvalidOpcode, c.offset, "unrecognized opcode 0x%02X", desc.Byte)
	}

	header := EncodedHeader{Opcode: desc, Offset: c.offset, HeaderLength: 1}
	if length, ok := desc.BodyLength(); ok {
		header.BodyLength = length
		return header, nil
	}

	afterOpcode := Cursor{data: c.data[1:], offset: c.offset + 1}
	length, afterLength, err := afterOpcode.ReadFlexUIntLength()
	if err != nil {
		return EncodedHeader{}, err
	}

	header.HeaderLength = afterLength.offset - c.offset
	header.BodyLength = length

	return header, nil
}
