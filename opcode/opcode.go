// Package opcode classifies the leading byte of every encoded item.
//
// The first byte of an item (its opcode) determines what the item is and how
// the length of its body is found, without looking at the body itself:
//
//	0x50-0x58  int, 0-8 byte body given by the low nibble
//	0x5A-0x5D  float, 0/2/4/8 byte body
//	0x5E/0x5F  true/false
//	0x60-0x6F  decimal, 0-15 byte body given by the low nibble
//	0x80-0x8E  string, 0-14 byte body given by the low nibble
//	0x90-0x9E  symbol with inline text, 0-14 byte body
//	0xA0-0xAE  list, 0-14 bytes of encoded elements
//	0xB0-0xBE  s-expression, 0-14 bytes of encoded elements
//	0xE0       version marker start (E0 major minor EA)
//	0xE1-0xE3  symbol ID with a 1/2/3 byte body
//	0xEA       null
//	0xEC       one byte no-op
//	0xED       no-op with a FlexUInt count of padding bytes
//	0xF5       int, FlexUInt length prefix
//	0xF6       decimal, FlexUInt length prefix
//	0xF8/0xF9  string/symbol, FlexUInt length prefix
//	0xFA/0xFB  list/s-expression, FlexUInt length prefix
//	0xFE/0xFF  blob/clob, FlexUInt length prefix
//
// Every other byte is invalid. Classification is a table lookup; the table is
// built once at package initialization and never modified.
package opcode

import (
	"fmt"

	"github.com/arloliu/lazyion/format"
)

// Opcodes with a fixed meaning.
const (
	VersionMarkerStart byte = 0xE0
	VersionMarkerEnd   byte = 0xEA
	Null               byte = 0xEA
	True               byte = 0x5E
	False              byte = 0x5F
	Nop                byte = 0xEC
	NopPadded          byte = 0xED
)

// VersionMarkerLength is the total length of a version marker.
const VersionMarkerLength = 4

// Class separates value opcodes from structural ones.
type Class uint8

const (
	ClassInvalid       Class = iota // not a recognized opcode
	ClassValue                      // starts a value
	ClassNop                        // starts a no-op span
	ClassVersionMarker              // starts a version marker
)

// BodyRule describes how the length of an item's body is determined.
type BodyRule uint8

const (
	// BodyNone means the body is empty.
	BodyNone BodyRule = iota
	// BodyNibble means the low nibble of the opcode is the body length in bytes.
	BodyNibble
	// BodyFixed means the opcode implies a fixed body width.
	BodyFixed
	// BodyFlexUInt means a FlexUInt body length follows the opcode.
	BodyFlexUInt
)

func (r BodyRule) String() string {
	switch r {
	case BodyNone:
		return "none"
	case BodyNibble:
		return "nibble"
	case BodyFixed:
		return "fixed"
	case BodyFlexUInt:
		return "flexuint"
	default:
		return "unknown"
	}
}

// Descriptor is the classification of one opcode.
type Descriptor struct {
	// Byte is the classified opcode.
	Byte byte
	// Class tells values from no-ops and version markers.
	Class Class
	// Kind is the kind of value the opcode starts. Zero for non-values.
	Kind format.Kind
	// Rule determines the body length.
	Rule BodyRule
	// Width is the body length for BodyNibble and BodyFixed rules.
	Width uint8
}

// IsValid reports whether the opcode is recognized.
func (d Descriptor) IsValid() bool {
	return d.Class != ClassInvalid
}

// IsValue reports whether the opcode starts a value.
func (d Descriptor) IsValue() bool {
	return d.Class == ClassValue
}

// IsNop reports whether the opcode starts a no-op span.
func (d Descriptor) IsNop() bool {
	return d.Class == ClassNop
}

// IsVersionMarkerStart reports whether the opcode starts a version marker.
func (d Descriptor) IsVersionMarkerStart() bool {
	return d.Class == ClassVersionMarker
}

// IsLongForm reports whether a FlexUInt length prefix follows the opcode.
func (d Descriptor) IsLongForm() bool {
	return d.Rule == BodyFlexUInt
}

// IsSymbolID reports whether the opcode starts a symbol referenced by ID.
func (d Descriptor) IsSymbolID() bool {
	return d.Byte >= 0xE1 && d.Byte <= 0xE3
}

// BodyLength returns the body length implied by the opcode alone. The second
// result is false for long forms, whose length follows the opcode.
func (d Descriptor) BodyLength() (int, bool) {
	switch d.Rule {
	case BodyNone:
		return 0, true
	case BodyNibble, BodyFixed:
		return int(d.Width), true
	default:
		return 0, false
	}
}

func (d Descriptor) String() string {
	switch d.Class {
	case ClassValue:
		return fmt.Sprintf("0x%02X(%s, %s %d)", d.Byte, d.Kind, d.Rule, d.Width)
	case ClassNop:
		return fmt.Sprintf("0x%02X(nop)", d.Byte)
	case ClassVersionMarker:
		return fmt.Sprintf("0x%02X(version marker)", d.Byte)
	default:
		return fmt.Sprintf("0x%02X(invalid)", d.Byte)
	}
}

var table = buildTable()

// Classify returns the descriptor of opcode b.
func Classify(b byte) Descriptor {
	return table[b]
}

func buildTable() [256]Descriptor {
	var t [256]Descriptor
	for i := range t {
		t[i] = Descriptor{Byte: byte(i)} //nolint:gosec
	}

	value := func(b byte, kind format.Kind, rule BodyRule, width int) {
		t[b] = Descriptor{Byte: b, Class: ClassValue, Kind: kind, Rule: rule, Width: uint8(width)} //nolint:gosec
	}
	nibbles := func(high byte, kind format.Kind, maxLen int) {
		for n := 0; n <= maxLen; n++ {
			value(high|byte(n), kind, BodyNibble, n) //nolint:gosec
		}
	}

	nibbles(0x50, format.KindInt, 8)
	value(0x5A, format.KindFloat, BodyFixed, 0)
	value(0x5B, format.KindFloat, BodyFixed, 2)
	value(0x5C, format.KindFloat, BodyFixed, 4)
	value(0x5D, format.KindFloat, BodyFixed, 8)
	value(True, format.KindBool, BodyNone, 0)
	value(False, format.KindBool, BodyNone, 0)
	nibbles(0x60, format.KindDecimal, 15)
	nibbles(0x80, format.KindString, 14)
	nibbles(0x90, format.KindSymbol, 14)
	nibbles(0xA0, format.KindList, 14)
	nibbles(0xB0, format.KindSExp, 14)

	t[VersionMarkerStart] = Descriptor{Byte: VersionMarkerStart, Class: ClassVersionMarker, Rule: BodyFixed, Width: VersionMarkerLength - 1}
	value(0xE1, format.KindSymbol, BodyFixed, 1)
	value(0xE2, format.KindSymbol, BodyFixed, 2)
	value(0xE3, format.KindSymbol, BodyFixed, 3)
	value(Null, format.KindNull, BodyNone, 0)
	t[Nop] = Descriptor{Byte: Nop, Class: ClassNop, Rule: BodyNone}
	t[NopPadded] = Descriptor{Byte: NopPadded, Class: ClassNop, Rule: BodyFlexUInt}

	value(0xF5, format.KindInt, BodyFlexUInt, 0)
	value(0xF6, format.KindDecimal, BodyFlexUInt, 0)
	value(0xF8, format.KindString, BodyFlexUInt, 0)
	value(0xF9, format.KindSymbol, BodyFlexUInt, 0)
	value(0xFA, format.KindList, BodyFlexUInt, 0)
	value(0xFB, format.KindSExp, BodyFlexUInt, 0)
	value(0xFE, format.KindBlob, BodyFlexUInt, 0)
	value(0xFF, format.KindClob, BodyFlexUInt, 0)

	return t
}
