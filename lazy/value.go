package lazy

import (
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/lazyion/encoding"
	"github.com/arloliu/lazyion/endian"
	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/format"
	"github.com/arloliu/lazyion/internal/hash"
	"github.com/arloliu/lazyion/opcode"
)

// Symbol ID widths are biased so that every width starts where the previous
// one ends.
const (
	symbolIDBias2 = 1 << 8
	symbolIDBias3 = 1<<16 + symbolIDBias2
)

// LazyValue is a value whose header has been parsed but whose body has not
// been decoded.
//
// A LazyValue is immutable. Its body is decoded on every call to Read, which
// always yields the same result.
type LazyValue struct {
	header EncodedHeader
	input  Cursor
	arena  *Arena
}

// NewLazyValue parses the header of the value at the front of c.
//
// The body does not need to be present; a truncated body is reported by Read.
func NewLazyValue(c Cursor) (LazyValue, error) {
	return newLazyValue(c, nil)
}

func newLazyValue(c Cursor, arena *Arena) (LazyValue, error) {
	header, err := parseHeader(c)
	if err != nil {
		return LazyValue{}, err
	}

	return LazyValue{header: header, input: c, arena: arena}, nil
}

// Kind returns the kind of the value.
func (v LazyValue) Kind() format.Kind {
	return v.header.Kind()
}

// IsNull reports whether the value is the untyped null.
func (v LazyValue) IsNull() bool {
	return v.header.Kind() == format.KindNull
}

// Header returns the encoded layout of the value.
func (v LazyValue) Header() EncodedHeader {
	return v.header
}

// Offset returns the absolute position of the value's opcode.
func (v LazyValue) Offset() int {
	return v.header.Offset
}

// TotalLength returns the number of bytes the value occupies.
func (v LazyValue) TotalLength() int {
	return v.header.TotalLength()
}

// HeaderLength returns the length of the opcode and length prefix.
func (v LazyValue) HeaderLength() int {
	return v.header.HeaderLength
}

// BodyLength returns the length of the body.
func (v LazyValue) BodyLength() int {
	return v.header.BodyLength
}

// Bytes returns the complete encoding of the value. The slice aliases the
// input region.
func (v LazyValue) Bytes() ([]byte, error) {
	span, err := v.input.Slice(v.header.TotalLength())
	if err != nil {
		return nil, err
	}

	return span.data, nil
}

// Body returns the body of the value. The slice aliases the input region.
func (v LazyValue) Body() ([]byte, error) {
	body, err := v.body()
	if err != nil {
		return nil, err
	}

	return body.data, nil
}

// Fingerprint returns the xxHash64 of the value's complete encoding.
//
// Values with identical encodings have identical fingerprints regardless of
// where they appear in the stream.
func (v LazyValue) Fingerprint() (uint64, error) {
	data, err := v.Bytes()
	if err != nil {
		return 0, err
	}

	return hash.Bytes(data), nil
}

func (v LazyValue) String() string {
	return fmt.Sprintf("%s@%d(%d bytes)", v.Kind(), v.header.Offset, v.header.TotalLength())
}

func (v LazyValue) body() (Cursor, error) {
	afterHeader, err := v.input.Consume(v.header.HeaderLength)
	if err != nil {
		return Cursor{}, err
	}

	body, err := afterHeader.Slice(v.header.BodyLength)
	if err != nil {
		return Cursor{}, errs.Incomplete(v.header.Kind().String()+" body", v.header.Offset)
	}

	return body, nil
}

// Read decodes the body of the value.
//
// Text, lobs and containers are returned without copying: the string, byte
// slice or sequence refers to the input region, which must stay unmodified
// while they are in use.
//
// Returns:
//   - RawValue: The decoded value
//   - error: errs.ErrIncomplete if the body extends past the input;
//     errs.ErrDecoding for malformed bodies, invalid UTF-8 text and half
//     precision floats
func (v LazyValue) Read() (RawValue, error) {
	kind := v.header.Kind()

	switch kind {
	case format.KindNull:
		return RawValue{kind: kind}, nil
	case format.KindBool:
		return RawValue{kind: kind, b: v.header.Opcode.Byte == opcode.True}, nil
	}

	body, err := v.body()
	if err != nil {
		return RawValue{}, err
	}

	switch kind {
	case format.KindInt:
		return RawValue{kind: kind, i: v.readInt(body.data)}, nil
	case format.KindFloat:
		f, err := v.readFloat(body)
		if err != nil {
			return RawValue{}, err
		}

		return RawValue{kind: kind, f: f}, nil
	case format.KindDecimal:
		d, err := v.readDecimal(body)
		if err != nil {
			return RawValue{}, err
		}

		return RawValue{kind: kind, d: d}, nil
	case format.KindString:
		text, err := readText(body)
		if err != nil {
			return RawValue{}, err
		}

		return RawValue{kind: kind, text: text}, nil
	case format.KindSymbol:
		sym, err := v.readSymbol(body)
		if err != nil {
			return RawValue{}, err
		}

		return RawValue{kind: kind, sym: sym}, nil
	case format.KindBlob, format.KindClob:
		return RawValue{kind: kind, lob: body.data}, nil
	case format.KindList, format.KindSExp:
		return RawValue{kind: kind, seq: Sequence{kind: kind, region: body, arena: v.arena}}, nil
	default:
		return RawValue{}, errs.Decoding(errs.ErrInvalidOpcode, v.header.Offset, "no decoder for %s", v.header.Opcode)
	}
}

func (v LazyValue) readInt(body []byte) Int {
	if len(body) <= encoding.MaxFixedIntSize {
		return NewInt(encoding.DecodeFixedInt(body))
	}

	return NewBigInt(v.decodeBig(body))
}

func (v LazyValue) decodeBig(data []byte) *big.Int {
	return withScratch(v.arena, len(data), func(scratch []byte) *big.Int {
		n, _ := encoding.DecodeBigFixedInt(data, scratch[:0])
		return n
	})
}

func (v LazyValue) readFloat(body Cursor) (float64, error) {
	engine := endian.GetLittleEndianEngine()

	switch len(body.data) {
	case 0:
		return 0, nil
	case 4:
		return float64(math.Float32frombits(engine.Uint32(body.data))), nil
	case 8:
		return math.Float64frombits(engine.Uint64(body.data)), nil
	case 2:
		return 0, errs.Decoding(errs.ErrNotImplemented, v.header.Offset, "half precision floats")
	default:
		return 0, errs.Decoding(errs.ErrMalformed, v.header.Offset, "%d byte float", len(body.data))
	}
}

func (v LazyValue) readDecimal(body Cursor) (Decimal, error) {
	if body.IsEmpty() {
		return Decimal{}, nil
	}

	exponent, size, err := encoding.DecodeFlexInt(body.data)
	if err != nil {
		if errs.IsIncomplete(err) {
			return Decimal{}, errs.Decoding(errs.ErrMalformed, body.offset, "decimal exponent exceeds its %d byte body", len(body.data))
		}

		return Decimal{}, errs.Rebase(err, body.offset)
	}

	coefficient := body.data[size:]
	switch {
	case len(coefficient) == 0:
		return Decimal{exponent: exponent}, nil
	case encoding.IsZeroMagnitude(coefficient):
		return NegativeZero(exponent), nil
	case len(coefficient) <= encoding.MaxFixedIntSize:
		return NewDecimal(encoding.DecodeFixedInt(coefficient), exponent), nil
	default:
		return Decimal{coefficient: NewBigInt(v.decodeBig(coefficient)), exponent: exponent}, nil
	}
}

func (v LazyValue) readSymbol(body Cursor) (RawSymbol, error) {
	if !v.header.Opcode.IsSymbolID() {
		text, err := readText(body)
		if err != nil {
			return RawSymbol{}, err
		}

		return SymbolText(text), nil
	}

	id := encoding.DecodeFixedUInt(body.data)
	switch len(body.data) {
	case 2:
		id += symbolIDBias2
	case 3:
		id += symbolIDBias3
	}

	return SymbolID(id), nil
}

// readText validates UTF-8 text and returns it as a string that shares
// memory with the input region.
func readText(body Cursor) (string, error) {
	if !utf8.Valid(body.data) {
		return "", errs.Decoding(errs.ErrInvalidUTF8, body.offset, "%d byte text", len(body.data))
	}

	if len(body.data) == 0 {
		return "", nil
	}

	// Zero-copy conversion using unsafe.String
	return unsafe.String(&body.data[0], len(body.data)), nil
}
