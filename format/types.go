package format

type (
	Kind            uint8
	CompressionType uint8
)

// Value kinds. The zero Kind is not a valid value kind.
const (
	KindNull    Kind = 0x1 // KindNull represents the untyped null.
	KindBool    Kind = 0x2 // KindBool represents true or false.
	KindInt     Kind = 0x3 // KindInt represents an arbitrary precision integer.
	KindFloat   Kind = 0x4 // KindFloat represents a binary floating point number.
	KindDecimal Kind = 0x5 // KindDecimal represents an arbitrary precision decimal.
	KindString  Kind = 0x6 // KindString represents UTF-8 text.
	KindSymbol  Kind = 0x7 // KindSymbol represents inline symbol text or a symbol ID.
	KindBlob    Kind = 0x8 // KindBlob represents opaque binary data.
	KindClob    Kind = 0x9 // KindClob represents character data of unspecified encoding.
	KindList    Kind = 0xA // KindList represents an ordered sequence of values.
	KindSExp    Kind = 0xB // KindSExp represents an s-expression.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindBlob:
		return "blob"
	case KindClob:
		return "clob"
	case KindList:
		return "list"
	case KindSExp:
		return "sexp"
	default:
		return "unknown"
	}
}

// IsContainer reports whether values of this kind hold child values.
func (k Kind) IsContainer() bool {
	return k == KindList || k == KindSExp
}

// IsText reports whether values of this kind carry UTF-8 text.
func (k Kind) IsText() bool {
	return k == KindString || k == KindSymbol
}

// IsLob reports whether values of this kind carry an opaque byte span.
func (k Kind) IsLob() bool {
	return k == KindBlob || k == KindClob
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
