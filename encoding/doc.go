// Package encoding implements the primitive integer encodings of the binary format.
//
// Two variable-width encodings are used for lengths and exponents throughout
// the format:
//
//   - FlexUInt: an unsigned integer whose encoded length is self-described by
//     the number of trailing zero bits in the first byte.
//   - FlexInt: the signed counterpart, a two's complement value of 7 bits per
//     encoded byte.
//
// For both encodings the first byte's lowest set bit at position z means the
// encoding occupies z+1 bytes. The little-endian value of those bytes shifted
// right by z+1 yields the magnitude:
//
//	0x03       -> FlexUInt 1, FlexInt 1
//	0xFF       -> FlexUInt 127, FlexInt -1
//	0x8E 0x01  -> FlexUInt 99, FlexInt 99
//	0x76 0xFE  -> FlexInt -99
//
// Decoders accept over-padded input (an encoding longer than necessary);
// encoders always emit the minimal form unless a width is requested
// explicitly through AppendFlexUIntWidth or AppendFlexIntWidth.
//
// Fixed-width integers (FixedUInt, FixedInt) are plain little-endian bytes
// whose width is known from the surrounding structure. DecodeFixedInt covers
// widths up to 8 bytes; DecodeBigFixedInt handles arbitrary widths.
//
// All functions in this package are pure and safe for concurrent use. Error
// offsets reported by the decoders are relative to the start of the input
// slice; see errs.Rebase for translating them into absolute positions.
package encoding
