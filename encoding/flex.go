package encoding

import (
	"math/bits"

	"github.com/arloliu/lazyion/endian"
	"github.com/arloliu/lazyion/errs"
)

// Limits of the flex integer encodings supported by this package.
//
// The encoded length of a flex integer is one more than the number of trailing
// zero bits in its first byte, so a single first byte describes at most eight
// bytes. Each encoded byte contributes seven magnitude bits.
const (
	MaxFlexSize = 8

	MaxFlexUInt = 1<<(7*MaxFlexSize) - 1      // largest encodable FlexUInt
	MaxFlexInt  = 1<<(7*MaxFlexSize-1) - 1    // largest encodable FlexInt
	MinFlexInt  = -(1 << (7*MaxFlexSize - 1)) // smallest encodable FlexInt
)

// flexSize returns the encoded length announced by the first byte, or
// MaxFlexSize+1 when the byte has no set bit.
func flexSize(first byte) int {
	return bits.TrailingZeros8(first) + 1
}

// loadFlex validates the length prefix of a flex integer at the front of data
// and returns its raw little-endian bits and encoded size.
func loadFlex(data []byte, label string) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, errs.Incomplete(label, 0)
	}

	size := flexSize(data[0])
	if size > MaxFlexSize {
		return 0, 0, errs.Decoding(errs.ErrFlexTooLarge, 0, "%s longer than %d bytes", label, MaxFlexSize)
	}

	if len(data) < size {
		return 0, 0, errs.Incomplete(label, 0)
	}

	return endian.Uint(endian.GetLittleEndianEngine(), data[:size]), size, nil
}

// DecodeFlexUInt decodes the FlexUInt at the front of data.
//
// Over-padded encodings, which use more bytes than the value needs, decode to
// the same value as the minimal encoding.
//
// Parameters:
//   - data: Bytes starting with an encoded FlexUInt
//
// Returns:
//   - uint64: Decoded value
//   - int: Number of bytes the encoding occupies
//   - error: errs.ErrIncomplete if data is shorter than the announced length,
//     errs.ErrDecoding wrapping errs.ErrFlexTooLarge if the first byte is zero.
//     Error offsets are relative to the start of data.
func DecodeFlexUInt(data []byte) (uint64, int, error) {
	raw, size, err := loadFlex(data, "flex uint")
	if err != nil {
		return 0, 0, err
	}

	return raw >> size, size, nil
}

// DecodeFlexInt decodes the FlexInt at the front of data.
//
// The magnitude bits form a two's complement value of 7*size bits which is
// sign-extended to 64 bits.
//
// Returns the same errors as DecodeFlexUInt.
func DecodeFlexInt(data []byte) (int64, int, error) {
	raw, size, err := loadFlex(data, "flex int")
	if err != nil {
		return 0, 0, err
	}

	shift := 64 - 7*size

	return int64(raw>>size<<shift) >> shift, size, nil //nolint:gosec
}

// FlexUIntSize returns the minimal encoded size of v, or 0 if v exceeds MaxFlexUInt.
func FlexUIntSize(v uint64) int {
	if v > MaxFlexUInt {
		return 0
	}

	size := 1
	for v >= 1<<(7*size) {
		size++
	}

	return size
}

// FlexIntSize returns the minimal encoded size of v, or 0 if v is outside
// [MinFlexInt, MaxFlexInt].
func FlexIntSize(v int64) int {
	if v > MaxFlexInt || v < MinFlexInt {
		return 0
	}

	size := 1
	for v >= 1<<(7*size-1) || v < -(1<<(7*size-1)) {
		size++
	}

	return size
}

// AppendFlexUInt appends the minimal FlexUInt encoding of v to dst.
func AppendFlexUInt(dst []byte, v uint64) ([]byte, error) {
	return AppendFlexUIntWidth(dst, v, FlexUIntSize(v))
}

// AppendFlexUIntWidth appends v encoded as a FlexUInt of exactly size bytes.
//
// A size larger than the minimal one produces an over-padded encoding.
func AppendFlexUIntWidth(dst []byte, v uint64, size int) ([]byte, error) {
	if size < 1 || size > MaxFlexSize || v >= 1<<(7*size) {
		return dst, errs.Decoding(errs.ErrFlexTooLarge, 0, "cannot encode %d as a %d byte flex uint", v, size)
	}

	return appendFlex(dst, v, size), nil
}

// AppendFlexInt appends the minimal FlexInt encoding of v to dst.
func AppendFlexInt(dst []byte, v int64) ([]byte, error) {
	return AppendFlexIntWidth(dst, v, FlexIntSize(v))
}

// AppendFlexIntWidth appends v encoded as a FlexInt of exactly size bytes.
func AppendFlexIntWidth(dst []byte, v int64, size int) ([]byte, error) {
	if size < 1 || size > MaxFlexSize || v >= 1<<(7*size-1) || v < -(1<<(7*size-1)) {
		return dst, errs.Decoding(errs.ErrFlexTooLarge, 0, "cannot encode %d as a %d byte flex int", v, size)
	}

	return appendFlex(dst, uint64(v), size), nil //nolint:gosec
}

// appendFlex shifts the magnitude past the length bits, marks the end of the
// length prefix and writes the low size bytes.
func appendFlex(dst []byte, magnitude uint64, size int) []byte {
	encoded := magnitude<<size | 1<<(size-1)
	for i := range size {
		dst = append(dst, byte(encoded>>(8*i)))
	}

	return dst
}
