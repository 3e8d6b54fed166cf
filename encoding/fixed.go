package encoding

import (
	"math/big"

	"github.com/arloliu/lazyion/endian"
)

// MaxFixedIntSize is the widest fixed-width integer DecodeFixedInt accepts.
const MaxFixedIntSize = 8

// DecodeFixedUInt decodes a little-endian unsigned integer of up to 8 bytes.
// An empty slice decodes to 0.
func DecodeFixedUInt(data []byte) uint64 {
	return endian.Uint(endian.GetLittleEndianEngine(), data)
}

// DecodeFixedInt decodes a little-endian two's complement integer of up to 8 bytes.
//
// The sign is taken from the most significant bit of the last byte. An empty
// slice decodes to 0. Bytes beyond the eighth are ignored; callers must use
// DecodeBigFixedInt for wider values.
func DecodeFixedInt(data []byte) int64 {
	n := min(len(data), MaxFixedIntSize)
	if n == 0 {
		return 0
	}

	shift := 64 - 8*n

	return int64(DecodeFixedUInt(data)<<shift) >> shift //nolint:gosec
}

// DecodeBigFixedInt decodes a little-endian two's complement integer of any width.
//
// The big-endian magnitude required by math/big is staged in scratch, which is
// grown when its capacity is too small. The grown slice is returned so the
// caller can keep reusing it; the returned *big.Int does not alias it.
//
// Parameters:
//   - data: Little-endian two's complement bytes
//   - scratch: Reusable staging memory, may be nil
//
// Returns:
//   - *big.Int: Decoded value
//   - []byte: Scratch memory, possibly reallocated
func DecodeBigFixedInt(data []byte, scratch []byte) (*big.Int, []byte) {
	n := len(data)
	if cap(scratch) < n {
		scratch = make([]byte, n)
	}

	be := scratch[:n]
	for i, b := range data {
		be[n-1-i] = b
	}

	v := new(big.Int).SetBytes(be)
	if n > 0 && data[n-1]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*n))) //nolint:gosec
	}

	return v, scratch
}

// IsZeroMagnitude reports whether every byte of data is zero.
func IsZeroMagnitude(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}

	return true
}
