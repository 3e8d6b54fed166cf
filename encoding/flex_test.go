package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/lazyion/errs"
	"github.com/stretchr/testify/require"
)

func TestDecodeFlexUInt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
		size int
	}{
		{"zero", []byte{0x01}, 0, 1},
		{"one", []byte{0x03}, 1, 1},
		{"seventeen", []byte{0x23}, 17, 1},
		{"max one byte", []byte{0xFF}, 127, 1},
		{"128", []byte{0x02, 0x02}, 128, 2},
		{"99 two bytes", []byte{0x8E, 0x01}, 99, 2},
		{"24 byte string length", []byte{0x31}, 24, 1},
		{"trailing bytes ignored", []byte{0x05, 0xAA, 0xBB}, 2, 1},
		{"overpadded zero", []byte{0x02, 0x00}, 0, 2},
		{"overpadded two", []byte{0x0A, 0x00}, 2, 2},
		{"overpadded one three bytes", []byte{0x0C, 0x00, 0x00}, 1, 3},
		{"max eight bytes", []byte{0x80, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, MaxFlexUInt, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, size, err := DecodeFlexUInt(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.size, size)
		})
	}
}

func TestDecodeFlexInt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int64
		size int
	}{
		{"zero", []byte{0x01}, 0, 1},
		{"one", []byte{0x03}, 1, 1},
		{"minus one", []byte{0xFF}, -1, 1},
		{"minus two", []byte{0xFD}, -2, 1},
		{"63", []byte{0x7F}, 63, 1},
		{"minus 64", []byte{0x81}, -64, 1},
		{"64", []byte{0x02, 0x01}, 64, 2},
		{"99", []byte{0x8E, 0x01}, 99, 2},
		{"minus 99", []byte{0x76, 0xFE}, -99, 2},
		{"minus 65", []byte{0xFE, 0xFE}, -65, 2},
		{"199", []byte{0x1E, 0x03}, 199, 2},
		{"65536", []byte{0x04, 0x00, 0x08}, 65536, 3},
		{"overpadded zero", []byte{0x02, 0x00}, 0, 2},
		{"overpadded minus one", []byte{0xFE, 0xFF}, -1, 2},
		{"min eight bytes", []byte{0x80, 0, 0, 0, 0, 0, 0, 0x80}, MinFlexInt, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, size, err := DecodeFlexInt(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.size, size)
		})
	}
}

func TestDecodeFlex_Errors(t *testing.T) {
	t.Run("empty input is incomplete", func(t *testing.T) {
		_, _, err := DecodeFlexUInt(nil)
		require.ErrorIs(t, err, errs.ErrIncomplete)

		_, _, err = DecodeFlexInt([]byte{})
		require.ErrorIs(t, err, errs.ErrIncomplete)
	})

	t.Run("announced length exceeds input", func(t *testing.T) {
		_, _, err := DecodeFlexUInt([]byte{0x02})
		require.ErrorIs(t, err, errs.ErrIncomplete)

		_, _, err = DecodeFlexInt([]byte{0x04, 0x00})
		require.ErrorIs(t, err, errs.ErrIncomplete)
	})

	t.Run("zero first byte is too large", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

		_, _, err := DecodeFlexUInt(data)
		require.ErrorIs(t, err, errs.ErrDecoding)
		require.ErrorIs(t, err, errs.ErrFlexTooLarge)

		_, _, err = DecodeFlexInt(data)
		require.ErrorIs(t, err, errs.ErrFlexTooLarge)
	})
}

func TestFlexUInt_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 2, 63, 64, 127, 128, 255, 256, 16383, 16384, 1 << 20, 1<<21 - 1, 1 << 21,
		1 << 35, 1<<49 - 1, 1 << 49, MaxFlexUInt}

	for _, v := range values {
		encoded, err := AppendFlexUInt(nil, v)
		require.NoError(t, err)
		require.Len(t, encoded, FlexUIntSize(v))

		decoded, size, err := DecodeFlexUInt(encoded)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), size)

		// Every wider encoding must decode to the same value.
		for width := FlexUIntSize(v) + 1; width <= MaxFlexSize; width++ {
			padded, err := AppendFlexUIntWidth(nil, v, width)
			require.NoError(t, err)
			require.Len(t, padded, width)

			decoded, size, err := DecodeFlexUInt(padded)
			require.NoError(t, err)
			require.Equal(t, v, decoded, "width %d", width)
			require.Equal(t, width, size)
		}
	}
}

func TestFlexInt_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, -64, 64, -65, 99, -99, 8191, -8192, 8192, -8193,
		1 << 30, -(1 << 30), MaxFlexInt, MinFlexInt}

	for _, v := range values {
		encoded, err := AppendFlexInt(nil, v)
		require.NoError(t, err)
		require.Len(t, encoded, FlexIntSize(v))

		decoded, size, err := DecodeFlexInt(encoded)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), size)

		for width := FlexIntSize(v) + 1; width <= MaxFlexSize; width++ {
			padded, err := AppendFlexIntWidth(nil, v, width)
			require.NoError(t, err)

			decoded, _, err := DecodeFlexInt(padded)
			require.NoError(t, err)
			require.Equal(t, v, decoded, "width %d", width)
		}
	}
}

func TestFlex_MinimalEncodings(t *testing.T) {
	encoded, err := AppendFlexUInt(nil, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, encoded)

	encoded, err = AppendFlexUInt([]byte{0xFA}, 24)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFA, 0x31}, encoded)

	encoded, err = AppendFlexInt(nil, -1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, encoded)

	encoded, err = AppendFlexInt(nil, -99)
	require.NoError(t, err)
	require.Equal(t, []byte{0x76, 0xFE}, encoded)

	encoded, err = AppendFlexInt(nil, 64)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01}, encoded)
}

func TestFlex_EncodeLimits(t *testing.T) {
	require.Equal(t, 0, FlexUIntSize(MaxFlexUInt+1))
	require.Equal(t, 0, FlexUIntSize(math.MaxUint64))
	require.Equal(t, 0, FlexIntSize(MaxFlexInt+1))
	require.Equal(t, 0, FlexIntSize(math.MinInt64))

	_, err := AppendFlexUInt(nil, MaxFlexUInt+1)
	require.ErrorIs(t, err, errs.ErrFlexTooLarge)

	_, err = AppendFlexInt(nil, MinFlexInt-1)
	require.ErrorIs(t, err, errs.ErrFlexTooLarge)

	_, err = AppendFlexUIntWidth(nil, 128, 1)
	require.ErrorIs(t, err, errs.ErrFlexTooLarge)

	_, err = AppendFlexIntWidth(nil, 64, 1)
	require.ErrorIs(t, err, errs.ErrFlexTooLarge)

	_, err = AppendFlexUIntWidth(nil, 1, 9)
	require.ErrorIs(t, err, errs.ErrFlexTooLarge)
}

func BenchmarkDecodeFlexUInt(b *testing.B) {
	data, _ := AppendFlexUInt(nil, 1<<30)

	b.ResetTimer()
	for b.Loop() {
		_, _, _ = DecodeFlexUInt(data)
	}
}

func BenchmarkDecodeFlexInt(b *testing.B) {
	data, _ := AppendFlexInt(nil, -(1 << 30))

	b.ResetTimer()
	for b.Loop() {
		_, _, _ = DecodeFlexInt(data)
	}
}
