package lazy

import (
	"testing"

	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/format"
	"github.com/stretchr/testify/require"
)

func TestReader_VersionMarkerThenNull(t *testing.T) {
	r := newTestReader(t, stream(ivm, []byte{0xEA}))

	items := collectItems(t, r)
	require.Len(t, items, 2)

	marker, err := items[0].ExpectVersionMarker()
	require.NoError(t, err)
	major, minor := marker.Version()
	require.Equal(t, uint8(1), major)
	require.Equal(t, uint8(1), minor)
	require.Equal(t, 0, marker.Offset)

	value, err := items[1].ExpectValue()
	require.NoError(t, err)
	require.True(t, value.IsNull())
	require.Equal(t, 4, value.Offset())
}

func TestReader_Nops(t *testing.T) {
	data := stream(ivm,
		[]byte{0xEC},
		[]byte{0xEC, 0xEC},
		[]byte{0xEC, 0xEC, 0xEC},
		[]byte{0xED, 0x05, 0x00, 0x00},
		[]byte{0xEA},
	)
	r := newTestReader(t, data)

	expectMarker(t, r)
	raw := nextRaw(t, r)
	require.True(t, raw.IsNull())
	require.Equal(t, len(data), r.Position())

	item, err := r.Next()
	require.NoError(t, err)
	require.True(t, item.IsEndOfStream())
}

func TestReader_NopBetweenValues(t *testing.T) {
	r := newTestReader(t, []byte{0x51, 0x01, 0xEC, 0x51, 0x02})

	items := collectItems(t, r)
	require.Len(t, items, 2, "padding must not produce a phantom element")

	for i, item := range items {
		value, err := item.ExpectValue()
		require.NoError(t, err)

		raw, err := value.Read()
		require.NoError(t, err)

		v, err := raw.AsInt64()
		require.NoError(t, err)
		require.Equal(t, int64(i+1), v)
	}
}

func TestReader_TrailingPadding(t *testing.T) {
	data := []byte{0x5E, 0xEC, 0xED, 0x03, 0x00}
	r := newTestReader(t, data)

	_ = nextRaw(t, r)

	item, err := r.Next()
	require.NoError(t, err)
	require.True(t, item.IsEndOfStream())

	end, ok := item.EndPosition()
	require.True(t, ok)
	require.Equal(t, len(data), end)
	require.Equal(t, len(data), r.Position())
	require.Equal(t, 0, item.EncodedLength())

	// Exhausted readers keep reporting the end of the stream.
	item, err = r.Next()
	require.NoError(t, err)
	require.True(t, item.IsEndOfStream())
}

func TestReader_EmptyStream(t *testing.T) {
	r := newTestReader(t, nil)

	item, err := r.Next()
	require.NoError(t, err)
	require.True(t, item.IsEndOfStream())
	require.Equal(t, "end of stream@0", item.String())

	_, err = item.ExpectValue()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)

	_, err = item.ExpectVersionMarker()
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}

func TestReader_SkipsBodiesWithoutReading(t *testing.T) {
	// Item offsets must equal the sum of the lengths of everything before them.
	values := [][]byte{
		{0x50},
		{0x52, 0x50, 0xFC},
		{0x85, 'h', 'e', 'l', 'l', 'o'},
		{0xF5, 0x13, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08},
		{0xA8, 0xEA, 0x90, 0x85, 'h', 'e', 'l', 'l', 'o'},
		{0xFA, 0x01},
		{0xE2, 0x01, 0x00},
		{0x5B, 0x42, 0x47},
		{0xFE, 0x05, 0xAA, 0xBB},
	}
	paddings := [][]byte{nil, {0xEC}, {0xED, 0x03, 0xFF}, nil, {0xEC, 0xEC}}

	var data []byte
	var offsets []int
	for i, v := range values {
		data = append(data, paddings[i%len(paddings)]...)
		offsets = append(offsets, len(data))
		data = append(data, v...)
	}

	r := newTestReader(t, data)
	items := collectItems(t, r)
	require.Len(t, items, len(values))

	for i, item := range items {
		value, err := item.ExpectValue()
		require.NoError(t, err)
		require.Equal(t, offsets[i], value.Offset(), "value %d", i)
		require.Equal(t, len(values[i]), value.TotalLength(), "value %d", i)
	}
	require.Equal(t, len(data), r.Position())
}

func TestReader_Position(t *testing.T) {
	data := stream(ivm, []byte{0xEC, 0x51, 0x11, 0x5E})
	r := newTestReader(t, data)
	require.Equal(t, 0, r.Position())

	expectMarker(t, r)
	require.Equal(t, 4, r.Position())

	_ = nextRaw(t, r)
	require.Equal(t, 7, r.Position())

	_ = nextRaw(t, r)
	require.Equal(t, 8, r.Position())
}

func TestReader_Incomplete(t *testing.T) {
	t.Run("truncated body", func(t *testing.T) {
		r := newTestReader(t, stream(ivm, []byte{0x85, 'h', 'e'}))
		expectMarker(t, r)

		item, err := r.Next()
		require.NoError(t, err)

		value, err := item.ExpectValue()
		require.NoError(t, err)

		_, err = value.Read()
		require.ErrorIs(t, err, errs.ErrIncomplete)

		position := r.Position()
		_, err = r.Next()
		require.ErrorIs(t, err, errs.ErrIncomplete)
		require.Equal(t, position, r.Position(), "a failed call must not move the reader")

		_, err = r.Next()
		require.ErrorIs(t, err, errs.ErrIncomplete)
	})

	t.Run("truncated length prefix", func(t *testing.T) {
		r := newTestReader(t, stream(ivm, []byte{0xF8}))
		expectMarker(t, r)

		_, err := r.Next()
		require.ErrorIs(t, err, errs.ErrIncomplete)
		require.Equal(t, 4, r.Position())
	})

	t.Run("truncated version marker", func(t *testing.T) {
		r := newTestReader(t, []byte{0xE0, 0x01})

		_, err := r.Next()
		require.ErrorIs(t, err, errs.ErrIncomplete)
		require.Equal(t, 0, r.Position())
	})

	t.Run("truncated padding", func(t *testing.T) {
		r := newTestReader(t, []byte{0x5E, 0xED, 0x09, 0x00})
		_ = nextRaw(t, r)

		_, err := r.Next()
		require.ErrorIs(t, err, errs.ErrIncomplete)
		require.Equal(t, 1, r.Position())
	})
}

func TestReader_ResumeWithOffset(t *testing.T) {
	full := stream(ivm, []byte{0x51, 0x11}, []byte{0x85, 'h', 'e', 'l', 'l', 'o'}, []byte{0x5F})

	// The first read only sees part of the stream.
	r := newTestReader(t, full[:9])
	expectMarker(t, r)
	_ = nextRaw(t, r)

	item, err := r.Next()
	require.NoError(t, err)
	value, err := item.ExpectValue()
	require.NoError(t, err)
	_, err = value.Read()
	require.ErrorIs(t, err, errs.ErrIncomplete)

	// Resume at the value that could not be read, with the rest of the data.
	resumeAt := value.Offset()
	r = newTestReader(t, full[resumeAt:], WithOffset(resumeAt))

	items := collectItems(t, r)
	require.Len(t, items, 2)

	value, err = items[0].ExpectValue()
	require.NoError(t, err)
	require.Equal(t, 6, value.Offset())

	raw, err := value.Read()
	require.NoError(t, err)
	s, err := raw.AsString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	require.Equal(t, len(full), r.Position())
}

func TestNewReader_InvalidOffset(t *testing.T) {
	_, err := NewReader([]byte{0x5E}, WithOffset(-1))
	require.ErrorIs(t, err, errs.ErrInvalidOffset)
}

func TestReader_DecodingErrors(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		r := newTestReader(t, []byte{0xE0, 0x01, 0x00, 0xEA})

		_, err := r.Next()
		require.ErrorIs(t, err, errs.ErrDecoding)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
		require.Contains(t, err.Error(), "v1.0")
	})

	t.Run("bad version marker trailer", func(t *testing.T) {
		r := newTestReader(t, []byte{0xE0, 0x01, 0x01, 0x00})

		_, err := r.Next()
		require.ErrorIs(t, err, errs.ErrInvalidVersionMarker)
	})

	t.Run("invalid opcode", func(t *testing.T) {
		r := newTestReader(t, stream(ivm, []byte{0xEC, 0x70}))
		expectMarker(t, r)

		_, err := r.Next()
		require.ErrorIs(t, err, errs.ErrDecoding)
		require.ErrorIs(t, err, errs.ErrInvalidOpcode)

		var decoding *errs.DecodingError
		require.ErrorAs(t, err, &decoding)
		require.Equal(t, 5, decoding.Offset)
		require.Equal(t, 4, r.Position())
	})

	t.Run("version marker after padding", func(t *testing.T) {
		r := newTestReader(t, stream([]byte{0xEC}, ivm, []byte{0x5E}))
		items := collectItems(t, r)
		require.Len(t, items, 2)
		require.Equal(t, ItemVersionMarker, items[0].Kind())
		require.Equal(t, ItemValue, items[1].Kind())
	})
}

func TestReader_All(t *testing.T) {
	r := newTestReader(t, stream(ivm, []byte{0x5E, 0x5F, 0xEA}))

	var kinds []ItemKind
	for item, err := range r.All() {
		require.NoError(t, err)
		kinds = append(kinds, item.Kind())
	}
	require.Equal(t, []ItemKind{ItemVersionMarker, ItemValue, ItemValue, ItemValue}, kinds)

	t.Run("stops at error", func(t *testing.T) {
		r := newTestReader(t, []byte{0x5E, 0x70, 0x5F})

		var errCount, valueCount int
		for _, err := range r.All() {
			if err != nil {
				errCount++
				continue
			}
			valueCount++
		}
		require.Equal(t, 1, valueCount)
		require.Equal(t, 1, errCount)
	})

	t.Run("early break", func(t *testing.T) {
		r := newTestReader(t, []byte{0x5E, 0x5F, 0xEA})
		for range r.All() {
			break
		}
		require.Equal(t, 1, r.Position())
	})
}

func intOnly(c Cursor) (LazyValue, bool, error) {
	v, ok, err := ParseValue(c)
	if err != nil || !ok || v.Kind() != format.KindInt {
		return LazyValue{}, false, err
	}

	return v, true, nil
}

func TestReader_TryParseNext(t *testing.T) {
	t.Run("match moves the reader", func(t *testing.T) {
		r := newTestReader(t, []byte{0xEC, 0x51, 0x11, 0x5E})

		v, ok, err := r.TryParseNext(intOnly)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 1, v.Offset())
		require.Equal(t, 3, r.Position())

		raw := nextRaw(t, r)
		b, err := raw.AsBool()
		require.NoError(t, err)
		require.True(t, b)
	})

	t.Run("no match leaves the reader unchanged", func(t *testing.T) {
		r := newTestReader(t, []byte{0x5E, 0x51, 0x11})

		_, ok, err := r.TryParseNext(intOnly)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, 0, r.Position())

		raw := nextRaw(t, r)
		require.Equal(t, format.KindBool, raw.Kind())
	})

	t.Run("failure leaves the reader unchanged", func(t *testing.T) {
		r := newTestReader(t, []byte{0x5E, 0x70})
		_ = nextRaw(t, r)

		_, ok, err := r.TryParseNext(ParseValue)
		require.ErrorIs(t, err, errs.ErrInvalidOpcode)
		require.False(t, ok)
		require.Equal(t, 1, r.Position())
	})

	t.Run("end of data is no match", func(t *testing.T) {
		r := newTestReader(t, []byte{0xEC})

		_, ok, err := r.TryParseNext(ParseValue)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("version marker is no match", func(t *testing.T) {
		r := newTestReader(t, ivm)

		_, ok, err := r.TryParseNext(ParseValue)
		require.NoError(t, err)
		require.False(t, ok)
		expectMarker(t, r)
	})

	t.Run("value from elsewhere is rejected", func(t *testing.T) {
		r := newTestReader(t, []byte{0x5E, 0x5F})
		_ = nextRaw(t, r)

		stale := func(Cursor) (LazyValue, bool, error) {
			v, err := NewLazyValue(NewCursor([]byte{0x5E}))
			return v, true, err
		}
		_, _, err := r.TryParseNext(stale)
		require.ErrorIs(t, err, errs.ErrInvalidOffset)
		require.Equal(t, 1, r.Position())
	})
}

func TestReader_ArenaReset(t *testing.T) {
	wide := []byte{0xF5, 0x13, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08}
	arena := NewArena(0)
	defer arena.Release()

	r := newTestReader(t, stream(wide, wide, wide), WithArena(arena))
	for range 3 {
		i, err := nextRaw(t, r).AsInt()
		require.NoError(t, err)
		require.Equal(t, "147573952589676412929", i.String())
		require.Equal(t, 9, arena.Len(), "arena is reset at every top-level item")
	}
}
