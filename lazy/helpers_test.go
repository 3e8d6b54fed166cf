package lazy

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// ivm is the version marker for Ion 1.1.
var ivm = []byte{0xE0, 0x01, 0x01, 0xEA}

func stream(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

func newTestReader(t *testing.T, data []byte, opts ...ReaderOption) *Reader {
	t.Helper()

	r, err := NewReader(data, opts...)
	require.NoError(t, err)

	return r
}

// collectItems reads the stream until the end, dumping what was read so far
// if an error occurs.
func collectItems(t *testing.T, r *Reader) []Item {
	t.Helper()

	var items []Item
	for {
		item, err := r.Next()
		require.NoError(t, err, "items read so far:\n%s", spew.Sdump(items))
		if item.IsEndOfStream() {
			return items
		}
		items = append(items, item)
	}
}

func expectMarker(t *testing.T, r *Reader) {
	t.Helper()

	item, err := r.Next()
	require.NoError(t, err)

	marker, err := item.ExpectVersionMarker()
	require.NoError(t, err)
	require.Equal(t, uint8(1), marker.Major)
	require.Equal(t, uint8(1), marker.Minor)
}

func nextRaw(t *testing.T, r *Reader) RawValue {
	t.Helper()

	item, err := r.Next()
	require.NoError(t, err)

	value, err := item.ExpectValue()
	require.NoError(t, err, "item: %s", item)

	raw, err := value.Read()
	require.NoError(t, err, "value: %s", value)

	return raw
}

func readSingle(t *testing.T, data []byte) RawValue {
	t.Helper()

	r := newTestReader(t, stream(ivm, data))
	expectMarker(t, r)
	raw := nextRaw(t, r)

	item, err := r.Next()
	require.NoError(t, err)
	require.True(t, item.IsEndOfStream(), "trailing item: %s", item)

	return raw
}

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()

	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad integer literal %q", s)

	return v
}

func kindsOf(t *testing.T, s Sequence) []string {
	t.Helper()

	kinds := []string{}
	for v, err := range s.All() {
		require.NoError(t, err)
		kinds = append(kinds, v.Kind().String())
	}

	return kinds
}
