package lazy

import (
	"fmt"
	"iter"

	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/internal/options"
)

// Reader produces the top-level items of a binary Ion 1.1 stream.
//
// The reader keeps the position of the item it returned last together with
// that item's length; the item is stepped over at the start of the next call.
// A call that fails leaves this state untouched.
type Reader struct {
	data        Cursor
	bytesToSkip int
	arena       *Arena
}

// NewReader creates a reader over data.
//
// Parameters:
//   - data: Encoded stream, borrowed for the lifetime of the reader and of
//     every value it returns
//   - opts: Optional configuration (WithOffset, WithArena)
//
// Returns:
//   - *Reader: Reader positioned before the first item
//   - error: Invalid option
func NewReader(data []byte, opts ...ReaderOption) (*Reader, error) {
	cfg := &ReaderConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	c, err := NewCursorAt(data, cfg.offset)
	if err != nil {
		return nil, err
	}

	return &Reader{data: c, arena: cfg.arena}, nil
}

// Position returns the absolute position just past the last item returned.
func (r *Reader) Position() int {
	return r.data.offset + r.bytesToSkip
}

// advanceToNextItem returns the cursor past the item returned last.
func (r *Reader) advanceToNextItem() (Cursor, error) {
	if r.bytesToSkip > r.data.Len() {
		return Cursor{}, errs.Incomplete("next item", r.data.offset)
	}

	return Cursor{data: r.data.data[r.bytesToSkip:], offset: r.data.offset + r.bytesToSkip}, nil
}

// Next returns the next top-level item.
//
// No-op padding is skipped. A version marker must announce version 1.1.
// Once the stream is exhausted every call returns an end of stream item.
//
// Returns:
//   - Item: Version marker, value or end of stream
//   - error: errs.ErrIncomplete if the item returned last or the padding
//     before the next one extends past the data; errs.ErrDecoding for
//     malformed headers and unsupported versions
func (r *Reader) Next() (Item, error) {
	c, err := r.advanceToNextItem()
	if err != nil {
		return Item{}, err
	}

	if r.arena != nil {
		r.arena.Reset()
	}

	item, start, err := scan(c, true, r.arena)
	if err != nil {
		return Item{}, err
	}

	r.data = start
	r.bytesToSkip = item.EncodedLength()

	return item, nil
}

// Parser attempts to parse a value at the front of c. It returns false when
// no value of the kind it handles starts there.
type Parser func(c Cursor) (LazyValue, bool, error)

// ParseValue is a Parser accepting any value, after optional no-op padding.
// A version marker or the end of the data is no match.
func ParseValue(c Cursor) (LazyValue, bool, error) {
	_, start, err := c.ConsumeNopPadding()
	if err != nil {
		return LazyValue{}, false, err
	}

	if start.IsEmpty() {
		return LazyValue{}, false, nil
	}

	desc, err := start.PeekOpcode()
	if err != nil {
		return LazyValue{}, false, err
	}

	if desc.IsVersionMarkerStart() {
		return LazyValue{}, false, nil
	}

	v, err := NewLazyValue(start)
	if err != nil {
		return LazyValue{}, false, err
	}

	return v, true, nil
}

// TryParseNext runs parser where the next item would start.
//
// Only a successful match moves the reader past the parsed value; when the
// parser reports no match or fails, the reader is unchanged.
func (r *Reader) TryParseNext(parser Parser) (LazyValue, bool, error) {
	c, err := r.advanceToNextItem()
	if err != nil {
		return LazyValue{}, false, err
	}

	v, ok, err := parser(c)
	if err != nil || !ok {
		return LazyValue{}, false, err
	}

	if v.Offset() < c.offset {
		return LazyValue{}, false, fmt.Errorf("%w: parsed value at %d precedes the unread data at %d",
			errs.ErrInvalidOffset, v.Offset(), c.offset)
	}

	// Padding skipped by the parser is stepped over together with the value.
	r.data = c
	r.bytesToSkip = v.Offset() + v.TotalLength() - c.offset

	return v, true, nil
}

// All returns an iterator over the remaining items, excluding the final end
// of stream. Iteration stops after the first error, which is yielded.
func (r *Reader) All() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for {
			item, err := r.Next()
			if err != nil {
				yield(Item{}, err)
				return
			}

			if item.IsEndOfStream() || !yield(item, nil) {
				return
			}
		}
	}
}

// scan locates the item at the front of c, skipping no-op padding.
//
// It returns the item and the cursor at which the item starts. Version
// markers are only legal at the top level.
func scan(c Cursor, topLevel bool, arena *Arena) (Item, Cursor, error) {
	if c.IsEmpty() {
		return endOfStream(c.offset), c, nil
	}

	desc, err := c.PeekOpcode()
	if err != nil {
		return Item{}, c, err
	}

	if desc.IsNop() {
		_, c, err = c.ConsumeNopPadding()
		if err != nil {
			return Item{}, c, err
		}

		if c.IsEmpty() {
			return endOfStream(c.offset), c, nil
		}

		desc, err = c.PeekOpcode()
		if err != nil {
			return Item{}, c, err
		}
	}

	if desc.IsVersionMarkerStart() {
		if !topLevel {
			return Item{}, c, errs.Decoding(errs.ErrInvalidVersionMarker, c.offset, "version marker inside a container")
		}

		marker, _, err := c.ReadVersionMarker()
		if err != nil {
			return Item{}, c, err
		}

		if marker.Major != 1 || marker.Minor != 1 {
			return Item{}, c, errs.Decoding(errs.ErrUnsupportedVersion, c.offset,
				"unsupported version v%d.%d; only 1.1 is supported", marker.Major, marker.Minor)
		}

		return versionMarkerItem(marker), c, nil
	}

	v, err := newLazyValue(c, arena)
	if err != nil {
		return Item{}, c, err
	}

	return valueItem(v), c, nil
}
