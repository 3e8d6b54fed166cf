package lazy

import (
	"fmt"

	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/opcode"
)

// ItemKind identifies what a stream position holds.
type ItemKind uint8

const (
	// ItemEndOfStream means no complete item remains.
	ItemEndOfStream ItemKind = iota
	// ItemVersionMarker is a version marker.
	ItemVersionMarker
	// ItemValue is a value.
	ItemValue
)

func (k ItemKind) String() string {
	switch k {
	case ItemEndOfStream:
		return "end of stream"
	case ItemVersionMarker:
		return "version marker"
	case ItemValue:
		return "value"
	default:
		return "unknown"
	}
}

// VersionMarker is a decoded version marker.
type VersionMarker struct {
	Major  uint8
	Minor  uint8
	Offset int
}

// Version returns the major and minor version.
func (m VersionMarker) Version() (uint8, uint8) {
	return m.Major, m.Minor
}

func (m VersionMarker) String() string {
	return fmt.Sprintf("$ion_%d_%d", m.Major, m.Minor)
}

// Item is one entry of a stream: a version marker, a value or the end of
// the stream.
type Item struct {
	kind   ItemKind
	marker VersionMarker
	value  LazyValue
	end    int
}

func endOfStream(position int) Item {
	return Item{kind: ItemEndOfStream, end: position}
}

func versionMarkerItem(m VersionMarker) Item {
	return Item{kind: ItemVersionMarker, marker: m}
}

func valueItem(v LazyValue) Item {
	return Item{kind: ItemValue, value: v}
}

// Kind returns what the item holds.
func (it Item) Kind() ItemKind {
	return it.kind
}

// IsEndOfStream reports whether the item marks the end of the stream.
func (it Item) IsEndOfStream() bool {
	return it.kind == ItemEndOfStream
}

// EndPosition returns the absolute position at which the stream ended.
func (it Item) EndPosition() (int, bool) {
	if it.kind != ItemEndOfStream {
		return 0, false
	}

	return it.end, true
}

// ExpectVersionMarker returns the version marker held by the item.
func (it Item) ExpectVersionMarker() (VersionMarker, error) {
	if it.kind != ItemVersionMarker {
		return VersionMarker{}, fmt.Errorf("%w: expected %s, found %s", errs.ErrTypeMismatch, ItemVersionMarker, it.kind)
	}

	return it.marker, nil
}

// ExpectValue returns the value held by the item.
func (it Item) ExpectValue() (LazyValue, error) {
	if it.kind != ItemValue {
		return LazyValue{}, fmt.Errorf("%w: expected %s, found %s", errs.ErrTypeMismatch, ItemValue, it.kind)
	}

	return it.value, nil
}

// EncodedLength returns the number of bytes the item occupies.
func (it Item) EncodedLength() int {
	switch it.kind {
	case ItemVersionMarker:
		return opcode.VersionMarkerLength
	case ItemValue:
		return it.value.TotalLength()
	default:
		return 0
	}
}

func (it Item) String() string {
	switch it.kind {
	case ItemVersionMarker:
		return it.marker.String()
	case ItemValue:
		return it.value.String()
	default:
		return fmt.Sprintf("end of stream@%d", it.end)
	}
}
