package lazy

import (
	"iter"

	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/format"
)

// Sequence is the undecoded body of a list or s-expression.
//
// A Sequence is immutable; every iteration starts again at the first element.
type Sequence struct {
	kind   format.Kind
	region Cursor
	arena  *Arena
}

// Kind returns format.KindList or format.KindSExp.
func (s Sequence) Kind() format.Kind {
	return s.kind
}

// ByteLength returns the length of the encoded elements, including padding.
func (s Sequence) ByteLength() int {
	return s.region.Len()
}

// Offset returns the absolute position of the first element byte.
func (s Sequence) Offset() int {
	return s.region.offset
}

// Bytes returns the encoded elements. The slice aliases the input region.
func (s Sequence) Bytes() []byte {
	return s.region.data
}

// Iter returns an iterator positioned before the first element.
func (s Sequence) Iter() *SequenceIterator {
	return &SequenceIterator{region: s.region, arena: s.arena}
}

// All returns an iterator over the elements. Iteration stops after the
// first error, which is yielded.
func (s Sequence) All() iter.Seq2[LazyValue, error] {
	return func(yield func(LazyValue, error) bool) {
		it := s.Iter()
		for {
			item, err := it.Next()
			if err != nil {
				yield(LazyValue{}, err)
				return
			}

			if item.IsEndOfStream() {
				return
			}

			if !yield(item.value, nil) {
				return
			}
		}
	}
}

// Count returns the number of elements.
func (s Sequence) Count() (int, error) {
	n := 0
	for _, err := range s.All() {
		if err != nil {
			return 0, err
		}
		n++
	}

	return n, nil
}

// SequenceIterator walks the elements of a Sequence.
type SequenceIterator struct {
	region Cursor
	arena  *Arena
}

// Next returns the next element, or an end of stream item once the
// sequence is exhausted.
//
// The elements of a container always lie inside its body, so an element or
// padding that overruns the body is a decoding error rather than
// incomplete data. A failed call leaves the iterator unchanged.
func (it *SequenceIterator) Next() (Item, error) {
	item, start, err := scan(it.region, false, it.arena)
	if err != nil {
		if errs.IsIncomplete(err) {
			return Item{}, errs.Decoding(errs.ErrMalformed, it.region.offset, "element overruns its container")
		}

		return Item{}, err
	}

	if item.IsEndOfStream() {
		it.region = start
		return item, nil
	}

	next, err := start.Consume(item.EncodedLength())
	if err != nil {
		return Item{}, errs.Decoding(errs.ErrMalformed, start.offset,
			"%d byte element overruns its container by %d bytes", item.EncodedLength(), item.EncodedLength()-start.Len())
	}
	it.region = next

	return item, nil
}
