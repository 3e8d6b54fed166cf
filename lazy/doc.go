// Package lazy implements a zero-copy, pull-based reader for binary Ion 1.1 streams.
//
// The reader operates on one contiguous, caller-owned byte region and never
// copies it. Each call to Reader.Next locates the next top-level item (a
// version marker, a value or the end of the stream) by looking only at its
// header; the body of a value is not decoded until LazyValue.Read is called,
// and the elements of a list or s-expression are not decoded until the
// returned Sequence is iterated.
//
// # Usage
//
//	r, err := lazy.NewReader(data)
//	if err != nil {
//	    return err
//	}
//	for {
//	    item, err := r.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if item.IsEndOfStream() {
//	        break
//	    }
//	    value, err := item.ExpectValue()
//	    if err != nil {
//	        continue // version marker
//	    }
//	    raw, err := value.Read()
//	    ...
//	}
//
// # Errors
//
// Every error matches errs.ErrIncomplete or errs.ErrDecoding through
// errors.Is. An incomplete error means the region ends in the middle of an
// item; the reader state is unchanged, so the caller may obtain a longer
// region and resume with WithOffset at Reader.Position. A decoding error
// means the bytes are malformed and retrying cannot succeed.
//
// # Thread Safety
//
// A Reader or SequenceIterator must be used by a single goroutine. LazyValue,
// RawValue and Sequence are immutable and may be shared, unless they were
// produced by a reader configured with WithArena, in which case their Read
// methods share the arena and must not run concurrently.
package lazy
