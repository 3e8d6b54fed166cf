// Package lazyion provides a zero-copy, pull-based decoder for binary Ion 1.1 streams.
//
// The decoder reads one contiguous byte region without copying it. Values are
// located by their headers alone; bodies are decoded on demand, and lists and
// s-expressions are iterated lazily over bounded views of the same region.
//
// # Core Features
//
//   - Header-only scanning: skipping a value costs the same regardless of its size
//   - Zero-copy strings, symbols, blobs, clobs and containers
//   - Arbitrary precision integers and decimals, including negative zero
//   - Precise errors: incomplete data is distinguished from malformed data,
//     and every error carries the absolute offset of the offending item
//   - Optional compression envelopes (Zstd, S2, LZ4) for streams at rest
//
// # Basic Usage
//
//	r, _ := lazyion.NewReader(data)
//	for item, err := range r.All() {
//	    if err != nil {
//	        return err
//	    }
//	    value, err := item.ExpectValue()
//	    if err != nil {
//	        continue // version marker
//	    }
//	    raw, _ := value.Read()
//	    fmt.Println(raw)
//	}
//
// Visiting every value, including container elements:
//
//	err := lazyion.Walk(data, func(depth int, v lazy.LazyValue) error {
//	    fmt.Printf("%*s%s\n", depth*2, "", v)
//	    return nil
//	})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the lazy and
// compress packages. For fine-grained control, use them directly.
package lazyion

import (
	"errors"

	"github.com/arloliu/lazyion/compress"
	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/format"
	"github.com/arloliu/lazyion/internal/collision"
	"github.com/arloliu/lazyion/lazy"
)

// ErrSkipContainer is returned by a WalkFunc to skip the elements of the
// container it was called with.
var ErrSkipContainer = errors.New("skip container")

// WalkFunc is called by Walk for every value. Top-level values have depth 0.
type WalkFunc func(depth int, v lazy.LazyValue) error

// NewReader creates a reader over an uncompressed stream.
//
// Parameters:
//   - data: Encoded stream, borrowed until reading is finished
//   - opts: Optional reader configuration
//
// Returns:
//   - *lazy.Reader: Reader positioned before the first item
//   - error: Invalid option
func NewReader(data []byte, opts ...lazy.ReaderOption) (*lazy.Reader, error) {
	return lazy.NewReader(data, opts...)
}

// NewCompressedReader restores a stream sealed by CompressStream and creates
// a reader over it.
//
// The envelope must use the expected compression type, so a stream stored
// with the wrong algorithm is rejected before any value is read.
//
// Parameters:
//   - data: Sealed stream
//   - compressionType: Expected compression type
//   - opts: Optional reader configuration
//
// Returns:
//   - *lazy.Reader: Reader over the restored stream
//   - error: Envelope or option error
func NewCompressedReader(data []byte, compressionType format.CompressionType, opts ...lazy.ReaderOption) (*lazy.Reader, error) {
	stream, sealedWith, err := compress.Open(data)
	if err != nil {
		return nil, err
	}

	if sealedWith != compressionType {
		return nil, errs.Decoding(errs.ErrMalformed, 0, "stream sealed with %s, expected %s", sealedWith, compressionType)
	}

	return lazy.NewReader(stream, opts...)
}

// CompressStream seals an encoded stream into a compression envelope.
func CompressStream(data []byte, compressionType format.CompressionType) ([]byte, error) {
	return compress.Seal(compressionType, data)
}

// Walk visits every value of the stream depth-first, descending into lists
// and s-expressions.
//
// Version markers are not reported. Walk stops at the first error returned
// by the reader, a container iterator or fn. If fn returns ErrSkipContainer
// for a container, its elements are not visited.
func Walk(data []byte, fn WalkFunc, opts ...lazy.ReaderOption) error {
	r, err := lazy.NewReader(data, opts...)
	if err != nil {
		return err
	}

	for item, err := range r.All() {
		if err != nil {
			return err
		}

		value, err := item.ExpectValue()
		if err != nil {
			continue
		}

		if err := walkValue(0, value, fn); err != nil {
			return err
		}
	}

	return nil
}

// Duplicate pairs a value with the first value of the stream that has the
// same encoding.
type Duplicate struct {
	Original lazy.LazyValue
	Repeat   lazy.LazyValue
}

// FindDuplicates walks the stream and reports every value, at any depth,
// whose complete encoding already occurred earlier in the stream.
//
// Values are grouped by Fingerprint and confirmed byte by byte, so a hash
// collision never produces a false duplicate. A container whose encoding
// repeats is reported once; its elements are not visited again.
//
// Parameters:
//   - data: Encoded stream
//   - opts: Optional reader configuration
//
// Returns:
//   - []Duplicate: Repeated values in stream order
//   - error: First error encountered while reading
func FindDuplicates(data []byte, opts ...lazy.ReaderOption) ([]Duplicate, error) {
	tracker := collision.NewTracker()
	originals := make([]lazy.LazyValue, 0)

	var duplicates []Duplicate
	err := Walk(data, func(_ int, v lazy.LazyValue) error {
		encoded, err := v.Bytes()
		if err != nil {
			return err
		}

		fingerprint, err := v.Fingerprint()
		if err != nil {
			return err
		}

		idx, seen := tracker.Track(fingerprint, encoded)
		if !seen {
			originals = append(originals, v)
			return nil
		}

		duplicates = append(duplicates, Duplicate{Original: originals[idx], Repeat: v})

		return ErrSkipContainer
	}, opts...)
	if err != nil {
		return nil, err
	}

	return duplicates, nil
}

func walkValue(depth int, v lazy.LazyValue, fn WalkFunc) error {
	if err := fn(depth, v); err != nil {
		if errors.Is(err, ErrSkipContainer) {
			return nil
		}

		return err
	}

	if !v.Kind().IsContainer() {
		return nil
	}

	raw, err := v.Read()
	if err != nil {
		return err
	}

	seq, err := raw.AsSequence()
	if err != nil {
		return err
	}

	for child, err := range seq.All() {
		if err != nil {
			return err
		}

		if err := walkValue(depth+1, child, fn); err != nil {
			return err
		}
	}

	return nil
}
