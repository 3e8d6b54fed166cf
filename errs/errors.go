// Package errs defines the errors returned by the lazyion decoder.
//
// Every failure reported by the decoder matches exactly one of two broad
// categories through errors.Is:
//
//   - ErrIncomplete: the bytes needed to finish the current item are not
//     available. Supplying more data and retrying from the same position may
//     succeed.
//   - ErrDecoding: the bytes are present but do not conform to the format.
//     Retrying with the same bytes always fails again.
//
// Decoding errors additionally wrap a more specific sentinel (for example
// ErrInvalidOpcode or ErrInvalidUTF8) so callers can branch on the cause.
package errs

import (
	"errors"
	"fmt"
)

// Error categories.
var (
	ErrIncomplete = errors.New("incomplete data")
	ErrDecoding   = errors.New("decoding error")
)

// Decoding causes. These are always reported wrapped in a *DecodingError.
var (
	ErrInvalidOpcode        = errors.New("invalid opcode")
	ErrInvalidVersionMarker = errors.New("invalid version marker")
	ErrUnsupportedVersion   = errors.New("unsupported version")
	ErrInvalidUTF8          = errors.New("invalid UTF-8 text")
	ErrNotImplemented       = errors.New("not implemented")
	ErrFlexTooLarge         = errors.New("flex integer too large")
	ErrLengthOverflow       = errors.New("length overflows the address space")
	ErrMalformed            = errors.New("malformed value")
)

// API usage errors.
var (
	ErrTypeMismatch           = errors.New("type mismatch")
	ErrInvalidOffset          = errors.New("invalid offset")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// IncompleteError reports that an item extends past the available data.
type IncompleteError struct {
	// Label describes what was being read when the data ran out.
	Label string
	// Offset is the absolute position where the shortfall was detected.
	Offset int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", ErrIncomplete, e.Label, e.Offset)
}

// Is reports whether target is ErrIncomplete.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

// DecodingError reports bytes that do not conform to the format.
type DecodingError struct {
	// Err is the specific cause, one of the decoding sentinels above.
	Err error
	// Msg carries the details of the failure.
	Msg string
	// Offset is the absolute position of the offending item.
	Offset int
}

func (e *DecodingError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s at offset %d", ErrDecoding, e.Err, e.Offset)
	}

	return fmt.Sprintf("%s: %s at offset %d: %s", ErrDecoding, e.Err, e.Offset, e.Msg)
}

// Is reports whether target is ErrDecoding.
func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding
}

// Unwrap returns the specific cause.
func (e *DecodingError) Unwrap() error {
	return e.Err
}

// Incomplete returns an *IncompleteError for the given label and offset.
func Incomplete(label string, offset int) error {
	return &IncompleteError{Label: label, Offset: offset}
}

// Decoding returns a *DecodingError wrapping cause, with a formatted message.
func Decoding(cause error, offset int, format string, args ...any) error {
	return &DecodingError{
		Err:    cause,
		Msg:    fmt.Sprintf(format, args...),
		Offset: offset,
	}
}

// IsIncomplete reports whether err is, or wraps, an incomplete data error.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// IsDecoding reports whether err is, or wraps, a decoding error.
func IsDecoding(err error) bool {
	return errors.Is(err, ErrDecoding)
}

// Rebase returns a copy of err with its offset shifted by base.
//
// Low level decoders report offsets relative to the slice they were given;
// callers that know the absolute position of that slice rebase the error
// before returning it. Errors of other types are returned unchanged.
func Rebase(err error, base int) error {
	var incomplete *IncompleteError
	if errors.As(err, &incomplete) {
		return &IncompleteError{Label: incomplete.Label, Offset: incomplete.Offset + base}
	}

	var decoding *DecodingError
	if errors.As(err, &decoding) {
		return &DecodingError{Err: decoding.Err, Msg: decoding.Msg, Offset: decoding.Offset + base}
	}

	return err
}
