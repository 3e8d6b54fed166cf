package lazy

import (
	"fmt"

	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/internal/options"
)

// ReaderConfig holds the settings of a Reader.
type ReaderConfig struct {
	offset int
	arena  *Arena
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*ReaderConfig]

// WithOffset declares the absolute stream position of the first byte of the
// data handed to NewReader.
//
// It is used to resume reading a stream whose earlier bytes are no longer
// available: pass the remaining bytes and the position they start at, and
// every offset the reader reports stays absolute.
func WithOffset(offset int) ReaderOption {
	return options.New(func(c *ReaderConfig) error {
		if offset < 0 {
			return fmt.Errorf("%w: negative offset %d", errs.ErrInvalidOffset, offset)
		}
		c.offset = offset

		return nil
	})
}

// WithArena makes the reader take scratch memory from arena and reset it at
// every top-level Next.
func WithArena(arena *Arena) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.arena = arena
	})
}
