package lazy

import "github.com/arloliu/lazyion/internal/pool"

// Arena supplies short-lived scratch memory for value conversions.
//
// Reading an arbitrary precision integer or decimal coefficient stages its
// bytes in scratch memory before handing them to math/big. A reader
// configured with an Arena takes that memory from it and resets it at every
// top-level Next, so a long scan performs no per-value allocation for
// staging. Values decoded by a reader without an arena borrow scratch memory
// from a package-wide pool instead.
//
// Nothing returned by the decoder aliases arena memory.
type Arena struct {
	buf *pool.ByteBuffer
}

// NewArena creates an arena with the given initial capacity.
// A non-positive size takes a buffer from the shared scratch pool.
func NewArena(size int) *Arena {
	if size <= 0 {
		return &Arena{buf: pool.GetScratchBuffer()}
	}

	return &Arena{buf: pool.NewByteBuffer(size)}
}

// Len returns the number of bytes handed out since the last Reset.
func (a *Arena) Len() int {
	return a.buf.Len()
}

// Cap returns the current capacity of the arena.
func (a *Arena) Cap() int {
	return a.buf.Cap()
}

// Reset makes all arena memory available again.
func (a *Arena) Reset() {
	a.buf.Reset()
}

// Release returns the arena memory to the shared scratch pool.
// The arena must not be used afterwards.
func (a *Arena) Release() {
	pool.PutScratchBuffer(a.buf)
	a.buf = nil
}

func (a *Arena) alloc(n int) []byte {
	return a.buf.Alloc(n)
}

// withScratch runs fn with n bytes of scratch memory taken from arena, or from
// the shared pool when arena is nil.
func withScratch[T any](arena *Arena, n int, fn func(scratch []byte) T) T {
	if arena != nil {
		return fn(arena.alloc(n))
	}

	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	return fn(bb.Alloc(n))
}
