// Package pool provides reusable scratch memory for the decoder.
//
// Decoding is zero-copy for almost every value, but a few conversions need
// short-lived staging bytes (for example reversing the little-endian
// coefficient of a large decimal into the big-endian form math/big expects).
// Those bytes come from a ByteBuffer that lives for one top-level read and is
// reset, not freed, between reads.
package pool

import "sync"

const (
	ScratchBufferDefaultSize  = 1024 * 4  // 4KiB
	ScratchBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is an append-only region of scratch memory.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the bytes handed out since the last Reset.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, but retains the allocated memory for reuse.
//
// Slices returned by Alloc before the Reset will be overwritten by later
// allocations and must no longer be used.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes handed out since the last Reset.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hand out requiredBytes more bytes without reallocating.
//
// Small buffers grow by ScratchBufferDefaultSize; larger ones grow by 25% of
// their capacity. Growing reallocates, so slices handed out earlier keep
// pointing at the old array: they stay valid but are no longer reused.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ScratchBufferDefaultSize
	if cap(bb.B) > 4*ScratchBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Alloc hands out n bytes of scratch memory, growing the buffer if necessary.
//
// The returned slice has length n and its capacity ends at the end of the
// allocation, so appending to it never touches memory handed out later.
// Its contents are unspecified.
func (bb *ByteBuffer) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}

	bb.Grow(n)
	start := len(bb.B)
	bb.B = bb.B[:start+n]

	return bb.B[start : start+n : start+n]
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers. Buffers that grew beyond
// maxThreshold are dropped instead of pooled to avoid retaining memory spikes.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var scratchDefaultPool = NewByteBufferPool(ScratchBufferDefaultSize, ScratchBufferMaxThreshold)

// GetScratchBuffer retrieves a ByteBuffer from the default scratch pool.
func GetScratchBuffer() *ByteBuffer {
	return scratchDefaultPool.Get()
}

// PutScratchBuffer returns a ByteBuffer to the default scratch pool.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchDefaultPool.Put(bb)
}
