// Package collision indexes encoded values by fingerprint.
package collision

import "bytes"

// Tracker groups encodings by their 64-bit fingerprint and detects when two
// different encodings share one.
type Tracker struct {
	byHash       map[uint64][]int // fingerprint → indexes into encodings
	encodings    [][]byte         // distinct encodings in insertion order
	hasCollision bool
}

// NewTracker creates a new tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byHash:    make(map[uint64][]int),
		encodings: make([][]byte, 0),
	}
}

// Track records an encoding under its fingerprint.
//
// If an identical encoding was tracked before, Track returns its index and
// true. Otherwise the encoding is stored and its new index is returned with
// false. A different encoding under an already used fingerprint is a
// collision: both are kept and HasCollision starts reporting true.
//
// The encoding is retained, not copied.
func (t *Tracker) Track(hash uint64, encoded []byte) (int, bool) {
	indexes := t.byHash[hash]
	for _, idx := range indexes {
		if bytes.Equal(t.encodings[idx], encoded) {
			return idx, true
		}
	}

	if len(indexes) > 0 {
		t.hasCollision = true
	}

	idx := len(t.encodings)
	t.encodings = append(t.encodings, encoded)
	t.byHash[hash] = append(indexes, idx)

	return idx, false
}

// HasCollision returns true if two different encodings shared a fingerprint.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Encodings returns the distinct encodings in the order they were first tracked.
func (t *Tracker) Encodings() [][]byte {
	return t.encodings
}

// Count returns the number of distinct encodings.
func (t *Tracker) Count() int {
	return len(t.encodings)
}

// Reset clears all tracked encodings and collision state.
func (t *Tracker) Reset() {
	// Clear maps but preserve capacity to avoid allocations
	for k := range t.byHash {
		delete(t.byHash, k)
	}
	t.encodings = t.encodings[:0]
	t.hasCollision = false
}
