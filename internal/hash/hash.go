// Package hash provides the hash function used for value fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of the given bytes.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
