// Package endian provides the byte order used by fixed-width fields of the
// binary format.
//
// Every multi-byte fixed-width field in the format (floats, symbol IDs,
// integer bodies) is little-endian regardless of the host, so decoders obtain
// a single shared engine:
//
//	engine := endian.GetLittleEndianEngine()
//	f := math.Float32frombits(engine.Uint32(body))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by the wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Uint reads an unsigned little-endian integer of 0 to 8 bytes.
//
// Widths of 2, 4 and 8 bytes go through the engine directly; other widths are
// assembled byte by byte. Bytes beyond the eighth are ignored.
func Uint(engine EndianEngine, data []byte) uint64 {
	switch len(data) {
	case 0:
		return 0
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(engine.Uint16(data))
	case 4:
		return uint64(engine.Uint32(data))
	case 8:
		return engine.Uint64(data)
	}

	n := min(len(data), 8)
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(data[i])
	}

	return v
}
