// Package compress provides the codecs used to store and ship encoded Ion streams.
//
// The lazy reader needs the whole stream as one contiguous, immutable byte
// region. Streams kept compressed at rest are therefore restored in a single
// step before reading: Open decompresses an envelope into a fresh buffer and
// the reader borrows that buffer for the rest of the session.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the stream is stored as is. Open returns
//     a slice of its input, so reading does not copy at all.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Pure Go by
//     default; build with the gozstd tag to use the cgo binding.
//   - S2 (format.CompressionS2): balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// # Usage
//
//	sealed, err := compress.Seal(format.CompressionZstd, stream)
//	...
//	stream, _, err := compress.Open(sealed)
//	r, err := lazy.NewReader(stream)
//
// Individual codecs can also be used directly through GetCodec or
// CreateCodec.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use. Encoders and
// decoders with expensive internal state are pooled.
package compress
