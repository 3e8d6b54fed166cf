package compress

// ZstdCompressor compresses streams with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits streams that are
// archived or shipped over the network and decoded far less often than they
// are stored.
//
// Two implementations exist: the pure Go klauspost/compress encoder (the
// default) and valyala/gozstd, selected with the gozstd build tag when cgo is
// available. Both produce standard Zstandard frames and can read each other's
// output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(stream)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
