package compress

// NoOpCompressor stores streams uncompressed.
//
// Enveloping with NoOpCompressor still records the stream length, which lets a
// truncated transfer be detected before any value is read.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The result aliases the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. The result aliases the input, so a
// reader over it borrows the caller's buffer directly.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
