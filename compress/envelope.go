package compress

import (
	"fmt"

	"github.com/arloliu/lazyion/encoding"
	"github.com/arloliu/lazyion/errs"
	"github.com/arloliu/lazyion/format"
)

// An envelope frames a compressed stream so it can be restored without
// out-of-band information:
//
//	+------------------+----------------------------+-----------------+
//	| compression (1B) | stream length (FlexUInt)   | payload         |
//	+------------------+----------------------------+-----------------+
//
// The stream length is the size of the uncompressed stream and is checked
// after decompression.

// Seal compresses stream with the given algorithm and wraps it in an envelope.
func Seal(compressionType format.CompressionType, stream []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(stream)
	if err != nil {
		return nil, fmt.Errorf("compress %s stream: %w", compressionType, err)
	}

	out := make([]byte, 0, 1+encoding.FlexUIntSize(uint64(len(stream)))+len(payload))
	out = append(out, byte(compressionType))

	out, err = encoding.AppendFlexUInt(out, uint64(len(stream)))
	if err != nil {
		return nil, err
	}

	return append(out, payload...), nil
}

// Open restores the stream held by an envelope.
//
// Returns:
//   - []byte: The uncompressed stream; for CompressionNone it aliases data
//   - format.CompressionType: The algorithm the stream was compressed with
//   - error: errs.ErrIncomplete for a truncated header,
//     errs.ErrUnsupportedCompression for an unknown algorithm,
//     errs.ErrDecoding wrapping errs.ErrMalformed if the payload does not
//     restore to the announced length
func Open(data []byte) ([]byte, format.CompressionType, error) {
	if len(data) == 0 {
		return nil, 0, errs.Incomplete("envelope header", 0)
	}

	compressionType := format.CompressionType(data[0])
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, compressionType, err
	}

	length, size, err := encoding.DecodeFlexUInt(data[1:])
	if err != nil {
		return nil, compressionType, errs.Rebase(err, 1)
	}

	payloadOffset := 1 + size
	stream, err := codec.Decompress(data[payloadOffset:])
	if err != nil {
		return nil, compressionType, errs.Decoding(errs.ErrMalformed, payloadOffset, "%s payload: %v", compressionType, err)
	}

	if uint64(len(stream)) != length {
		return nil, compressionType, errs.Decoding(errs.ErrMalformed, payloadOffset,
			"%s payload restored %d bytes, envelope announced %d", compressionType, len(stream), length)
	}

	return stream, compressionType, nil
}
