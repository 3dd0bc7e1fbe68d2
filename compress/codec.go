package compress

import (
	"fmt"

	"github.com/arloliu/chartlink/errs"
	"github.com/arloliu/chartlink/format"
)

// Compressor compresses a payload. The returned slice is owned by the caller.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Returns an error if data is corrupted or was produced by another algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// MaxDecodedSize caps the decompressed size of a snapshot payload. An encoded
// chart of several thousand points is a few KiB of YAML.
const MaxDecodedSize = 1 << 20

func payloadTooLarge(algo string) error {
	return fmt.Errorf("%w: %s payload exceeds %d bytes", errs.ErrPayloadTooLarge, algo, MaxDecodedSize)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Returns errs.ErrUnsupportedCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}
