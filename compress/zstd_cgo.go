//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Snapshot payloads are tiny; a higher level costs little and shrinks long series.
const zstdLevel = 9

// Compress compresses data into a zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a zstd frame.
//
// Returns errs.ErrPayloadTooLarge if the frame holds more than MaxDecodedSize bytes.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := checkZstdFrame(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return checkZstdOutput(out)
}
