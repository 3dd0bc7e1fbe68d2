package compress

import "github.com/klauspost/compress/zstd"

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation is selected at build time: gozstd (cgo) when cgo is
// available, klauspost/compress/zstd otherwise. Both produce standard zstd
// frames, so snapshots are portable between builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkZstdFrame rejects a frame whose header declares more than
// MaxDecodedSize bytes of content. Frames without a content size pass and are
// checked after decoding.
func checkZstdFrame(data []byte) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return err
	}
	if h.HasFCS && h.FrameContentSize > MaxDecodedSize {
		return payloadTooLarge("zstd")
	}

	return nil
}

func checkZstdOutput(out []byte) ([]byte, error) {
	if len(out) > MaxDecodedSize {
		return nil, payloadTooLarge("zstd")
	}

	return out, nil
}
