package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses payloads with S2 block encoding.
//
// Snapshot payloads are small, so the slower EncodeBetter is used for its
// ratio. Blocks declaring more than MaxDecodedSize bytes are rejected before
// any output is allocated.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data. An empty payload compresses to nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decompresses an S2 block.
//
// Returns errs.ErrPayloadTooLarge if the block decodes to more than MaxDecodedSize bytes.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > MaxDecodedSize {
		return nil, payloadTooLarge("s2")
	}

	return s2.Decode(make([]byte, n), data)
}
