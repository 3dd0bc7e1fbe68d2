package snapshot

import (
	"fmt"
	"hash/crc32"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/chartlink/compress"
	"github.com/arloliu/chartlink/config"
	"github.com/arloliu/chartlink/endian"
	"github.com/arloliu/chartlink/errs"
	"github.com/arloliu/chartlink/format"
	"github.com/arloliu/chartlink/internal/options"
	"github.com/arloliu/chartlink/internal/pool"
)

const (
	// HeaderSize is the size of the fixed snapshot header in bytes.
	HeaderSize = 16
	// Version is the snapshot layout version written by Encode.
	Version = 1

	flagBigEndian = 0x01
)

var magic = [2]byte{'C', 'L'}

// Header describes a snapshot without decoding its payload.
type Header struct {
	Version     uint8
	BigEndian   bool
	Compression format.CompressionType
	PayloadLen  uint32
	Checksum    uint32
}

type encoderConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
}

// Option configures Encode.
type Option = options.Option[*encoderConfig]

// WithCompression selects the payload compression. The default is Zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// WithBigEndian writes header integers in big-endian order.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// Encode serializes opts into a snapshot.
//
// Returns errs.ErrPayloadTooLarge if the serialized options exceed
// compress.MaxDecodedSize, since such a snapshot could not be decoded.
func Encode(opts config.Options, opt ...Option) ([]byte, error) {
	cfg := &encoderConfig{
		compression: format.CompressionZstd,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opt...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	raw, err := yaml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}

	if len(raw) > compress.MaxDecodedSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(raw))
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	var flags byte
	if endian.IsBigEndian(cfg.engine) {
		flags |= flagBigEndian
	}

	bb := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(bb)

	bb.B = append(bb.B, magic[0], magic[1], Version, flags, byte(cfg.compression), 0, 0, 0)
	bb.B = cfg.engine.AppendUint32(bb.B, uint32(len(payload))) //nolint:gosec
	bb.B = cfg.engine.AppendUint32(bb.B, crc32.ChecksumIEEE(payload))
	_, _ = bb.Write(payload)

	return bb.Clone(), nil
}

// ReadHeader parses and validates the snapshot header.
//
// Returns errs.ErrInvalidSnapshot if data is too short, has the wrong magic or
// version, or its payload length does not match the data.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidSnapshot, len(data))
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return Header{}, fmt.Errorf("%w: bad magic 0x%02x%02x", errs.ErrInvalidSnapshot, data[0], data[1])
	}
	if data[2] != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, data[2])
	}

	engine := endian.GetLittleEndianEngine()
	bigEndian := data[3]&flagBigEndian != 0
	if bigEndian {
		engine = endian.GetBigEndianEngine()
	}

	h := Header{
		Version:     data[2],
		BigEndian:   bigEndian,
		Compression: format.CompressionType(data[4]),
		PayloadLen:  engine.Uint32(data[8:12]),
		Checksum:    engine.Uint32(data[12:16]),
	}
	if int64(h.PayloadLen) != int64(len(data)-HeaderSize) {
		return Header{}, fmt.Errorf("%w: header declares %d payload bytes, found %d",
			errs.ErrInvalidSnapshot, h.PayloadLen, len(data)-HeaderSize)
	}

	return h, nil
}

// Decode restores the options stored in a snapshot.
//
// Errors:
//   - errs.ErrInvalidSnapshot for a malformed header or payload
//   - errs.ErrChecksumMismatch if the payload was altered
//   - errs.ErrUnsupportedCompression for an unknown compression type
func Decode(data []byte) (config.Options, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return config.Options{}, err
	}

	payload := data[HeaderSize:]
	if sum := crc32.ChecksumIEEE(payload); sum != h.Checksum {
		return config.Options{}, fmt.Errorf("%w: expected 0x%08x, got 0x%08x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return config.Options{}, err
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return config.Options{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	var opts config.Options
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return config.Options{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	return opts, nil
}
