package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chartlink/compress"
	"github.com/arloliu/chartlink/config"
	"github.com/arloliu/chartlink/errs"
	"github.com/arloliu/chartlink/format"
)

func testOptions() config.Options {
	opts := config.DefaultOptions()
	opts.SeriesColor = config.StringList{"008Cd6"}
	opts.BackgroundFill = config.StringList{"B", "EBF5FB", "0", "0", "0"}
	opts.LineStyle = config.StringList{"3", "1", "0"}
	opts.VisibleAxis = "x,y"
	opts.Data = "FPOPOPXMKRQYaTSafcWVQPLRJRRV9ghyfdeSVaUVZWXULjfXeSQdaffgaMbgeedXPObVWhaKykmpbbVbhbZwhciup1"

	return opts
}

func TestEncodeDecode(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, ct := range compressions {
		t.Run(ct.String(), func(t *testing.T) {
			opts := testOptions()
			data, err := Encode(opts, WithCompression(ct))
			require.NoError(t, err)

			h, err := ReadHeader(data)
			require.NoError(t, err)
			require.Equal(t, uint8(Version), h.Version)
			require.Equal(t, ct, h.Compression)
			require.False(t, h.BigEndian)
			require.Equal(t, len(data)-HeaderSize, int(h.PayloadLen))

			restored, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, opts, restored)
		})
	}
}

func TestEncode_Defaults(t *testing.T) {
	data, err := Encode(testOptions())
	require.NoError(t, err)
	require.Equal(t, byte('C'), data[0])
	require.Equal(t, byte('L'), data[1])

	h, err := ReadHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, h.Compression)
}

func TestEncode_BigEndian(t *testing.T) {
	opts := testOptions()
	data, err := Encode(opts, WithBigEndian(), WithCompression(format.CompressionS2))
	require.NoError(t, err)

	h, err := ReadHeader(data)
	require.NoError(t, err)
	require.True(t, h.BigEndian)
	require.Equal(t, byte(0), data[8], "big-endian length starts with the high byte")

	restored, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, opts, restored)
}

func TestEncode_EmptyOptions(t *testing.T) {
	data, err := Encode(config.Options{}, WithCompression(format.CompressionNone))
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, config.Options{}, restored)
}

func TestEncode_InvalidCompression(t *testing.T) {
	_, err := Encode(testOptions(), WithCompression(format.CompressionType(0x7)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestEncode_PayloadTooLarge(t *testing.T) {
	opts := config.Options{Type: "line", Data: strings.Repeat("A", compress.MaxDecodedSize)}
	data, err := Encode(opts)
	require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
	require.Nil(t, data)
}

func TestDecode_Errors(t *testing.T) {
	valid, err := Encode(testOptions(), WithCompression(format.CompressionNone))
	require.NoError(t, err)

	clone := func() []byte {
		return append([]byte(nil), valid...)
	}

	t.Run("short", func(t *testing.T) {
		_, err := Decode(valid[:HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := clone()
		data[0] = 'X'
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("bad version", func(t *testing.T) {
		data := clone()
		data[2] = 9
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Decode(valid[:len(valid)-1])
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		data := clone()
		data[len(data)-2] ^= 0xff
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("unknown compression", func(t *testing.T) {
		data := clone()
		data[4] = 0x7
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	})
}
