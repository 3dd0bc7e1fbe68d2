// Package compress provides the payload codecs used by chart snapshots.
//
// Supported algorithms:
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio; gozstd when built with cgo,
//     klauspost/compress otherwise
//   - S2 (format.CompressionS2): fast, moderate ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Snapshot payloads are small YAML documents, so the choice mostly matters for
// charts carrying long encoded series. All codecs are safe for concurrent use.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
