// Package errs defines the sentinel errors returned by chartlink packages.
//
// Errors are usually wrapped with additional context, so callers should
// compare them with errors.Is rather than by equality.
package errs

import "errors"

// Chart builder errors.
var (
	// ErrInvalidChartType is returned when a chart type is not one of the supported types.
	ErrInvalidChartType = errors.New("invalid chart type")
	// ErrInvalidAxis is returned when a visible axis token is not one of x, t, y or r.
	ErrInvalidAxis = errors.New("invalid axis")
	// ErrInvalidSize is returned when a chart width or height is not positive.
	ErrInvalidSize = errors.New("invalid chart size")
	// ErrInvalidHost is returned when the chart host is empty.
	ErrInvalidHost = errors.New("invalid chart host")
)

// Resampling and encoding errors.
var (
	// ErrInvalidIntervalMax is returned when the bucket upper bound is not positive.
	ErrInvalidIntervalMax = errors.New("interval max must be positive")
	// ErrInvalidTimestamp is returned when a sample timestamp cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid sample timestamp")
	// ErrInvalidValue is returned when a sample value is not numeric.
	ErrInvalidValue = errors.New("invalid sample value")
	// ErrUnsortedSamples is returned when a sample is older than the first sample.
	ErrUnsortedSamples = errors.New("samples are not sorted by timestamp")
	// ErrEmptyValues is returned when encoding an empty value sequence.
	ErrEmptyValues = errors.New("no values to encode")
)

// Configuration errors.
var (
	// ErrConfigCycle is returned when a config group chain refers back to itself
	// or exceeds the maximum chain depth.
	ErrConfigCycle = errors.New("config group cycle detected")
	// ErrConfigRead is returned when a config file cannot be read.
	ErrConfigRead = errors.New("failed to read config file")
	// ErrConfigParse is returned when a config document cannot be parsed.
	ErrConfigParse = errors.New("failed to parse config")
)

// Snapshot errors.
var (
	// ErrInvalidSnapshot is returned when a snapshot header is truncated or malformed.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrChecksumMismatch is returned when a snapshot payload fails CRC validation.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
	// ErrUnsupportedCompression is returned for unknown compression types.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrPayloadTooLarge is returned when a snapshot payload exceeds compress.MaxDecodedSize.
	ErrPayloadTooLarge = errors.New("snapshot payload too large")
)
