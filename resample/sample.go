package resample

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/chartlink/encoding"
	"github.com/arloliu/chartlink/errs"
)

// Sample is a single time-series observation.
type Sample struct {
	Value     float64
	Timestamp time.Time
}

// RawSample is an observation as read from an untyped source such as a decoded
// YAML or JSON document.
type RawSample struct {
	Value     any    `yaml:"value" json:"value"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
}

// timestampLayouts are tried in order by ParseTimestamp. Layouts without a zone
// are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a sample timestamp.
//
// Accepted forms are RFC 3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05",
// "2006-01-02 15:04", "2006-01-02" and integer Unix seconds. Returns
// errs.ErrInvalidTimestamp wrapped with the input if no form matches.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidTimestamp, s)
}

// ParseSamples converts raw samples into Samples.
//
// The conversion is all-or-nothing: the first unparsable timestamp
// (errs.ErrInvalidTimestamp) or non-numeric value (errs.ErrInvalidValue)
// aborts it and no samples are returned.
func ParseSamples(raw []RawSample) ([]Sample, error) {
	samples := make([]Sample, 0, len(raw))
	for i, r := range raw {
		ts, err := ParseTimestamp(r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}

		val, ok := encoding.ValueOf(r.Value).Float()
		if !ok {
			return nil, fmt.Errorf("sample %d: %w: %v", i, errs.ErrInvalidValue, r.Value)
		}

		samples = append(samples, Sample{Value: val, Timestamp: ts})
	}

	return samples, nil
}
