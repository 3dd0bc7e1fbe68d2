package resample

import (
	"fmt"
	"math"

	"github.com/arloliu/chartlink/errs"
	"github.com/arloliu/chartlink/internal/pool"
)

// Intervals returns the number of segments used for n samples.
func Intervals(n, intervalMax int) int {
	return min(n, intervalMax)
}

// SegmentWidth returns the width in whole seconds of each segment for a series
// spanning from start to stop, rounded half away from zero.
func SegmentWidth(start, stop int64, intervals int) int64 {
	if intervals <= 0 {
		return 0
	}

	return int64(math.Round(float64(stop-start) / float64(intervals)))
}

// Bucketize assigns sample values to time buckets.
//
// The result holds Intervals(len(samples), intervalMax)+1 base buckets in time
// order, unused ones empty. A sample whose index falls past the base buckets
// opens one extra bucket per distinct index, appended in index order; indices
// in between that receive no sample get no bucket. Returns nil for an empty
// sample slice.
//
// Errors:
//   - errs.ErrInvalidIntervalMax if intervalMax is not positive
//   - errs.ErrUnsortedSamples if a sample is older than the first one
func Bucketize(samples []Sample, intervalMax int) ([][]float64, error) {
	if intervalMax <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidIntervalMax, intervalMax)
	}
	if len(samples) == 0 {
		return nil, nil
	}

	seconds, cleanup := pool.GetInt64Slice(len(samples))
	defer cleanup()
	for i := range samples {
		seconds[i] = samples[i].Timestamp.Unix()
	}

	intervals := Intervals(len(samples), intervalMax)
	start := seconds[0]
	segment := SegmentWidth(start, seconds[len(seconds)-1], intervals)

	buckets := make([][]float64, intervals+1)
	base := len(buckets)
	lastIdx := -1
	for i, ts := range seconds {
		offset := ts - start
		if offset < 0 {
			return nil, fmt.Errorf("%w: sample %d precedes the first sample by %ds",
				errs.ErrUnsortedSamples, i, -offset)
		}

		// A zero-width segment collapses the whole series into the first bucket.
		idx := 0
		if segment != 0 {
			idx = int(math.Round(float64(offset) / float64(segment)))
		}

		switch {
		case idx < base:
			buckets[idx] = append(buckets[idx], samples[i].Value)
		case idx == lastIdx:
			last := len(buckets) - 1
			buckets[last] = append(buckets[last], samples[i].Value)
		default:
			buckets = append(buckets, []float64{samples[i].Value})
		}
		lastIdx = idx
	}

	return buckets, nil
}

// Resample reduces samples to per-bucket averages.
//
// See Bucketize for the bucket layout. Empty buckets average to zero.
// Returns nil for an empty sample slice.
func Resample(samples []Sample, intervalMax int) ([]float64, error) {
	buckets, err := Bucketize(samples, intervalMax)
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		return nil, nil
	}

	averages := make([]float64, len(buckets))
	for i, bucket := range buckets {
		averages[i] = mean(bucket)
	}

	return averages, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
