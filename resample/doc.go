// Package resample reduces a time series to a bounded number of averaged buckets.
//
// The span between the first and the last sample is split into
// min(len(samples), intervalMax) segments of equal whole-second width. Every
// sample is assigned to the bucket nearest to its offset from the first sample,
// and each bucket is reduced to the arithmetic mean of its values. Buckets that
// receive no sample average to zero.
//
// One more bucket than the number of segments is always produced: a sample that
// sits exactly on the last segment boundary (typically the last sample) has its
// own bucket. Irregularly spaced samples may round past that bucket; each
// distinct index past it adds one bucket, and skipped indices add none.
//
// Samples must be sorted by timestamp in ascending order. Timestamps are
// compared at one-second resolution.
//
// # Usage
//
//	samples, err := resample.ParseSamples([]resample.RawSample{
//	    {Value: 123, Timestamp: "2010-07-07 10:00:00"},
//	    {Value: "44", Timestamp: "2010-07-07 10:05:00"},
//	})
//	if err != nil {
//	    return err
//	}
//	averages, err := resample.Resample(samples, 100)
package resample
