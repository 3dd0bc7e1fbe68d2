// Package chartlink builds chart image URLs from time-series data.
//
// A time series is resampled into a bounded number of averaged buckets, the
// averages are compressed into the simple text encoding of the chart image
// service, and the result is placed in a URL together with the chart options
// (type, colors, fill, line style, visible axes).
//
// # Core Features
//
//   - Time bucketing of irregular series with per-bucket averages
//   - 62-symbol simple encoding with a missing-data sentinel
//   - Hierarchical configuration groups loaded from YAML, with cycle detection
//   - Binary snapshots of chart definitions (Zstd, S2 or LZ4 compressed)
//
// # Basic Usage
//
//	c, err := chartlink.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.SeriesColor("008Cd6").LineStyle("3", "1", "0").ShowAxis("x,y")
//	if err := c.SetData(samples); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Render())
//
// Using configuration groups:
//
//	provider, err := config.LoadFile("charts.yaml")
//	...
//	c, err := chartlink.NewFromGroup(provider, "dashboard")
//
// # Package Structure
//
// This package provides top-level wrappers around the chart, resample and
// encoding packages for the most common use cases. Use those packages directly
// for finer control.
package chartlink

import (
	"github.com/arloliu/chartlink/chart"
	"github.com/arloliu/chartlink/config"
	"github.com/arloliu/chartlink/encoding"
	"github.com/arloliu/chartlink/resample"
)

// New creates a chart with the built-in defaults and the given options.
//
// Defaults: line chart on chart.apis.google.com, 920x200 pixels, grid
// 8.3,20,1,4 and at most 100 resampling intervals.
func New(opts ...chart.Option) (*chart.Chart, error) {
	return chart.New(opts...)
}

// NewFromGroup creates a chart configured by the named group of p, merged with
// the group's parents. An empty name selects config.DefaultGroup.
//
// Extra options are applied after the group.
func NewFromGroup(p config.Provider, name string, opts ...chart.Option) (*chart.Chart, error) {
	all := make([]chart.Option, 0, len(opts)+1)
	all = append(all, chart.WithGroup(p, name))
	all = append(all, opts...)

	return chart.New(all...)
}

// Resample reduces samples to at most intervalMax+1 bucket averages.
func Resample(samples []resample.Sample, intervalMax int) ([]float64, error) {
	return resample.Resample(samples, intervalMax)
}

// Encode encodes values with the simple encoding.
func Encode(values []float64) (string, error) {
	return encoding.SimpleEncodeFloats(values)
}
