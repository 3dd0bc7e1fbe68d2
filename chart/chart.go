// Package chart builds chart image URLs.
//
// A Chart starts from configuration defaults, is adjusted with chained setters,
// receives a time series through SetData and renders a URL:
//
//	c, err := chart.New(chart.WithGroup(provider, "dashboard"))
//	if err != nil {
//	    return err
//	}
//	c.SeriesColor("008Cd6").LineStyle("3", "1", "0").ShowAxis("x,y")
//	if err := c.SetData(samples); err != nil {
//	    return err
//	}
//	url := c.Render()
//
// A Chart is not safe for concurrent mutation.
package chart

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/chartlink/config"
	"github.com/arloliu/chartlink/encoding"
	"github.com/arloliu/chartlink/errs"
	"github.com/arloliu/chartlink/format"
	"github.com/arloliu/chartlink/internal/options"
	"github.com/arloliu/chartlink/resample"
	"github.com/arloliu/chartlink/snapshot"
)

// Chart holds the options of one chart image.
type Chart struct {
	opts   config.Options
	logger logrus.FieldLogger
}

// New creates a Chart from config.DefaultOptions and the given options.
//
// The resulting options are validated as a whole, so values taken from a
// configuration group are held to the same rules as the With* options.
//
// Errors:
//   - the first error reported by an option
//   - errs.ErrInvalidChartType if the chart type is not supported
//   - errs.ErrInvalidIntervalMax if the interval max is not positive
//   - errs.ErrInvalidSize if the width or height is not positive
func New(opts ...Option) (*Chart, error) {
	s := &settings{
		opts:   config.DefaultOptions(),
		logger: discardLogger(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if err := validate(s.opts); err != nil {
		return nil, err
	}

	return &Chart{opts: s.opts, logger: s.logger}, nil
}

// Type sets the chart type, "line" or "sparkline".
//
// An unsupported name returns errs.ErrInvalidChartType and leaves the chart unchanged.
func (c *Chart) Type(name string) (*Chart, error) {
	if _, err := format.ParseChartType(name); err != nil {
		return c, err
	}
	c.opts.Type = name

	return c, nil
}

// SeriesColor sets the series colors as hex RRGGBB values.
func (c *Chart) SeriesColor(colors ...string) *Chart {
	c.opts.SeriesColor = slices.Clone(colors)
	return c
}

// BackgroundFill sets the chm fill marker parts, e.g. "B", "EBF5FB", "0", "0", "0".
func (c *Chart) BackgroundFill(parts ...string) *Chart {
	c.opts.BackgroundFill = slices.Clone(parts)
	return c
}

// LineStyle sets the line thickness, dash length and space length.
func (c *Chart) LineStyle(parts ...string) *Chart {
	c.opts.LineStyle = slices.Clone(parts)
	return c
}

// ShowAxis sets the visible axes from a comma-separated list of x, t, y and r.
//
// The list is accepted or ignored as a whole: if any token is invalid the
// previous setting is kept. No error is reported.
func (c *Chart) ShowAxis(axes string) *Chart {
	if _, err := format.ParseAxes(axes); err != nil {
		c.log().WithError(err).WithField("axes", axes).Debug("ignoring visible axis setting")
		return c
	}
	c.opts.VisibleAxis = axes

	return c
}

// SetData resamples samples into at most IntervalMax buckets and stores the
// encoded averages as the chart data.
//
// An empty series clears the data. On error the previous data is kept.
func (c *Chart) SetData(samples []resample.Sample) error {
	averages, err := resample.Resample(samples, c.opts.IntervalMax)
	if err != nil {
		return err
	}
	if len(averages) == 0 {
		c.opts.Data = ""
		return nil
	}

	encoded, err := encoding.SimpleEncodeFloats(averages)
	if err != nil {
		return err
	}
	c.opts.Data = encoded

	c.log().WithFields(logrus.Fields{
		"samples":      len(samples),
		"buckets":      len(averages),
		"interval_max": c.opts.IntervalMax,
	}).Debug("chart data resampled")

	return nil
}

// SetRawData parses raw samples and passes them to SetData.
//
// Parsing is all-or-nothing; on error the previous data is kept.
func (c *Chart) SetRawData(raw []resample.RawSample) error {
	samples, err := resample.ParseSamples(raw)
	if err != nil {
		return err
	}

	return c.SetData(samples)
}

// Data returns the encoded series.
func (c *Chart) Data() string {
	return c.opts.Data
}

// Options returns a copy of the chart options.
func (c *Chart) Options() config.Options {
	return c.opts.Clone()
}

// Render returns the chart image URL.
//
// Every query parameter is present in a fixed order; unset values are empty.
func (c *Chart) Render() string {
	chartType, _ := format.ParseChartType(c.opts.Type)

	var sb strings.Builder
	sb.Grow(128 + len(c.opts.Data))

	sb.WriteString("http://")
	sb.WriteString(c.opts.Host)
	sb.WriteString("/chart?cht=")
	sb.WriteString(chartType.Code())
	sb.WriteString("&chm=")
	sb.WriteString(c.opts.BackgroundFill.Join())
	sb.WriteString("&chco=")
	sb.WriteString(c.opts.SeriesColor.Join())
	sb.WriteString("&chls=")
	sb.WriteString(c.opts.LineStyle.Join())
	sb.WriteString("&chg=")
	sb.WriteString(c.opts.Grid.Join())
	sb.WriteString("&chd=s:")
	sb.WriteString(c.opts.Data)
	sb.WriteString("&chxt=")
	sb.WriteString(c.opts.VisibleAxis)
	sb.WriteString("&chs=")
	sb.WriteString(strconv.Itoa(c.opts.Width))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(c.opts.Height))

	return sb.String()
}

// String implements fmt.Stringer by rendering the URL.
func (c *Chart) String() string {
	return c.Render()
}

// MarshalBinary implements encoding.BinaryMarshaler using a zstd snapshot.
func (c *Chart) MarshalBinary() ([]byte, error) {
	return snapshot.Encode(c.opts)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Fields missing from the snapshot take their default values.
func (c *Chart) UnmarshalBinary(data []byte) error {
	restored, err := snapshot.Decode(data)
	if err != nil {
		return err
	}

	opts := config.DefaultOptions().Override(restored)
	if err := validate(opts); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	c.opts = opts

	return nil
}

func validate(opts config.Options) error {
	if _, err := format.ParseChartType(opts.Type); err != nil {
		return err
	}
	if opts.IntervalMax <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidIntervalMax, opts.IntervalMax)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidSize, opts.Width, opts.Height)
	}

	return nil
}

func (c *Chart) log() logrus.FieldLogger {
	if c.logger == nil {
		c.logger = discardLogger()
	}

	return c.logger
}
