package chart

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/chartlink/config"
	"github.com/arloliu/chartlink/errs"
	"github.com/arloliu/chartlink/format"
	"github.com/arloliu/chartlink/resample"
	"github.com/arloliu/chartlink/snapshot"
)

const defaultURL = "http://chart.apis.google.com/chart?cht=lc&chm=&chco=&chls=&chg=8.3,20,1,4&chd=s:&chxt=&chs=920x200"

var baseTime = time.Date(2010, 7, 7, 0, 0, 0, 0, time.UTC)

func samplesAt(offsets []int, values []float64) []resample.Sample {
	samples := make([]resample.Sample, len(offsets))
	for i := range offsets {
		samples[i] = resample.Sample{
			Value:     values[i],
			Timestamp: baseTime.Add(time.Duration(offsets[i]) * time.Second),
		}
	}

	return samples
}

func newTestChart(t *testing.T, opts ...Option) *Chart {
	t.Helper()
	c, err := New(opts...)
	require.NoError(t, err)

	return c
}

func TestNew_Defaults(t *testing.T) {
	c := newTestChart(t)
	require.Equal(t, defaultURL, c.Render())
	require.Equal(t, defaultURL, c.String())
	require.Equal(t, config.DefaultOptions(), c.Options())
}

func TestNew_Options(t *testing.T) {
	c := newTestChart(t,
		WithHost("charts.example.com"),
		WithSize(300, 50),
		WithIntervalMax(12),
		WithOptions(config.Options{Type: "sparkline", SeriesColor: config.StringList{"ff0000"}}),
	)

	opts := c.Options()
	require.Equal(t, "charts.example.com", opts.Host)
	require.Equal(t, 300, opts.Width)
	require.Equal(t, 50, opts.Height)
	require.Equal(t, 12, opts.IntervalMax)
	require.Equal(t,
		"http://charts.example.com/chart?cht=ls&chm=&chco=ff0000&chls=&chg=8.3,20,1,4&chd=s:&chxt=&chs=300x50",
		c.Render())
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		err  error
	}{
		{"empty host", WithHost(""), errs.ErrInvalidHost},
		{"zero width", WithSize(0, 200), errs.ErrInvalidSize},
		{"negative height", WithSize(920, -1), errs.ErrInvalidSize},
		{"zero interval max", WithIntervalMax(0), errs.ErrInvalidIntervalMax},
		{"bad type", WithOptions(config.Options{Type: "pie"}), errs.ErrInvalidChartType},
		{"cyclic group", WithGroup(config.MapProvider{"a": {"group": "a"}}, "a"), errs.ErrConfigCycle},
		{"undecodable group", WithGroup(config.MapProvider{"a": {"interval_max": "x"}}, "a"), errs.ErrConfigParse},
		{"negative interval max in group", WithGroup(config.MapProvider{"a": {"interval_max": -3}}, "a"), errs.ErrInvalidIntervalMax},
		{"negative interval max in options", WithOptions(config.Options{IntervalMax: -1}), errs.ErrInvalidIntervalMax},
		{"negative width in group", WithGroup(config.MapProvider{"a": {"width": -920}}, "a"), errs.ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opt)
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, c)
		})
	}
}

func TestNew_WithGroup(t *testing.T) {
	provider := config.MapProvider{
		"default": {
			"type":            "line",
			"series_color":    "008Cd6",
			"background_fill": []any{"B", "EBF5FB", 0, 0, 0},
			"line_style":      []any{3, 1, 0},
			"visible_axis":    "x,y",
		},
		"spark": {"group": "default", "type": "sparkline", "interval_max": 4},
	}

	c := newTestChart(t, WithGroup(provider, "spark"))
	require.Equal(t, "sparkline", c.Options().Type)
	require.Equal(t, 4, c.Options().IntervalMax)
	require.Equal(t,
		"http://chart.apis.google.com/chart?cht=ls&chm=B,EBF5FB,0,0,0&chco=008Cd6&chls=3,1,0&chg=8.3,20,1,4&chd=s:&chxt=x,y&chs=920x200",
		c.Render())

	cache := config.NewCache(provider)
	cached := newTestChart(t, WithCachedGroup(cache, "spark"))
	require.Equal(t, c.Render(), cached.Render())
	require.Equal(t, 1, cache.Len())
}

func TestNew_WithGroupFromFile(t *testing.T) {
	p, err := config.LoadFile(filepath.Join("..", "config", "testdata", "charts.yaml"))
	require.NoError(t, err)

	c := newTestChart(t, WithGroup(p, "default"))
	require.Equal(t,
		"http://chart.apis.google.com/chart?cht=lc&chm=B,EBF5FB,0,0,0&chco=008Cd6&chls=3,1,0&chg=8.3,20,1,4&chd=s:&chxt=x,y&chs=920x200",
		c.Render())
}

func TestChart_Type(t *testing.T) {
	c := newTestChart(t)

	same, err := c.Type("sparkline")
	require.NoError(t, err)
	require.Same(t, c, same)
	require.Equal(t, "sparkline", c.Options().Type)

	_, err = c.Type("pie")
	require.ErrorIs(t, err, errs.ErrInvalidChartType)
	require.Contains(t, err.Error(), `"pie"`)
	require.Equal(t, "sparkline", c.Options().Type, "invalid type leaves the chart unchanged")

	_, err = c.Type("line")
	require.NoError(t, err)
	require.Contains(t, c.Render(), "cht=lc")
}

func TestChart_FluentSetters(t *testing.T) {
	c := newTestChart(t)
	colors := []string{"008Cd6"}

	got := c.SeriesColor(colors...).
		BackgroundFill("B", "EBF5FB", "0", "0", "0").
		LineStyle("3", "1", "0").
		ShowAxis("x,y")
	require.Same(t, c, got)

	colors[0] = "changed"
	require.Equal(t,
		"http://chart.apis.google.com/chart?cht=lc&chm=B,EBF5FB,0,0,0&chco=008Cd6&chls=3,1,0&chg=8.3,20,1,4&chd=s:&chxt=x,y&chs=920x200",
		c.Render())

	c.SeriesColor("ff0000", "00ff00")
	require.Contains(t, c.Render(), "&chco=ff0000,00ff00&")
}

func TestChart_ShowAxis(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := newTestChart(t, WithLogger(logger))

	c.ShowAxis("x,y")
	require.Equal(t, "x,y", c.Options().VisibleAxis)
	require.Empty(t, hook.AllEntries())

	for _, bad := range []string{"x,z", "", "x,,y", "a"} {
		c.ShowAxis(bad)
		require.Equal(t, "x,y", c.Options().VisibleAxis, "invalid list %q is ignored", bad)
	}
	require.Len(t, hook.AllEntries(), 4)
	require.Equal(t, "ignoring visible axis setting", hook.LastEntry().Message)
	require.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	c.ShowAxis("t,r")
	require.Equal(t, "t,r", c.Options().VisibleAxis)
}

func TestChart_SetData(t *testing.T) {
	tests := []struct {
		name        string
		offsets     []int
		values      []float64
		intervalMax int
		expected    string
	}{
		{"single sample", []int{0}, []float64{10}, 5, "9A"},
		{"one sample per bucket", []int{0, 25, 50, 75, 100}, []float64{0, 61, 30, 61, 0}, 4, "A9e9A"},
		{"gap bucket", []int{0, 25, 50, 75, 100}, []float64{0, 61, 30, 61, 0}, 5, "A9Ae9A"},
		{"all zero", []int{0, 10, 20}, []float64{0, 0, 0}, 2, "AAA"},
		{"negative average", []int{0, 10}, []float64{-4, 8}, 1, "_9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChart(t, WithIntervalMax(tt.intervalMax))
			require.NoError(t, c.SetData(samplesAt(tt.offsets, tt.values)))
			require.Equal(t, tt.expected, c.Data())
			require.Contains(t, c.Render(), "&chd=s:"+tt.expected+"&")
		})
	}
}

func TestChart_SetData_Empty(t *testing.T) {
	c := newTestChart(t)
	require.NoError(t, c.SetData(samplesAt([]int{0, 60}, []float64{1, 2})))
	require.NotEmpty(t, c.Data())

	require.NoError(t, c.SetData(nil))
	require.Empty(t, c.Data())
	require.Equal(t, defaultURL, c.Render())
}

func TestChart_SetData_ErrorKeepsData(t *testing.T) {
	c := newTestChart(t)
	require.NoError(t, c.SetData(samplesAt([]int{0, 60}, []float64{1, 2})))
	before := c.Data()

	err := c.SetData(samplesAt([]int{60, 0}, []float64{1, 2}))
	require.ErrorIs(t, err, errs.ErrUnsortedSamples)
	require.Equal(t, before, c.Data())

	err = c.SetRawData([]resample.RawSample{{Value: 1, Timestamp: "soon"}})
	require.ErrorIs(t, err, errs.ErrInvalidTimestamp)
	require.Equal(t, before, c.Data())
}

func TestChart_SetRawData(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := newTestChart(t, WithLogger(logger))

	err := c.SetRawData([]resample.RawSample{
		{Value: 123, Timestamp: "2010-07-07"},
		{Value: "44", Timestamp: "2010-07-08"},
	})
	require.NoError(t, err)
	// 2 samples over one day: buckets at 0 and 1 day, plus the trailing one.
	require.Equal(t, "9AW", c.Data())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "chart data resampled", entry.Message)
	require.Equal(t, 2, entry.Data["samples"])
	require.Equal(t, 3, entry.Data["buckets"])
}

func TestChart_Binary(t *testing.T) {
	c := newTestChart(t, WithHost("charts.example.com"))
	c.SeriesColor("008Cd6").LineStyle("3", "1", "0").ShowAxis("x,y")
	require.NoError(t, c.SetData(samplesAt([]int{0, 25, 50, 75, 100}, []float64{0, 61, 30, 61, 0})))

	data, err := c.MarshalBinary()
	require.NoError(t, err)

	var restored Chart
	require.NoError(t, restored.UnmarshalBinary(data))
	require.Equal(t, c.Render(), restored.Render())
	require.Equal(t, c.Options(), restored.Options())

	restored.ShowAxis("bad")
	require.Equal(t, "x,y", restored.Options().VisibleAxis)
}

func TestChart_UnmarshalBinary_Errors(t *testing.T) {
	var c Chart
	require.ErrorIs(t, c.UnmarshalBinary([]byte("short")), errs.ErrInvalidSnapshot)

	data, err := snapshot.Encode(config.Options{Type: "pie"}, snapshot.WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.ErrorIs(t, c.UnmarshalBinary(data), errs.ErrInvalidChartType)

	data, err = snapshot.Encode(config.Options{Type: "line", IntervalMax: -2})
	require.NoError(t, err)
	require.ErrorIs(t, c.UnmarshalBinary(data), errs.ErrInvalidIntervalMax)
	require.Equal(t, config.Options{}, c.Options())
}

func TestChart_OptionsIsCopy(t *testing.T) {
	c := newTestChart(t)
	c.SeriesColor("ff0000")

	opts := c.Options()
	opts.SeriesColor[0] = "000000"
	require.Equal(t, config.StringList{"ff0000"}, c.Options().SeriesColor)
}
