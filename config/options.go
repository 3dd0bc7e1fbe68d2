package config

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/chartlink/errs"
)

// Default option values.
const (
	DefaultType        = "line"
	DefaultHost        = "chart.apis.google.com"
	DefaultWidth       = 920
	DefaultHeight      = 200
	DefaultIntervalMax = 100
)

// DefaultGrid is the default chg value: x step, y step, dash length, space length.
var DefaultGrid = StringList{"8.3", "20", "1", "4"}

// StringList is a list option. In YAML it may be written as a sequence or,
// for a single element, as a plain scalar.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{value.Value}

		return nil
	case yaml.SequenceNode:
		out := make(StringList, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: list items must be scalars", item.Line)
			}
			out = append(out, item.Value)
		}
		*l = out

		return nil
	default:
		return fmt.Errorf("line %d: expected a scalar or a sequence", value.Line)
	}
}

// Join returns the elements joined by commas, as used in query values.
func (l StringList) Join() string {
	return strings.Join(l, ",")
}

// Options is the typed view of a merged configuration group.
type Options struct {
	Type           string     `yaml:"type,omitempty"`
	SeriesColor    StringList `yaml:"series_color,omitempty"`
	BackgroundFill StringList `yaml:"background_fill,omitempty"`
	LineStyle      StringList `yaml:"line_style,omitempty"`
	VisibleAxis    string     `yaml:"visible_axis,omitempty"`
	IntervalMax    int        `yaml:"interval_max,omitempty"`
	Host           string     `yaml:"host,omitempty"`
	Width          int        `yaml:"width,omitempty"`
	Height         int        `yaml:"height,omitempty"`
	Grid           StringList `yaml:"grid,omitempty"`
	Data           string     `yaml:"data,omitempty"`
}

// DefaultOptions returns the built-in defaults applied beneath every group.
func DefaultOptions() Options {
	return Options{
		Type:        DefaultType,
		IntervalMax: DefaultIntervalMax,
		Host:        DefaultHost,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Grid:        slices.Clone(DefaultGrid),
	}
}

// Override returns o with every non-zero field of over applied on top.
func (o Options) Override(over Options) Options {
	if over.Type != "" {
		o.Type = over.Type
	}
	if over.SeriesColor != nil {
		o.SeriesColor = slices.Clone(over.SeriesColor)
	}
	if over.BackgroundFill != nil {
		o.BackgroundFill = slices.Clone(over.BackgroundFill)
	}
	if over.LineStyle != nil {
		o.LineStyle = slices.Clone(over.LineStyle)
	}
	if over.VisibleAxis != "" {
		o.VisibleAxis = over.VisibleAxis
	}
	if over.IntervalMax != 0 {
		o.IntervalMax = over.IntervalMax
	}
	if over.Host != "" {
		o.Host = over.Host
	}
	if over.Width != 0 {
		o.Width = over.Width
	}
	if over.Height != 0 {
		o.Height = over.Height
	}
	if over.Grid != nil {
		o.Grid = slices.Clone(over.Grid)
	}
	if over.Data != "" {
		o.Data = over.Data
	}

	return o
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	o.SeriesColor = slices.Clone(o.SeriesColor)
	o.BackgroundFill = slices.Clone(o.BackgroundFill)
	o.LineStyle = slices.Clone(o.LineStyle)
	o.Grid = slices.Clone(o.Grid)

	return o
}

// Decode converts a merged group into Options. Unknown keys are ignored.
func Decode(g Group) (Options, error) {
	var opts Options
	if len(g) == 0 {
		return opts, nil
	}

	data, err := yaml.Marshal(map[string]any(g))
	if err != nil {
		return opts, fmt.Errorf("%w: %w", errs.ErrConfigParse, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("%w: %w", errs.ErrConfigParse, err)
	}

	return opts, nil
}

// Resolve merges the named group from p and decodes it on top of DefaultOptions.
func Resolve(p Provider, name string) (Options, error) {
	merged, err := Merge(p, name)
	if err != nil {
		return Options{}, err
	}

	opts, err := Decode(merged)
	if err != nil {
		return Options{}, fmt.Errorf("group %q: %w", name, err)
	}

	return DefaultOptions().Override(opts), nil
}
