package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/chartlink/errs"
)

type (
	ChartType       uint8
	Axis            uint8
	CompressionType uint8
)

const (
	TypeLine      ChartType = 0x1 // TypeLine is a line chart with axes.
	TypeSparkline ChartType = 0x2 // TypeSparkline is a line chart without axes.

	AxisX Axis = 0x1 // AxisX is the bottom x-axis.
	AxisT Axis = 0x2 // AxisT is the top x-axis.
	AxisY Axis = 0x3 // AxisY is the left y-axis.
	AxisR Axis = 0x4 // AxisR is the right y-axis.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// String returns the configuration name of the chart type.
func (t ChartType) String() string {
	switch t {
	case TypeLine:
		return "line"
	case TypeSparkline:
		return "sparkline"
	default:
		return "unknown"
	}
}

// Code returns the value of the cht query parameter for the chart type.
//
// Unknown chart types render as a line chart.
func (t ChartType) Code() string {
	if t == TypeSparkline {
		return "ls"
	}

	return "lc"
}

// ParseChartType parses a chart type name.
//
// Returns errs.ErrInvalidChartType wrapped with the offending name if the name
// is not one of "line" or "sparkline".
func ParseChartType(name string) (ChartType, error) {
	switch name {
	case "line":
		return TypeLine, nil
	case "sparkline":
		return TypeSparkline, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidChartType, name)
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisT:
		return "t"
	case AxisY:
		return "y"
	case AxisR:
		return "r"
	default:
		return "unknown"
	}
}

// ParseAxis parses a single visible axis token.
func ParseAxis(token string) (Axis, error) {
	switch token {
	case "x":
		return AxisX, nil
	case "t":
		return AxisT, nil
	case "y":
		return AxisY, nil
	case "r":
		return AxisR, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidAxis, token)
	}
}

// ParseAxes parses a comma-separated list of visible axes, e.g. "x,y".
//
// The list is validated as a whole: if any token is invalid, no axes are
// returned along with the error for the first offending token.
func ParseAxes(list string) ([]Axis, error) {
	tokens := strings.Split(list, ",")
	axes := make([]Axis, 0, len(tokens))
	for _, token := range tokens {
		axis, err := ParseAxis(token)
		if err != nil {
			return nil, err
		}
		axes = append(axes, axis)
	}

	return axes, nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
