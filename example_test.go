package chartlink_test

import (
	"fmt"
	"time"

	"github.com/arloliu/chartlink"
	"github.com/arloliu/chartlink/config"
	"github.com/arloliu/chartlink/resample"
)

func Example() {
	c, err := chartlink.New()
	if err != nil {
		fmt.Println(err)
		return
	}

	start := time.Date(2010, 7, 7, 0, 0, 0, 0, time.UTC)
	var samples []resample.Sample
	for i, v := range []float64{12, 40, 33, 58, 21} {
		samples = append(samples, resample.Sample{Value: v, Timestamp: start.Add(time.Duration(i) * time.Hour)})
	}

	c.SeriesColor("008Cd6").
		BackgroundFill("B", "EBF5FB", "0", "0", "0").
		LineStyle("3", "1", "0").
		ShowAxis("x,y")
	if err := c.SetData(samples); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(c.Render())
	// Output:
	// http://chart.apis.google.com/chart?cht=lc&chm=B,EBF5FB,0,0,0&chco=008Cd6&chls=3,1,0&chg=8.3,20,1,4&chd=s:NqAj9W&chxt=x,y&chs=920x200
}

func ExampleEncode() {
	encoded, _ := chartlink.Encode([]float64{0, 61, 30})
	fmt.Println(encoded)
	// Output: A9e
}

func ExampleNewFromGroup() {
	provider, err := config.Parse([]byte(`
default:
  type: line
  interval_max: 5
  series_color: [red]
sparkline:
  group: default
  type: sparkline
  interval_max: 10
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	c, err := chartlink.NewFromGroup(provider, "sparkline")
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := c.Options()
	fmt.Println(opts.Type, opts.IntervalMax, opts.SeriesColor)
	// Output: sparkline 10 [red]
}
