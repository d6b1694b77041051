package plotting

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// bandSeries fills the region between an upper and a lower curve, used for
// the ±1 standard-error band around a mean profile. It renders through
// chart.Draw.BoundedSeries, the same mechanism go-chart's Bollinger band
// series uses, and stays out of the legend by carrying no name.
type bandSeries struct {
	Name    string
	Style   chart.Style
	YAxis   chart.YAxisType
	XValues []float64
	Upper   []float64
	Lower   []float64
}

func (bs *bandSeries) GetName() string           { return bs.Name }
func (bs *bandSeries) GetStyle() chart.Style     { return bs.Style }
func (bs *bandSeries) GetYAxis() chart.YAxisType { return bs.YAxis }

func (bs *bandSeries) Len() int { return len(bs.XValues) }

func (bs *bandSeries) GetBoundedValues(index int) (x, y1, y2 float64) {
	return bs.XValues[index], bs.Upper[index], bs.Lower[index]
}

func (bs *bandSeries) GetBoundedLastValues() (x, y1, y2 float64) {
	n := len(bs.XValues) - 1
	return bs.XValues[n], bs.Upper[n], bs.Lower[n]
}

func (bs *bandSeries) Validate() error {
	if len(bs.XValues) == 0 {
		return fmt.Errorf("band series must have xvalues set")
	}
	if len(bs.Upper) != len(bs.XValues) || len(bs.Lower) != len(bs.XValues) {
		return fmt.Errorf("band series bounds must match xvalues length %d", len(bs.XValues))
	}
	return nil
}

func (bs *bandSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, s chart.Style) {
	style := bs.Style.InheritFrom(s)
	chart.Draw.BoundedSeries(r, canvasBox, xrange, yrange, style, bs)
}
