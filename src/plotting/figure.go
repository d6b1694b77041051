// Package plotting renders membrane-permeability profiles and time-domain
// force views as PNG figures. Every rendering routine follows one contract:
// faint per-sweep traces behind a mean curve with a shaded ±1 standard-error
// band, mirrored x-limits about the membrane center, and an explicit save
// step. The drawing surface is a Figure, which the caller may own across
// multiple calls to overlay systems; a rendering call never finalizes a
// caller-supplied Figure unless asked to.
package plotting

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 900
	defaultHeight = 560
)

// bandGray matches the neutral band fill used for single-system profiles.
var bandGray = drawing.Color{R: 0xa8, G: 0xa8, B: 0xa8, A: 255}

// Figure is a drawing surface accumulating series until the caller renders
// it. It wraps a go-chart chart that is assembled lazily at render time, so
// labels, limits and scales can be set in any order. A Figure is not safe
// for concurrent use; render unrelated figures on separate Figures instead.
type Figure struct {
	title          string
	xLabel, yLabel string
	width, height  int
	logX, logY     bool
	grid           bool
	legend         bool
	caption        string

	xMin, xMax float64
	hasXLim    bool
	yMin, yMax float64
	hasYLim    bool

	yTicks  []chart.Tick
	series  []chart.Series
	palette int
}

// NewFigure returns an empty figure with default dimensions and gridlines on.
func NewFigure() *Figure {
	return &Figure{width: defaultWidth, height: defaultHeight, grid: true}
}

// SetTitle sets the figure title.
func (f *Figure) SetTitle(t string) { f.title = t }

// SetLabels sets the x and y axis labels.
func (f *Figure) SetLabels(x, y string) { f.xLabel, f.yLabel = x, y }

// SetSize overrides the output dimensions in pixels.
func (f *Figure) SetSize(w, h int) {
	if w > 0 {
		f.width = w
	}
	if h > 0 {
		f.height = h
	}
}

// SetXLimits pins the x-axis range.
func (f *Figure) SetXLimits(min, max float64) { f.xMin, f.xMax, f.hasXLim = min, max, true }

// SetYLimits pins the y-axis range with nice tick marks across it.
func (f *Figure) SetYLimits(min, max float64) {
	f.yMin, f.yMax, f.hasYLim = min, max, true
	if !f.logY {
		f.yTicks = niceTicks(min, max, 6)
	}
}

// SetLogX puts the x axis on a logarithmic scale.
func (f *Figure) SetLogX() { f.logX = true }

// SetLogY puts the y axis on a logarithmic scale.
func (f *Figure) SetLogY() { f.logY = true }

// SetGrid toggles gridlines on major ticks.
func (f *Figure) SetGrid(on bool) { f.grid = on }

// SetLegend toggles the legend band above the plot area.
func (f *Figure) SetLegend(on bool) { f.legend = on }

// SetCaption attaches a caption drawn onto the rendered image.
func (f *Figure) SetCaption(c string) { f.caption = c }

// nextColor reserves the next palette color without adding a series, so a
// mean line can be drawn on top of traces added later yet keep first pick.
func (f *Figure) nextColor() drawing.Color {
	c := chart.GetDefaultColor(f.palette)
	f.palette++
	return c
}

// AddLine appends a named series and returns the palette color it was
// assigned, so a matching uncertainty band can reuse it.
func (f *Figure) AddLine(name string, xs, ys []float64) drawing.Color {
	col := f.nextColor()
	f.addLineColor(name, xs, ys, col)
	return col
}

func (f *Figure) addLineColor(name string, xs, ys []float64, col drawing.Color) {
	f.series = append(f.series, chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: 1.8, StrokeColor: col},
	})
}

// addTrace appends an unnamed faint series for one individual sweep. Unnamed
// series never appear in the legend.
func (f *Figure) addTrace(xs, ys []float64, alpha float64) {
	col := f.nextColor().WithAlpha(uint8(alpha * 255))
	f.series = append(f.series, chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: 1.0, StrokeColor: col},
	})
}

// AddBand appends a shaded region between two curves in the given color.
func (f *Figure) AddBand(xs, upper, lower []float64, col drawing.Color) {
	f.series = append(f.series, &bandSeries{
		XValues: xs,
		Upper:   upper,
		Lower:   lower,
		Style:   chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1.0},
	})
}

// AddRefLine appends a dashed red horizontal reference segment from x0 to x1.
func (f *Figure) AddRefLine(x0, x1, y float64) {
	f.series = append(f.series, chart.ContinuousSeries{
		XValues: []float64{x0, x1},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeWidth:     1.5,
			StrokeColor:     chart.ColorRed,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	})
}

func (f *Figure) xRange() chart.Range {
	if f.logX {
		r := &chart.LogarithmicRange{}
		if f.hasXLim {
			r.Min, r.Max = f.xMin, f.xMax
		}
		return r
	}
	if !f.hasXLim {
		return nil
	}
	return &chart.ContinuousRange{Min: f.xMin, Max: f.xMax}
}

func (f *Figure) yRange() chart.Range {
	if f.logY {
		r := &chart.LogarithmicRange{}
		if f.hasYLim {
			r.Min, r.Max = f.yMin, f.yMax
		}
		return r
	}
	if !f.hasYLim {
		return nil
	}
	return &chart.ContinuousRange{Min: f.yMin, Max: f.yMax}
}

func (f *Figure) build() chart.Chart {
	padTop := 16
	if f.legend {
		// Room for the horizontal legend band above the plot area.
		padTop = 48
	}
	ch := chart.Chart{
		Title:      f.title,
		Width:      f.width,
		Height:     f.height,
		Background: chart.Style{Padding: chart.Box{Top: padTop, Left: 16, Right: 14, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:           f.xLabel,
			Range:          f.xRange(),
			GridMajorStyle: gridStyle(f.grid),
		},
		YAxis: chart.YAxis{
			Name:           f.yLabel,
			Range:          f.yRange(),
			Ticks:          f.yTicks,
			GridMajorStyle: gridStyle(f.grid),
		},
		Series: f.series,
	}
	if f.legend {
		ch.Elements = []chart.Renderable{chart.LegendThin(&ch)}
	}
	return ch
}

func (f *Figure) renderPNG() ([]byte, error) {
	if len(f.series) == 0 {
		return nil, fmt.Errorf("figure has no series to render")
	}
	ch := f.build()
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render figure: %w", err)
	}
	return buf.Bytes(), nil
}

// Image renders the figure to an in-memory image, with the caption applied
// if one is set. This is the seam a viewer UI consumes instead of a file.
func (f *Figure) Image() (image.Image, error) {
	raw, err := f.renderPNG()
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode rendered figure: %w", err)
	}
	if f.caption != "" {
		img = drawCaption(img, f.caption)
	}
	return img, nil
}

// Save renders the figure fully in memory and then writes the PNG in a
// single operation, so a render failure leaves no partial file behind.
func (f *Figure) Save(path string) error {
	var raw []byte
	if f.caption == "" {
		b, err := f.renderPNG()
		if err != nil {
			return err
		}
		raw = b
	} else {
		img, err := f.Image()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
		raw = buf.Bytes()
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Debugf("wrote figure %s (%d series)", path, len(f.series))
	return nil
}
