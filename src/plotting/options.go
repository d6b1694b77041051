package plotting

import "fmt"

// ProfileOptions configures one profile rendering call. It replaces the
// loose per-call flags of earlier tooling with a single structure validated
// once at entry.
type ProfileOptions struct {
	// ZUnits labels the coordinate axis; defaults to Å.
	ZUnits string
	// YUnits overrides the quantity's default unit label when non-empty.
	YUnits string
	// PlotMean draws the reduced mean curve and error band; when false only
	// the raw sweep traces are drawn.
	PlotMean bool
	// SweepAlpha is the opacity of individual sweep traces, in [0, 1].
	SweepAlpha float64
	// Grid draws gridlines on major ticks.
	Grid bool
	// AddLegend draws a legend band above the plot area, for overlays.
	AddLegend bool
	// Save finalizes the figure and writes it to the given path. When false
	// the figure is left open for further overlay calls; finalization is
	// then the caller's responsibility.
	Save bool
	// SystemName labels this system's mean curve in the legend.
	SystemName string
	// Figure, when non-nil, is a caller-owned drawing surface reused across
	// calls to overlay multiple systems. The call mutates it and never saves
	// it unless Save is set.
	Figure *Figure
	// Width and Height override the figure dimensions in pixels.
	Width, Height int
	// Caption, when non-empty, is drawn onto the rendered image.
	Caption string
}

// DefaultProfileOptions returns the options every profile plot starts from:
// mean curve with band, half-opacity sweeps, grid on, save on.
func DefaultProfileOptions() ProfileOptions {
	return ProfileOptions{
		ZUnits:     "Å",
		PlotMean:   true,
		SweepAlpha: 0.5,
		Grid:       true,
		Save:       true,
	}
}

func (o *ProfileOptions) validate() error {
	if o.SweepAlpha < 0 || o.SweepAlpha > 1 {
		return fmt.Errorf("sweep alpha %g outside [0, 1]", o.SweepAlpha)
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("figure dimensions %dx%d must not be negative", o.Width, o.Height)
	}
	if o.ZUnits == "" {
		o.ZUnits = "Å"
	}
	return nil
}

// figure returns the drawing surface for this call: the caller-supplied one
// when overlaying, otherwise a fresh figure, with the styling flags applied
// either way.
func (o *ProfileOptions) figure() *Figure {
	f := o.Figure
	if f == nil {
		f = NewFigure()
	}
	f.SetSize(o.Width, o.Height)
	f.SetGrid(o.Grid)
	if o.AddLegend {
		f.SetLegend(true)
	}
	if o.Caption != "" {
		f.SetCaption(o.Caption)
	}
	return f
}

// unitOr picks the caller's unit override or the quantity default.
func unitOr(override, def string) string {
	if override != "" {
		return override
	}
	return def
}
