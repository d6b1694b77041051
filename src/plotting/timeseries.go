package plotting

import (
	"fmt"

	"github.com/membranelab/PermeabilityAnalysis/src/ensemble"
)

// Smoother is the external local-polynomial regression (Savitzky–Golay)
// collaborator: it must return a sequence of the same length as its input.
// windowLength is odd; polyOrder is the fit order. The numerics are not this
// package's concern.
type Smoother func(series []float64, windowLength, polyOrder int) ([]float64, error)

// TimeseriesOptions configures the raw+smoothed force trace view.
type TimeseriesOptions struct {
	TimeUnits  string
	ForceUnits string
	Grid       bool
	// SmoothWindow and SmoothOrder are passed through to the Smoother.
	// They are quality knobs, not semantics.
	SmoothWindow int
	SmoothOrder  int
	Width        int
	Height       int
}

// DefaultTimeseriesOptions returns the usual knobs for raw force traces
// sampled every ps.
func DefaultTimeseriesOptions() TimeseriesOptions {
	return TimeseriesOptions{
		TimeUnits:    "ps",
		ForceUnits:   "kcal/mol-Å",
		Grid:         true,
		SmoothWindow: 15001,
		SmoothOrder:  3,
	}
}

// ACFOptions configures the autocorrelation views. Stride keeps every
// Stride-th sequence in presentation order to declutter dense multi-window
// plots.
type ACFOptions struct {
	TimeUnits string
	Normalize bool
	Grid      bool
	Stride    int
	Width     int
	Height    int
}

// DefaultACFOptions returns the usual ACF view: normalized to the zero-lag
// value, every second window.
func DefaultACFOptions() ACFOptions {
	return ACFOptions{TimeUnits: "ps", Normalize: true, Grid: true, Stride: 2}
}

func (o *ACFOptions) validate() error {
	if o.Stride < 1 {
		return fmt.Errorf("stride %d must be at least 1", o.Stride)
	}
	return nil
}

// PlotForceTimeseries overlays each sweep's raw force trace with its
// smoothed version. A nil smoother draws raw traces only.
func PlotForceTimeseries(t []float64, traces any, smooth Smoother, path string, o TimeseriesOptions) error {
	m, err := ensemble.Normalize(traces)
	if err != nil {
		return err
	}
	if err := checkProfileShape(t, m); err != nil {
		return err
	}
	fig := NewFigure()
	fig.SetSize(o.Width, o.Height)
	fig.SetGrid(o.Grid)
	for _, row := range m {
		col := fig.nextColor()
		fig.addLineColor("", t, row, col)
		if smooth == nil {
			continue
		}
		sm, err := smooth(row, o.SmoothWindow, o.SmoothOrder)
		if err != nil {
			return fmt.Errorf("smooth trace: %w", err)
		}
		if len(sm) != len(row) {
			return &ensemble.ShapeError{Reason: fmt.Sprintf(
				"smoother returned %d samples for a %d-sample trace", len(sm), len(row))}
		}
		fig.addLineColor("", t, sm, fig.nextColor())
	}
	fig.SetLabels(
		fmt.Sprintf("time [%s]", unitOr(o.TimeUnits, "ps")),
		fmt.Sprintf("F_z(t) [%s]", unitOr(o.ForceUnits, "kcal/mol-Å")))
	return fig.Save(path)
}

// plotACFs is the shared recipe for the three autocorrelation views.
func plotACFs(t []float64, acfs [][]float64, path, yLabel string, logX, logY, normalize bool, o ACFOptions) error {
	fig, err := acfFigure(t, acfs, yLabel, logX, logY, normalize, o)
	if err != nil {
		return err
	}
	return fig.Save(path)
}

func acfFigure(t []float64, acfs [][]float64, yLabel string, logX, logY, normalize bool, o ACFOptions) (*Figure, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(t) < 2 {
		return nil, &ensemble.ShapeError{Reason: fmt.Sprintf("time axis has %d samples, need at least 2", len(t))}
	}
	if len(acfs) == 0 {
		return nil, &ensemble.ShapeError{Reason: "no autocorrelation sequences"}
	}
	for i, acf := range acfs {
		if len(acf) != len(t) {
			return nil, &ensemble.ShapeError{Reason: fmt.Sprintf(
				"time axis has %d samples but sequence %d has %d", len(t), i, len(acf))}
		}
	}
	if logX && t[0] < 0 {
		return nil, &ensemble.DomainError{Reason: fmt.Sprintf(
			"logarithmic time axis requires non-negative times, got t[0]=%g", t[0])}
	}
	fig := NewFigure()
	fig.SetSize(o.Width, o.Height)
	fig.SetGrid(o.Grid)
	if logX {
		fig.SetLogX()
	}
	if logY {
		fig.SetLogY()
	}
	for i, acf := range acfs {
		if i%o.Stride != 0 {
			continue
		}
		ys := acf
		if normalize {
			n, err := ensemble.NormalizeACF(acf)
			if err != nil {
				return nil, err
			}
			ys = n
		}
		xs := t
		if logX && t[0] == 0 {
			// Drop the zero-lag sample rather than translate log(0).
			xs, ys = t[1:], ys[1:]
		}
		fig.AddLine("", xs, ys)
	}
	if !logX {
		fig.SetXLimits(t[0], t[len(t)-1])
	}
	fig.SetLabels(fmt.Sprintf("t [%s]", unitOr(o.TimeUnits, "ps")), yLabel)
	return fig, nil
}

// PlotForceACFs renders per-window force autocorrelation decays on a
// log-linear axis, normalized to acf[0] = 1 when o.Normalize is set.
// Normalization always works on a copy; the caller's sequences are reused
// by the integration step and are never mutated here.
func PlotForceACFs(t []float64, acfs [][]float64, path string, o ACFOptions) error {
	return plotACFs(t, acfs, path, "⟨ΔF(t)ΔF(0)⟩", true, false, o.Normalize, o)
}

// PlotRotationalACFs renders per-window rotational autocorrelation decays on
// linear axes with x-limits pinned to the sampled time span.
func PlotRotationalACFs(t []float64, acfs [][]float64, path string, o ACFOptions) error {
	return plotACFs(t, acfs, path, "⟨Θ(t)Θ(0)⟩", false, false, o.Normalize, o)
}

// PlotIntegratedACFs renders the running time-integrals of the force ACFs
// (integrated upstream) on log-log axes. Never normalized.
func PlotIntegratedACFs(t []float64, ints [][]float64, path string, o ACFOptions) error {
	return plotACFs(t, ints, path, "∫₀ᵗ ⟨ΔF(t′)ΔF(0)⟩ dt′", true, true, false, o)
}
