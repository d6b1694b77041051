package plotting

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/membranelab/PermeabilityAnalysis/src/ensemble"
)

func TestACFStrideKeepsEvenPresentationIndices(t *testing.T) {
	tAxis := []float64{0.5, 1, 2, 4}
	acfs := [][]float64{
		{4, 2, 1, 0.5},
		{8, 4, 2, 1},
		{2, 1, 0.5, 0.25},
		{6, 3, 1.5, 0.75},
	}
	fig, err := acfFigure(tAxis, acfs, "acf", true, false, true, DefaultACFOptions())
	if err != nil {
		t.Fatalf("acf figure: %v", err)
	}
	// Stride 2 keeps sequences 0 and 2 only.
	if got := len(fig.series); got != 2 {
		t.Fatalf("want 2 drawn sequences, got %d", got)
	}
}

func TestACFNormalizationCopiesCallerData(t *testing.T) {
	tAxis := []float64{0.5, 1, 2, 4}
	acf := []float64{4, 2, 1, 0.5}
	_, err := acfFigure(tAxis, [][]float64{acf}, "acf", true, false, true, DefaultACFOptions())
	if err != nil {
		t.Fatalf("acf figure: %v", err)
	}
	want := []float64{4, 2, 1, 0.5}
	for i := range want {
		if acf[i] != want[i] {
			t.Fatalf("caller sequence mutated at %d: %v", i, acf)
		}
	}
}

func TestACFZeroLagSampleDroppedOnLogAxis(t *testing.T) {
	tAxis := []float64{0, 1, 2, 4}
	acfs := [][]float64{{4, 2, 1, 0.5}}
	fig, err := acfFigure(tAxis, acfs, "acf", true, false, true, DefaultACFOptions())
	if err != nil {
		t.Fatalf("acf figure: %v", err)
	}
	if !fig.logX {
		t.Fatal("expected logarithmic time axis")
	}
}

func TestACFNegativeTimeRejectedOnLogAxis(t *testing.T) {
	tAxis := []float64{-1, 1, 2, 4}
	err := PlotForceACFs(tAxis, [][]float64{{4, 2, 1, 0.5}}, "unused.png", DefaultACFOptions())
	var de *ensemble.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("want DomainError, got %v", err)
	}
}

func TestACFLengthMismatch(t *testing.T) {
	tAxis := []float64{1, 2, 4}
	err := PlotForceACFs(tAxis, [][]float64{{4, 2}}, "unused.png", DefaultACFOptions())
	var se *ensemble.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("want ShapeError, got %v", err)
	}
}

func TestPlotForceACFsWritesFigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acf_per_window.png")
	tAxis := []float64{0.5, 1, 2, 4}
	acfs := [][]float64{{4, 2, 1, 0.5}, {8, 4, 2, 1}, {2, 1, 0.5, 0.25}}
	if err := PlotForceACFs(tAxis, acfs, path, DefaultACFOptions()); err != nil {
		t.Fatalf("plot acfs: %v", err)
	}
	mustExistNonEmpty(t, path)
}

func TestPlotIntegratedACFsWritesFigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "int_acf_per_window.png")
	tAxis := []float64{0.5, 1, 2, 4}
	ints := [][]float64{{0.1, 0.5, 1.2, 1.4}, {0.2, 0.9, 2.0, 2.3}}
	if err := PlotIntegratedACFs(tAxis, ints, path, DefaultACFOptions()); err != nil {
		t.Fatalf("plot integrated acfs: %v", err)
	}
	mustExistNonEmpty(t, path)
}

func TestPlotRotationalACFsPinsTimeSpan(t *testing.T) {
	tAxis := []float64{0, 1, 2, 4}
	acfs := [][]float64{{4, 2, 1, 0.5}}
	fig, err := acfFigure(tAxis, acfs, "racf", false, false, true, DefaultACFOptions())
	if err != nil {
		t.Fatalf("racf figure: %v", err)
	}
	if !fig.hasXLim || fig.xMin != 0 || fig.xMax != 4 {
		t.Fatalf("want x-limits (0, 4), got (%g, %g)", fig.xMin, fig.xMax)
	}
}

func TestPlotForceTimeseriesWithSmoother(t *testing.T) {
	path := filepath.Join(t.TempDir(), "force_timeseries.png")
	tAxis := []float64{0, 1, 2, 3}
	traces := [][]float64{{1, 3, 2, 4}, {2, 1, 3, 2}}
	smooth := func(series []float64, window, order int) ([]float64, error) {
		out := make([]float64, len(series))
		copy(out, series)
		return out, nil
	}
	o := DefaultTimeseriesOptions()
	o.SmoothWindow = 3
	if err := PlotForceTimeseries(tAxis, traces, smooth, path, o); err != nil {
		t.Fatalf("plot timeseries: %v", err)
	}
	mustExistNonEmpty(t, path)
}

func TestPlotForceTimeseriesSmootherLengthContract(t *testing.T) {
	tAxis := []float64{0, 1, 2, 3}
	traces := [][]float64{{1, 3, 2, 4}}
	short := func(series []float64, window, order int) ([]float64, error) {
		return series[:len(series)-1], nil
	}
	err := PlotForceTimeseries(tAxis, traces, short, "unused.png", DefaultTimeseriesOptions())
	var se *ensemble.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("want ShapeError for short smoother output, got %v", err)
	}
}

func TestPlotForceTimeseriesSmootherErrorPropagates(t *testing.T) {
	tAxis := []float64{0, 1, 2, 3}
	traces := [][]float64{{1, 3, 2, 4}}
	failing := func(series []float64, window, order int) ([]float64, error) {
		return nil, fmt.Errorf("window longer than series")
	}
	err := PlotForceTimeseries(tAxis, traces, failing, "unused.png", DefaultTimeseriesOptions())
	if err == nil {
		t.Fatal("expected smoother error to propagate")
	}
}
