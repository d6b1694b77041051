package plotting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/membranelab/PermeabilityAnalysis/src/ensemble"
)

// symTolerance bounds how far the z grid may deviate from an exact mirror
// before symmetrization is refused. Upstream grids are constructed mirrored,
// so this only absorbs float formatting noise.
const symTolerance = 1e-6

// Dataset bundles the arrays one analysis run produces, as handed over by
// the upstream pipeline. Fields left empty are skipped by RenderAll.
type Dataset struct {
	// ZWindows is the spatial coordinate of each window, ascending and
	// mirrored about zero.
	ZWindows []float64 `json:"z_windows"`
	// Forces, FreeEnergy and Resistance hold one row per sweep.
	Forces     [][]float64 `json:"forces,omitempty"`
	FreeEnergy [][]float64 `json:"free_energy,omitempty"`
	Resistance [][]float64 `json:"resistance,omitempty"`
	// Diffusion and DiffusionErr are pre-aggregated upstream.
	Diffusion    []float64 `json:"diffusion,omitempty"`
	DiffusionErr []float64 `json:"diffusion_err,omitempty"`

	// Time is the sample time base for raw force traces.
	Time []float64 `json:"time,omitempty"`
	// ForceTraces holds one raw time series per sweep.
	ForceTraces [][]float64 `json:"force_traces,omitempty"`

	// ACFTime is the lag axis shared by the ACF arrays, one row per window.
	ACFTime      []float64   `json:"acf_time,omitempty"`
	ForceACFs    [][]float64 `json:"force_acfs,omitempty"`
	IntForceACFs [][]float64 `json:"int_force_acfs,omitempty"`
}

// Default output filenames for the curated figure set.
const (
	FileForces          = "forces.png"
	FileFreeEnergy      = "delta_G.png"
	FileSymFreeEnergy   = "delG-sym.png"
	FileDiffusion       = "d_z.png"
	FileResistance      = "res_z.png"
	FileForceTimeseries = "force_timeseries.png"
	FileForceACFs       = "acf_per_window.png"
	FileIntForceACFs    = "int_acf_per_window.png"
)

// RenderAll renders every figure the dataset has inputs for into outDir,
// creating the directory if needed. The symmetrized free energy figure is
// derived here: the sweep matrix is reduced to mean and error, then folded
// about z = 0. A caller-supplied Figure in opts is not meaningful for a
// batch and is rejected. The smoother may be nil for raw-only traces.
func RenderAll(ds *Dataset, outDir string, smooth Smoother, opts ProfileOptions) error {
	defer TimeTrack(time.Now(), "render all figures")
	if opts.Figure != nil {
		return fmt.Errorf("batch rendering cannot reuse a caller-supplied figure")
	}
	opts.Save = true
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	write := func(name string, render func(path string) error) error {
		path := filepath.Join(outDir, name)
		if err := render(path); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		Infof("wrote %s", path)
		return nil
	}

	z := ds.ZWindows
	if len(ds.Forces) > 0 {
		if err := write(FileForces, func(p string) error {
			return PlotForces(z, ds.Forces, p, opts)
		}); err != nil {
			return err
		}
	}
	if len(ds.FreeEnergy) > 0 {
		if err := write(FileFreeEnergy, func(p string) error {
			return PlotFreeEnergy(z, ds.FreeEnergy, p, opts)
		}); err != nil {
			return err
		}
		if err := write(FileSymFreeEnergy, func(p string) error {
			mean, se, err := ensemble.MeanAndError(ensemble.SweepMatrix(ds.FreeEnergy))
			if err != nil {
				return err
			}
			sym, symErr, err := ensemble.Symmetrize(z, mean, se, symTolerance)
			if err != nil {
				return err
			}
			_, err = PlotSymFreeEnergy(z, sym, symErr, p, opts)
			return err
		}); err != nil {
			return err
		}
	}
	if len(ds.Resistance) > 0 {
		if err := write(FileResistance, func(p string) error {
			_, err := PlotResistance(z, ds.Resistance, p, opts)
			return err
		}); err != nil {
			return err
		}
	}
	if len(ds.Diffusion) > 0 {
		if err := write(FileDiffusion, func(p string) error {
			return PlotDiffusionCoefficient(z, ds.Diffusion, ds.DiffusionErr, p, opts)
		}); err != nil {
			return err
		}
	}
	if len(ds.ForceTraces) > 0 {
		if err := write(FileForceTimeseries, func(p string) error {
			to := DefaultTimeseriesOptions()
			to.Grid = opts.Grid
			to.Width, to.Height = opts.Width, opts.Height
			return PlotForceTimeseries(ds.Time, ds.ForceTraces, smooth, p, to)
		}); err != nil {
			return err
		}
	}
	if len(ds.ForceACFs) > 0 {
		if err := write(FileForceACFs, func(p string) error {
			ao := DefaultACFOptions()
			ao.Grid = opts.Grid
			ao.Width, ao.Height = opts.Width, opts.Height
			return PlotForceACFs(ds.ACFTime, ds.ForceACFs, p, ao)
		}); err != nil {
			return err
		}
	}
	if len(ds.IntForceACFs) > 0 {
		if err := write(FileIntForceACFs, func(p string) error {
			ao := DefaultACFOptions()
			ao.Grid = opts.Grid
			ao.Width, ao.Height = opts.Width, opts.Height
			return PlotIntegratedACFs(ds.ACFTime, ds.IntForceACFs, p, ao)
		}); err != nil {
			return err
		}
	}
	return nil
}
