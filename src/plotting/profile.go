package plotting

import (
	"fmt"
	"math"

	"github.com/membranelab/PermeabilityAnalysis/src/ensemble"
)

const (
	// BulkWaterDiffusion is the bulk water self-diffusion coefficient in
	// cm²/s, from Raabe and Sadus, JCP 2012. Drawn as a reference line on
	// diffusion profiles.
	BulkWaterDiffusion = 3.86e-5

	// BoltzmannKcal is kB in kcal/mol-K.
	BoltzmannKcal = 1.9872041e-3

	// refSpan is how far inward from each box edge, in axis units, the bulk
	// diffusion reference line extends.
	refSpan = 10.0

	// diffusionYMax caps the diffusion profile y-axis so bulk spikes at the
	// box edges do not flatten the membrane interior.
	diffusionYMax = 3e-4

	// bandAlpha is the translucency of color-matched bands on overlays.
	bandAlpha = 51.0 / 255.0
)

// checkProfileShape validates the coordinate axis against the sweep matrix
// before any drawing or file I/O happens.
func checkProfileShape(z []float64, m ensemble.SweepMatrix) error {
	if len(z) < 2 {
		return &ensemble.ShapeError{Reason: fmt.Sprintf("axis has %d windows, need at least 2", len(z))}
	}
	if m.Windows() != len(z) {
		return &ensemble.ShapeError{Reason: fmt.Sprintf(
			"axis has %d windows but sweep matrix has %d columns", len(z), m.Windows())}
	}
	return nil
}

func checkVectorShape(z []float64, name string, v []float64) error {
	if len(z) < 2 {
		return &ensemble.ShapeError{Reason: fmt.Sprintf("axis has %d windows, need at least 2", len(z))}
	}
	if len(v) != len(z) {
		return &ensemble.ShapeError{Reason: fmt.Sprintf(
			"axis has %d windows but %s has %d", len(z), name, len(v))}
	}
	return nil
}

// renderSweepProfile draws the shared recipe onto fig: faint individual
// sweeps behind a mean curve with a gray ±1 SE band, x-limits mirrored
// about zero.
func renderSweepProfile(fig *Figure, z []float64, m ensemble.SweepMatrix, o *ProfileOptions) error {
	col := fig.nextColor()
	for _, row := range m {
		fig.addTrace(z, row, o.SweepAlpha)
	}
	if o.PlotMean {
		mean, se, err := ensemble.MeanAndError(m)
		if err != nil {
			return err
		}
		fig.addLineColor(o.SystemName, z, mean, col)
		fig.AddBand(z, vecAdd(mean, se), vecSub(mean, se), bandGray)
	}
	fig.SetXLimits(mirroredXLimits(z))
	return nil
}

// PlotForces renders the mean force profile F(z) across sweeps. data may be
// a single sweep ([]float64) or a sweep matrix; a single sweep gets no
// error band.
func PlotForces(z []float64, data any, path string, o ProfileOptions) error {
	if err := o.validate(); err != nil {
		return err
	}
	m, err := ensemble.Normalize(data)
	if err != nil {
		return err
	}
	if err := checkProfileShape(z, m); err != nil {
		return err
	}
	fig := o.figure()
	if err := renderSweepProfile(fig, z, m, &o); err != nil {
		return err
	}
	fig.SetLabels(
		fmt.Sprintf("z [%s]", o.ZUnits),
		fmt.Sprintf("F(z) [%s]", unitOr(o.YUnits, "kcal/mol-Å")))
	if o.Save {
		return fig.Save(path)
	}
	return nil
}

// PlotFreeEnergy renders the free energy profile ΔG(z) across sweeps.
func PlotFreeEnergy(z []float64, data any, path string, o ProfileOptions) error {
	if err := o.validate(); err != nil {
		return err
	}
	m, err := ensemble.Normalize(data)
	if err != nil {
		return err
	}
	if err := checkProfileShape(z, m); err != nil {
		return err
	}
	fig := o.figure()
	if err := renderSweepProfile(fig, z, m, &o); err != nil {
		return err
	}
	fig.SetLabels(
		fmt.Sprintf("z [%s]", o.ZUnits),
		fmt.Sprintf("ΔG(z) [%s]", unitOr(o.YUnits, "kcal/mol")))
	if o.Save {
		return fig.Save(path)
	}
	return nil
}

// PlotResistance renders the resistance profile R(z) on a logarithmic y
// axis. The returned Figure supports overlaying further systems; with
// o.Save unset the caller finalizes it.
func PlotResistance(z []float64, data any, path string, o ProfileOptions) (*Figure, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	m, err := ensemble.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := checkProfileShape(z, m); err != nil {
		return nil, err
	}
	fig := o.figure()
	fig.SetLogY()
	if err := renderSweepProfile(fig, z, m, &o); err != nil {
		return nil, err
	}
	fig.SetLabels(
		fmt.Sprintf("z [%s]", o.ZUnits),
		fmt.Sprintf("R(z) [%s]", unitOr(o.YUnits, "s/cm²")))
	if o.Save {
		if err := fig.Save(path); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// PlotDiffusionCoefficient renders a pre-aggregated diffusion profile D(z)
// with its error band and dashed reference lines at the bulk water value
// near each box edge.
func PlotDiffusionCoefficient(z, d, dErr []float64, path string, o ProfileOptions) error {
	if err := o.validate(); err != nil {
		return err
	}
	if err := checkVectorShape(z, "diffusion profile", d); err != nil {
		return err
	}
	if err := checkVectorShape(z, "diffusion error", dErr); err != nil {
		return err
	}
	fig := o.figure()
	col := fig.nextColor()
	fig.addLineColor(o.SystemName, z, d, col)
	zmin := z[0]
	fig.AddRefLine(zmin, zmin+refSpan, BulkWaterDiffusion)
	fig.AddRefLine(-zmin-refSpan, -zmin, BulkWaterDiffusion)
	fig.AddBand(z, vecAdd(d, dErr), vecSub(d, dErr), bandGray)
	fig.SetLabels(
		fmt.Sprintf("z [%s]", o.ZUnits),
		fmt.Sprintf("D(z) [%s]", unitOr(o.YUnits, "cm²/s")))
	fig.SetXLimits(mirroredXLimits(z))
	fig.SetYLimits(0, diffusionYMax)
	if o.Save {
		return fig.Save(path)
	}
	return nil
}

// PlotSymDiffusion renders a symmetrized diffusion profile on a logarithmic
// y axis, band tinted with the mean line's color so overlaid systems stay
// distinguishable. Overlay-capable like PlotResistance.
func PlotSymDiffusion(z, d, dErr []float64, path string, o ProfileOptions) (*Figure, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := checkVectorShape(z, "diffusion profile", d); err != nil {
		return nil, err
	}
	if err := checkVectorShape(z, "diffusion error", dErr); err != nil {
		return nil, err
	}
	fig := o.figure()
	fig.SetLogY()
	col := fig.AddLine(o.SystemName, z, d)
	zmin := z[0]
	fig.AddRefLine(zmin, zmin+refSpan, BulkWaterDiffusion)
	fig.AddRefLine(-zmin-refSpan, -zmin, BulkWaterDiffusion)
	fig.AddBand(z, vecAdd(d, dErr), vecSub(d, dErr), col.WithAlpha(uint8(bandAlpha*255)))
	fig.SetLabels(
		fmt.Sprintf("z [%s]", o.ZUnits),
		fmt.Sprintf("D(z) [%s]", unitOr(o.YUnits, "cm²/s")))
	fig.SetXLimits(mirroredXLimits(z))
	if o.Save {
		if err := fig.Save(path); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// PlotSymFreeEnergy renders a symmetrized free energy profile with a
// color-matched band. On save the y axis is floored at zero, since a folded
// ΔG is referenced to bulk. Overlay-capable.
func PlotSymFreeEnergy(z, dG, dGErr []float64, path string, o ProfileOptions) (*Figure, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := checkVectorShape(z, "free energy profile", dG); err != nil {
		return nil, err
	}
	if err := checkVectorShape(z, "free energy error", dGErr); err != nil {
		return nil, err
	}
	fig := o.figure()
	col := fig.AddLine(o.SystemName, z, dG)
	fig.AddBand(z, vecAdd(dG, dGErr), vecSub(dG, dGErr), col.WithAlpha(uint8(bandAlpha*255)))
	fig.SetLabels(
		fmt.Sprintf("z [%s]", o.ZUnits),
		fmt.Sprintf("ΔG(z) [%s]", unitOr(o.YUnits, "kcal/mol")))
	fig.SetXLimits(mirroredXLimits(z))
	if o.Save {
		top := 0.0
		for i := range dG {
			if v := dG[i] + dGErr[i]; v > top {
				top = v
			}
		}
		if top <= 0 {
			top = 1
		}
		fig.SetYLimits(0, top*1.05)
		if err := fig.Save(path); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// PlotSymExpFreeEnergy overlays the two factors of the resistance integrand,
// exp(ΔG/kBT) and 1/D(z), with the resistance profile itself on a
// logarithmic y axis. temperature is in Kelvin.
func PlotSymExpFreeEnergy(z, dG, dGErr, d, resist, resistErr []float64, temperature float64, path string, o ProfileOptions) error {
	if err := o.validate(); err != nil {
		return err
	}
	if err := checkVectorShape(z, "free energy profile", dG); err != nil {
		return err
	}
	if err := checkVectorShape(z, "diffusion profile", d); err != nil {
		return err
	}
	if err := checkVectorShape(z, "resistance profile", resist); err != nil {
		return err
	}
	if err := checkVectorShape(z, "resistance error", resistErr); err != nil {
		return err
	}
	if temperature <= 0 {
		return &ensemble.DomainError{Reason: fmt.Sprintf("temperature %g K must be positive", temperature)}
	}
	fig := o.figure()
	fig.SetLogY()

	beta := 1.0 / (BoltzmannKcal * temperature)
	expG := make([]float64, len(z))
	invD := make([]float64, len(z))
	for i := range z {
		expG[i] = math.Exp(dG[i] * beta)
		invD[i] = 1.0 / d[i]
	}
	fig.AddLine("exp(βΔG)", z, expG)
	fig.AddLine("1/D(z)", z, invD)
	col := fig.AddLine("R(z)", z, resist)
	fig.AddBand(z, vecAdd(resist, resistErr), vecSub(resist, resistErr), col.WithAlpha(uint8(bandAlpha*255)))
	fig.SetLabels(
		fmt.Sprintf("z [%s]", o.ZUnits),
		"1/D, exp(βΔG)")
	fig.SetXLimits(mirroredXLimits(z))
	if o.Save {
		return fig.Save(path)
	}
	return nil
}

func vecAdd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func vecSub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}
