// Package ensemble reduces repeated-measurement ("sweep") arrays from
// umbrella-sampling force analyses into per-window statistics: ensemble
// means, standard errors, profile symmetrization about the membrane center,
// and autocorrelation normalization. Everything here is a pure function of
// its inputs; rendering lives in src/plotting.
package ensemble

import "math"

// SweepMatrix holds one row per independent sweep and one column per
// coordinate window. Rows must all have the same length.
type SweepMatrix [][]float64

// Sweeps returns the number of rows.
func (m SweepMatrix) Sweeps() int { return len(m) }

// Windows returns the column count, taken from the first row.
func (m SweepMatrix) Windows() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Normalize coerces raw input into a SweepMatrix. A []float64 of length N is
// one sweep and becomes a 1×N matrix; a [][]float64 or SweepMatrix passes
// through unchanged after a raggedness check. Anything else, including
// rank-3 slices, is a ShapeError. Normalizing an already-2D matrix is the
// identity, so the operation is idempotent.
func Normalize(data any) (SweepMatrix, error) {
	switch v := data.(type) {
	case []float64:
		return SweepMatrix{v}, nil
	case SweepMatrix:
		return v, v.validate()
	case [][]float64:
		m := SweepMatrix(v)
		return m, m.validate()
	case [][][]float64:
		return nil, shapeErrorf("rank-3 input not supported, want 1-D sweep or 2-D sweep matrix")
	default:
		return nil, shapeErrorf("unsupported input type %T, want []float64 or [][]float64", data)
	}
}

func (m SweepMatrix) validate() error {
	if len(m) == 0 {
		return nil
	}
	w := len(m[0])
	for i, row := range m {
		if len(row) != w {
			return shapeErrorf("ragged sweep matrix: row 0 has %d windows, row %d has %d", w, i, len(row))
		}
	}
	return nil
}

// MeanAndError reduces the matrix along the sweep axis. For each window j it
// returns the mean over sweeps and the standard error, defined as the
// population standard deviation of column j divided by sqrt(sweep count).
// With a single sweep the mean is that row and every standard error is zero.
// An empty matrix is a ShapeError: zero sweeps violate the input contract.
func MeanAndError(m SweepMatrix) (mean, stderr []float64, err error) {
	n := m.Sweeps()
	if n == 0 {
		return nil, nil, shapeErrorf("sweep matrix has no rows")
	}
	if err := m.validate(); err != nil {
		return nil, nil, err
	}
	w := m.Windows()
	mean = make([]float64, w)
	stderr = make([]float64, w)
	for j := 0; j < w; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			sum += m[i][j]
		}
		mu := sum / float64(n)
		mean[j] = mu
		if n == 1 {
			continue
		}
		var ss float64
		for i := 0; i < n; i++ {
			d := m[i][j] - mu
			ss += d * d
		}
		stderr[j] = math.Sqrt(ss/float64(n)) / math.Sqrt(float64(n))
	}
	return mean, stderr, nil
}

// NormalizeACF divides every sample of an autocorrelation sequence by its
// zero-lag value so acf[0] becomes exactly 1. The result is always a fresh
// slice; the caller's sequence is never mutated, since ACF arrays are
// typically shared with the integration step downstream.
func NormalizeACF(acf []float64) ([]float64, error) {
	if len(acf) == 0 {
		return nil, shapeErrorf("empty autocorrelation sequence")
	}
	if acf[0] == 0 {
		return nil, domainErrorf("autocorrelation zero-lag value is zero, cannot normalize")
	}
	out := make([]float64, len(acf))
	for i, v := range acf {
		out[i] = v / acf[0]
	}
	return out, nil
}
