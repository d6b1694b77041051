package ensemble

import "math"

// Symmetrize folds a profile about z = 0 under the physical assumption of
// mirror symmetry, halving effective noise. Pairing is exact-index: window i
// pairs with window len-1-i, which requires the coordinate axis to be an
// evenly mirrored grid (the grids produced upstream are constructed that
// way). The axis is verified first: every pair must satisfy
// |z[i] + z[len-1-i]| <= tol or the call fails with a DomainError naming the
// offending coordinates.
//
// Paired values are averaged. Paired errors combine in quadrature divided by
// two, the standard combination for averaging two independent estimates, so
// an equal pair (e, e) folds to e/sqrt(2). The center point of an odd-length
// axis is self-paired and passes through unchanged. A nil errs slice is
// treated as all zeros.
func Symmetrize(z, values, errs []float64, tol float64) ([]float64, []float64, error) {
	n := len(z)
	if n == 0 {
		return nil, nil, shapeErrorf("empty coordinate axis")
	}
	if len(values) != n {
		return nil, nil, shapeErrorf("axis has %d windows but values has %d", n, len(values))
	}
	if errs == nil {
		errs = make([]float64, n)
	}
	if len(errs) != n {
		return nil, nil, shapeErrorf("axis has %d windows but errors has %d", n, len(errs))
	}
	for i := 0; i <= n/2; i++ {
		j := n - 1 - i
		if d := math.Abs(z[i] + z[j]); d > tol {
			return nil, nil, domainErrorf(
				"axis not mirrored about zero: z[%d]=%g pairs with z[%d]=%g (|sum|=%g > tol=%g)",
				i, z[i], j, z[j], d, tol)
		}
	}
	sv := make([]float64, n)
	se := make([]float64, n)
	for i := 0; i < n; i++ {
		j := n - 1 - i
		if i == j {
			sv[i] = values[i]
			se[i] = errs[i]
			continue
		}
		sv[i] = 0.5 * (values[i] + values[j])
		se[i] = 0.5 * math.Hypot(errs[i], errs[j])
	}
	return sv, se, nil
}
