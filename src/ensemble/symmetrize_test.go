package ensemble

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetrizeAveragesPairs(t *testing.T) {
	z := []float64{-10, -5, 0, 5, 10}
	sv, se, err := Symmetrize(z, []float64{1, 2, 3, 4, 5}, nil, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3, 3}, sv)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, se)
}

func TestSymmetrizeEvenLengthAxis(t *testing.T) {
	z := []float64{-3, -1, 1, 3}
	sv, _, err := Symmetrize(z, []float64{1, 2, 4, 5}, nil, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3}, sv)
}

func TestSymmetrizeErrorQuadrature(t *testing.T) {
	z := []float64{-10, -5, 0, 5, 10}
	values := []float64{1, 2, 3, 4, 5}
	errs := []float64{1, 2, 0.5, 2, 1}
	_, se, err := Symmetrize(z, values, errs, 1e-9)
	require.NoError(t, err)
	// Paired errors combine as sqrt(a²+b²)/2; the center is self-paired.
	assert.InDelta(t, math.Hypot(1, 1)/2, se[0], 1e-12)
	assert.InDelta(t, math.Hypot(2, 2)/2, se[1], 1e-12)
	assert.Equal(t, 0.5, se[2])
	assert.InDelta(t, se[1], se[3], 1e-12)
	assert.InDelta(t, se[0], se[4], 1e-12)
}

func TestSymmetrizeSymmetricInputIsIdentityOnValues(t *testing.T) {
	z := []float64{-10, -5, 0, 5, 10}
	values := []float64{5, 2, 7, 2, 5}
	errs := []float64{0.4, 0.1, 0.2, 0.1, 0.4}
	sv, se, err := Symmetrize(z, values, errs, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, values, sv)
	// An equal pair (e, e) folds to e/sqrt(2) under the quadrature rule.
	assert.InDelta(t, 0.4/math.Sqrt2, se[0], 1e-12)
	assert.Equal(t, 0.2, se[2])
}

func TestSymmetrizeRejectsNonMirroredAxis(t *testing.T) {
	z := []float64{-10, -5, 0, 5, 11}
	_, _, err := Symmetrize(z, []float64{1, 2, 3, 4, 5}, nil, 1e-9)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Reason, "not mirrored")
}

func TestSymmetrizeToleranceAbsorbsGridNoise(t *testing.T) {
	z := []float64{-10, -5.0000001, 0, 5, 10}
	_, _, err := Symmetrize(z, []float64{1, 2, 3, 4, 5}, nil, 1e-3)
	require.NoError(t, err)
}

func TestSymmetrizeLengthMismatch(t *testing.T) {
	_, _, err := Symmetrize([]float64{-1, 0, 1}, []float64{1, 2}, nil, 1e-9)
	var se *ShapeError
	require.ErrorAs(t, err, &se)

	_, _, err = Symmetrize([]float64{-1, 0, 1}, []float64{1, 2, 3}, []float64{0.1}, 1e-9)
	require.ErrorAs(t, err, &se)
}

func TestSymmetrizeEmptyAxis(t *testing.T) {
	_, _, err := Symmetrize(nil, nil, nil, 1e-9)
	var se *ShapeError
	require.ErrorAs(t, err, &se)
}
