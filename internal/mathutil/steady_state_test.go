package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSteadyState_OnePole(t *testing.T) {
	// y[n] = 0.5 x[n] + 0.5 y[n-1]: unit DC gain, so a unit input at rest
	// has y = 1 and z = 0.5.
	zi, err := SolveSteadyState([]float64{0.5, 0}, []float64{1, -0.5})
	require.NoError(t, err)
	require.Len(t, zi, 1)
	assert.InDelta(t, 0.5, zi[0], 1e-15)
}

func TestSolveSteadyState_Biquad(t *testing.T) {
	b := []float64{0.2, 0.3, 0.1}
	a := []float64{1, -0.6, 0.2}

	zi, err := SolveSteadyState(b, a)
	require.NoError(t, err)
	require.Len(t, zi, 2)

	// Run one step of transposed direct form II with unit input and check
	// the state is a fixed point.
	dcGain := (b[0] + b[1] + b[2]) / (a[0] + a[1] + a[2])
	y := b[0] + zi[0]
	assert.InDelta(t, dcGain, y, 1e-12)

	z0 := b[1] + zi[1] - a[1]*y
	z1 := b[2] - a[2]*y
	assert.InDelta(t, zi[0], z0, 1e-12)
	assert.InDelta(t, zi[1], z1, 1e-12)
}

func TestSolveSteadyState_FIRClosedFormMatchesSolve(t *testing.T) {
	b := []float64{0.1, -0.25, 0.4, 0.05, 0.3, -0.2, 0.6}
	a := make([]float64, len(b))
	a[0] = 1

	closed, err := SolveSteadyState(b, a)
	require.NoError(t, err)

	dense, err := solveDense(b, a)
	require.NoError(t, err)

	require.Len(t, closed, len(b)-1)
	assert.InDeltaSlice(t, dense, closed, 1e-12)
	assert.InDelta(t, 0.9, closed[0], 1e-12, "zi[0] is the sum of b[1:]")
	assert.InDelta(t, 0.6, closed[len(closed)-1], 1e-15)
}

func TestSolveSteadyState_ZeroOrder(t *testing.T) {
	zi, err := SolveSteadyState([]float64{2}, []float64{1})
	require.NoError(t, err)
	assert.Empty(t, zi)
}

func TestSolveSteadyState_Errors(t *testing.T) {
	t.Run("pole_at_dc", func(t *testing.T) {
		_, err := SolveSteadyState([]float64{1, 0}, []float64{1, -1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSingularSystem)
	})

	t.Run("length_mismatch", func(t *testing.T) {
		_, err := SolveSteadyState([]float64{1, 0, 0}, []float64{1, -1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "length mismatch")
	})
}
