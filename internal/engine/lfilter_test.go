package engine

import (
	"math"
	"testing"

	"github.com/Benarrt/FiltFilt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/simd/f64"
)

// Third-order low-pass with poles at 0.5 and 0.6±0.3j.
var (
	testIIR3B = []float64{0.05, 0.15, 0.15, 0.05}
	testIIR3A = []float64{1, -1.7, 1.05, -0.225}
)

func TestFilter_OnePoleImpulseResponse(t *testing.T) {
	b, a, err := Normalize([]float64{0.5}, []float64{1, -0.5})
	require.NoError(t, err)

	y, zf, err := Filter(b, a, []float64{1, 0, 0, 0}, nil)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.125, 0.0625}, y, 1e-15)
	assert.InDeltaSlice(t, []float64{0.03125}, zf, 1e-15)
}

func TestFilter_OrderZeroScales(t *testing.T) {
	y, zf, err := Filter([]float64{2}, []float64{1}, []float64{1, -2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -4, 6}, y)
	assert.Empty(t, zf)
}

func TestFilter_UnrolledKernelsMatchGeneric(t *testing.T) {
	x := testutil.SineMixture(200, 30, 1, 7, 13)

	cases := []struct {
		name string
		b, a []float64
	}{
		{"order1", []float64{0.3, 0.2}, []float64{1, -0.5}},
		{"order2", []float64{0.2, 0.3, 0.1}, []float64{1, -0.6, 0.2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			zi := make([]float64, len(tc.b)-1)
			for i := range zi {
				zi[i] = 0.1 * float64(i+1)
			}

			fast, fastState, err := Filter(tc.b, tc.a, x, zi)
			require.NoError(t, err)

			slow := make([]float64, len(x))
			slowState := append([]float64(nil), zi...)
			filterGeneric(tc.b, tc.a, x, slow, slowState)

			assert.InDeltaSlice(t, slow, fast, 1e-13)
			assert.InDeltaSlice(t, slowState, fastState, 1e-13)
		})
	}
}

func TestFilter_StateCarriesAcrossChunks(t *testing.T) {
	x := testutil.SineMixture(300, 30, 2, 11)

	whole, _, err := Filter(testIIR3B, testIIR3A, x, nil)
	require.NoError(t, err)

	first, z, err := Filter(testIIR3B, testIIR3A, x[:120], nil)
	require.NoError(t, err)
	second, _, err := Filter(testIIR3B, testIIR3A, x[120:], z)
	require.NoError(t, err)

	testutil.AssertSlicesClose(t, whole, append(first, second...), 1e-13)
}

func TestFilter_DoesNotModifyInitialState(t *testing.T) {
	zi := []float64{0.5}
	_, _, err := Filter([]float64{0.5, 0}, []float64{1, -0.5}, []float64{1, 1}, zi)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, zi)
}

func TestFilter_Errors(t *testing.T) {
	_, _, err := Filter([]float64{1, 2}, []float64{1}, []float64{1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length mismatch")

	_, _, err = Filter([]float64{1, 2}, []float64{1, 0}, []float64{1}, []float64{0, 0})
	require.ErrorIs(t, err, ErrStateLength)
}

func TestFilterFIRSettled_MatchesDifferenceEquation(t *testing.T) {
	b := []float64{0.1, -0.2, 0.4, 0.3, 0.25, 0.15}
	a := make([]float64, len(b))
	a[0] = 1
	x := testutil.SineMixture(128, 30, 3, 9)
	for i := range x {
		x[i] += 2
	}

	zi, err := SteadyState(b, a)
	require.NoError(t, err)
	z := make([]float64, len(zi))
	f64.Scale(z, zi, x[0])

	want, _, err := Filter(b, a, x, z)
	require.NoError(t, err)

	got := filterFIRSettled(b, x)
	testutil.AssertSlicesClose(t, want, got, 1e-12)
}

func TestFilterFIRSettled_LongKernelUsesFFT(t *testing.T) {
	const taps = minKernelForFFT + 51
	b := make([]float64, taps)
	for i := range b {
		b[i] = math.Exp(-float64(i)/50) / 50
	}
	a := make([]float64, taps)
	a[0] = 1
	x := testutil.SineMixture(2000, 1000, 5, 120)

	zi, err := SteadyState(b, a)
	require.NoError(t, err)
	z := make([]float64, len(zi))
	f64.Scale(z, zi, x[0])

	want, _, err := Filter(b, a, x, z)
	require.NoError(t, err)

	got := filterFIRSettled(b, x)
	testutil.AssertSlicesClose(t, want, got, 1e-9)
}

func TestFilterFIRSettled_Float32(t *testing.T) {
	b := []float32{0.25, 0.5, 0.25}
	x := []float32{4, 4, 4, 0, 0}

	got := filterFIRSettled(b, x)
	assert.InDeltaSlice(t, []float32{4, 4, 4, 3, 1}, got, 1e-6)
}

func TestFFTFIR_MatchesDirect(t *testing.T) {
	b := make([]float64, 700)
	for i := range b {
		b[i] = math.Sin(float64(i)*0.01) / float64(i+1)
	}
	x := testutil.SineMixture(5000, 8000, 100, 1500)
	x[0] = 0.75 // non-zero history

	// Reference: materialized history, direct correlation with reversed taps.
	order := len(b) - 1
	signal := make([]float64, order+len(x))
	for i := range order {
		signal[i] = x[0]
	}
	copy(signal[order:], x)
	kernel := make([]float64, len(b))
	for i, v := range b {
		kernel[order-i] = v
	}
	want := make([]float64, len(x))
	f64.ConvolveValid(want, signal, kernel)

	got := make([]float64, len(x))
	newFFTFIR(b).filterSettled(got, x)
	testutil.AssertSlicesClose(t, want, got, 1e-10)

	assert.Nil(t, newFFTFIR(nil))
}

func TestFFTFIR_ShortSignal(t *testing.T) {
	b := make([]float64, minKernelForFFT)
	b[0], b[1] = 0.5, 0.5
	x := []float64{2, 4, 6}

	got := make([]float64, len(x))
	newFFTFIR(b).filterSettled(got, x)
	testutil.AssertSlicesClose(t, []float64{2, 3, 5}, got, 1e-12)
}
