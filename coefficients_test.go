package filtfilt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoefficients_Normalizes(t *testing.T) {
	c, err := NewCoefficients([]float64{1, 2}, []float64{4, 2, 1})
	require.NoError(t, err)

	assert.Equal(t, []float64{0.25, 0.5, 0}, c.B())
	assert.Equal(t, []float64{1, 0.5, 0.25}, c.A())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.Order())
	assert.False(t, c.IsFIR())
	assert.Equal(t, "IIR filter, order 2", c.String())
}

func TestNewCoefficients_Errors(t *testing.T) {
	tests := []struct {
		name string
		b, a []float64
	}{
		{"empty_numerator", nil, []float64{1}},
		{"empty_denominator", []float64{1}, nil},
		{"zero_leading_denominator", []float64{1}, []float64{0, 0.5}},
		{"nan", []float64{math.NaN()}, []float64{1}},
		{"inf", []float64{1}, []float64{1, math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoefficients(tt.b, tt.a)
			require.ErrorIs(t, err, ErrInvalidCoefficients)
			assert.True(t, c.IsZero())
		})
	}
}

func TestCoefficients_Immutable(t *testing.T) {
	b := []float64{0.25, 0.5, 0.25}
	c, err := FIR(b)
	require.NoError(t, err)

	b[0] = 100
	got := c.B()
	got[1] = 100
	c.A()[0] = 100

	assert.Equal(t, []float64{0.25, 0.5, 0.25}, c.B())
	assert.Equal(t, []float64{1, 0, 0}, c.A())
	assert.True(t, c.IsFIR())
	assert.Equal(t, "FIR filter, order 2", c.String())
}

func TestCoefficients_Response(t *testing.T) {
	c, err := NewCoefficients([]float64{0.5}, []float64{1, -0.5})
	require.NoError(t, err)

	const fs = 100.0
	assert.InDelta(t, 1.0, c.Gain(0, fs), 1e-15)
	assert.InDelta(t, 1.0/3.0, c.Gain(fs/2, fs), 1e-15)
	assert.InDelta(t, 20*math.Log10(1.0/3.0), c.MagnitudeDB(fs/2, fs), 1e-12)

	resp := c.FrequencyResponse(fs, 100)
	require.Len(t, resp.Frequencies, 100)
	assert.InDelta(t, 0.5, resp.Frequencies[1], 1e-12, "bin spacing is fs/(2n) Hz")
	assert.InDelta(t, 1.0, resp.Magnitude[0], 1e-12)
}

func TestCoefficients_MinSignalLength(t *testing.T) {
	c, err := NewCoefficients([]float64{0.2, 0.3, 0.1}, []float64{1, -0.6})
	require.NoError(t, err)

	assert.Equal(t, 10, c.MinSignalLength())
	assert.Equal(t, 6, c.MinSignalLength(WithPadLen(5)))
	assert.Equal(t, 1, c.MinSignalLength(WithPadType(PadNone)))
	assert.Equal(t, 10, c.MinSignalLength(WithPadLen(5), WithPadLen(-1)))
}

func TestCoefficients_ZeroValue(t *testing.T) {
	var c Coefficients
	assert.True(t, c.IsZero())
	assert.False(t, c.IsFIR())
	assert.Equal(t, 0, c.Order())

	_, err := FiltFilt(c, make([]float64, 100))
	require.ErrorIs(t, err, ErrInvalidCoefficients)
	_, _, err = LFilter(c, make([]float64, 10), nil)
	require.ErrorIs(t, err, ErrInvalidCoefficients)
	assert.Empty(t, SteadyState(c))
}
