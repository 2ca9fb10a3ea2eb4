package engine

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// fftFIR runs a long FIR filter by overlap-save block convolution.
//
// Each block of fftSize input samples starts order samples before the first
// output it produces. After the circular convolution the first order
// outputs are wrapped and discarded, leaving blockSize valid samples.
type fftFIR struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int // fftSize - order
	order     int
	scale     float64 // gonum's inverse transform is unnormalized

	tapsFFT []complex128

	block      []float64
	blockFFT   []complex128
	productFFT []complex128
	result     []float64
}

// newFFTFIR transforms the taps b once. It returns nil for empty taps.
func newFFTFIR(b []float64) *fftFIR {
	if len(b) == 0 {
		return nil
	}

	fftSize := defaultFFTBlockSize
	for fftSize < 2*len(b) {
		fftSize *= 2
	}

	fft := fourier.NewFFT(fftSize)
	padded := make([]float64, fftSize)
	copy(padded, b)
	fftLen := fftSize/fftHermitianDivisor + 1

	return &fftFIR{
		fft:        fft,
		fftSize:    fftSize,
		blockSize:  fftSize - len(b) + 1,
		order:      len(b) - 1,
		scale:      1.0 / float64(fftSize),
		tapsFFT:    fft.Coefficients(nil, padded),
		block:      make([]float64, fftSize),
		blockFFT:   make([]complex128, fftLen),
		productFFT: make([]complex128, fftLen),
		result:     make([]float64, fftSize),
	}
}

// filterSettled writes y[n] = Σ b[k]·x[n-k] to y, reading x[m] for m < 0
// as x[0]. The constant history is filled into the first blocks on the fly.
func (c *fftFIR) filterSettled(y, x []float64) {
	n := min(len(y), len(x))
	if n == 0 {
		return
	}

	for out := 0; out < n; out += c.blockSize {
		start := out - c.order
		clear(c.block)

		i := 0
		for ; i < c.fftSize && start+i < 0; i++ {
			c.block[i] = x[0]
		}
		if start+i < len(x) {
			copy(c.block[i:], x[start+i:])
		}

		c.blockFFT = c.fft.Coefficients(c.blockFFT, c.block)
		c128.Mul(c.productFFT, c.blockFFT, c.tapsFFT)
		c.result = c.fft.Sequence(c.result, c.productFFT)

		valid := min(c.blockSize, n-out)
		f64.Scale(y[out:out+valid], c.result[c.order:c.order+valid], c.scale)
	}
}
