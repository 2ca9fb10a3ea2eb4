package engine

// Padding constants
const (
	// Default edge extension is this many times the longer coefficient vector.
	defaultPadLenFactor = 3

	// Odd extension reflects about the edge sample: 2·x[0] - x[n].
	oddReflectionScale = 2
)

// FIR fast path constants
const (
	// Minimum kernel length to use FFT convolution (below this, direct is faster).
	// Benchmarking shows crossover around 400-500 taps with gonum FFT.
	minKernelForFFT = 400

	// Default FFT block size (power of 2 for efficiency)
	defaultFFTBlockSize = 512

	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)
