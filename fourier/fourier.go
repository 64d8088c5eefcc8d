package fourier

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by engine construction and queries.
var (
	ErrEmptyInput           = errors.New("fourier: input signal is empty")
	ErrNonFinite            = errors.New("fourier: input signal contains NaN or Inf")
	ErrInvalidRange         = errors.New("fourier: frequency range out of bounds")
	ErrFrequencyOutOfBounds = errors.New("fourier: frequency index out of bounds")
)

// Engine holds a fixed signal together with its cached DFT coefficients.
//
// Coefficients follow the analysis-normalized convention
//
//	X[k] = (1/N) * sum_i x[i] * exp(-2*pi*i*k*i/N)
//
// and the inverse reconstruction is un-normalized, so a full-band
// reconstruction reproduces the original signal to floating-point precision.
// For a DFT of length N the index N-k is equivalent to -k, so negative
// frequencies live in the upper half of the coefficient array; for real
// input, X[k] and X[N-k] are complex conjugates (Hermitian symmetry).
//
// An Engine is immutable after construction and safe to share read-only
// across consumers without synchronization.
type Engine struct {
	original []complex128
	coeffs   []complex128
}

// New creates an engine from complex samples. For 2-D curves the convention
// is x = real part, y = imaginary part per sample.
//
// Returns ErrEmptyInput for a zero-length signal and ErrNonFinite if any
// sample component is NaN or infinite. Validation happens once here; queries
// never re-check.
func New(samples []complex128) (*Engine, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	for i, s := range samples {
		if !isFinite(s) {
			return nil, fmt.Errorf("%w: sample %d = %v", ErrNonFinite, i, s)
		}
	}

	original := make([]complex128, len(samples))
	copy(original, samples)

	return &Engine{
		original: original,
		coeffs:   dft(original),
	}, nil
}

// NewFromReal creates an engine from real samples (imaginary parts zero).
func NewFromReal(data []float64) (*Engine, error) {
	samples := make([]complex128, len(data))
	for i, v := range data {
		samples[i] = complex(v, 0)
	}

	return New(samples)
}

// Size returns the number of points in the original signal.
func (e *Engine) Size() int { return len(e.original) }

// MaxFrequency returns the highest absolute frequency index exposed for band
// selection, N/2 (floor).
func (e *Engine) MaxFrequency() int { return len(e.coeffs) / 2 }

// Original returns the signal the engine was built from. The returned slice
// is a view into engine state and must not be modified.
func (e *Engine) Original() []complex128 { return e.original }

// FilteredRange reconstructs the signal using only the absolute frequency
// indices in [kMin, kMax].
//
// For every k > 0 in range the paired negative frequency at index N-k is
// summed in as well, except for the shared Nyquist bin of even-length
// signals (k == N-k), so no coefficient is ever counted twice.
// FilteredRange(0, MaxFrequency()) therefore reproduces Original() within
// numerical tolerance.
//
// Returns ErrInvalidRange if kMin > kMax, kMin < 0, or kMax > MaxFrequency().
func (e *Engine) FilteredRange(kMin, kMax int) ([]complex128, error) {
	if kMin < 0 || kMin > kMax || kMax > e.MaxFrequency() {
		return nil, fmt.Errorf("%w: [%d, %d] (max %d)", ErrInvalidRange, kMin, kMax, e.MaxFrequency())
	}

	n := len(e.coeffs)
	out := make([]complex128, n)

	for i := range out {
		partial := 2 * math.Pi * float64(i) / float64(n)

		var sum complex128
		for k := kMin; k <= kMax; k++ {
			sum += e.coeffs[k] * cmplx.Exp(complex(0, partial*float64(k)))

			// k=0 has no mirror; for even N the Nyquist bin is its own mirror.
			if k == 0 || n-k == k {
				continue
			}

			m := n - k
			sum += e.coeffs[m] * cmplx.Exp(complex(0, partial*float64(m)))
		}

		out[i] = sum
	}

	return out, nil
}

// Component returns the instantaneous contribution of a single frequency at
// one sample position:
//
//	X[k] * exp(+2*pi*i*k*t/N)
//
// This is the value of one epicycle vector at animation step t. The exponent
// is periodic in t, so any integer time step is valid.
//
// Returns ErrFrequencyOutOfBounds if frequency is not a valid coefficient
// index in 0..N-1.
func (e *Engine) Component(frequency, timeStep int) (complex128, error) {
	n := len(e.coeffs)
	if frequency < 0 || frequency >= n {
		return 0, fmt.Errorf("%w: %d (size %d)", ErrFrequencyOutOfBounds, frequency, n)
	}

	angle := 2 * math.Pi * float64(frequency) * float64(timeStep) / float64(n)

	return e.coeffs[frequency] * cmplx.Exp(complex(0, angle)), nil
}

// PowerSpectrum returns |X[k]|^2 for every coefficient in natural
// (unshifted) index order: frequency 0 first, ascending positive
// frequencies, then the mirrored negative-frequency block.
func (e *Engine) PowerSpectrum() []float64 {
	n := len(e.coeffs)
	out := make([]float64, n)
	re := make([]float64, n)
	im := make([]float64, n)

	for i, c := range e.coeffs {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)

	return out
}

// PowerSpectrumCentered returns the power spectrum rotated so that frequency
// zero sits in the middle (fftshift presentation). This is a convenience
// view for plotting, not a different computation; FrequenciesCentered
// provides the matching axis.
func (e *Engine) PowerSpectrumCentered() []float64 {
	power := e.PowerSpectrum()
	n := len(power)
	shift := (n + 1) / 2

	out := make([]float64, n)
	for i := range out {
		out[i] = power[(i+shift)%n]
	}

	return out
}

// Frequencies returns the frequency axis in natural index order, 0..N-1.
func (e *Engine) Frequencies() []float64 {
	out := make([]float64, len(e.coeffs))
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// FrequenciesCentered returns the signed frequency axis matching
// PowerSpectrumCentered, running from -floor(N/2) upwards.
func (e *Engine) FrequenciesCentered() []float64 {
	n := len(e.coeffs)
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i - n/2)
	}

	return out
}

// Phases returns arg(X[k]) in radians for every coefficient in natural
// index order.
func (e *Engine) Phases() []float64 {
	out := make([]float64, len(e.coeffs))
	for i, c := range e.coeffs {
		out[i] = cmplx.Phase(c)
	}

	return out
}

// dft computes the direct O(N^2) discrete Fourier transform with 1/N
// analysis normalization.
func dft(data []complex128) []complex128 {
	n := len(data)
	norm := complex(1/float64(n), 0)
	step := -2 * math.Pi / float64(n)

	out := make([]complex128, n)
	for k := range out {
		angle := step * float64(k)

		var sum complex128
		for i, x := range data {
			sum += x * cmplx.Exp(complex(0, angle*float64(i)))
		}

		out[k] = sum * norm
	}

	return out
}

func isFinite(c complex128) bool {
	re, im := real(c), imag(c)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}
