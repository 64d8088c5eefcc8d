// Package fourier implements a direct discrete Fourier transform engine for
// epicycle-style signal reconstruction.
//
// The package intentionally does not use an FFT. Signals of interest are a
// few hundred samples long and the direct O(N^2) transform keeps the
// coefficient contract trivial: construction computes and caches all N
// coefficients once, and every query is a pure function of that cache.
package fourier
