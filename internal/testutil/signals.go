package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave with cycles full
// periods over length samples.
func DeterministicSine(cycles float64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplexNoise generates complex white noise with a fixed seed.
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex((rng.Float64()*2-1)*amplitude, (rng.Float64()*2-1)*amplitude)
	}
	return out
}

// StepSignal generates a signal that is 1.0 on the open interval (lo, hi)
// and 0.0 elsewhere.
func StepSignal(length, lo, hi int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i > lo && i < hi {
			out[i] = 1
		}
	}
	return out
}

// UnitCircle generates length points on the complex unit circle, one full
// revolution, counterclockwise from 1+0i.
func UnitCircle(length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi / float64(length)
	for i := range out {
		a := step * float64(i)
		out[i] = complex(math.Cos(a), math.Sin(a))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
