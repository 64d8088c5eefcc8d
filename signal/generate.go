// Package signal generates the demo waveforms and closed 2-D curves the
// web demo and CLI feed into the Fourier engine. Curves use the complex
// convention x = real, y = imaginary per sample.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	points int
	seed   int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithPoints sets the number of samples per generated signal.
func WithPoints(points int) Option {
	return func(g *Generator) {
		if points > 0 {
			g.points = points
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. The default produces
// 500-point signals, the sample count the web demo animates comfortably.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		points: 500,
		seed:   1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Points returns the configured sample count.
func (g *Generator) Points() int { return g.points }

// Sine generates a sine wave with the given number of full cycles over the
// signal length.
func (g *Generator) Sine(cycles, amplitude float64) ([]float64, error) {
	if cycles <= 0 {
		return nil, fmt.Errorf("signal: sine cycles must be > 0: %f", cycles)
	}

	out := make([]float64, g.points)
	step := 2 * math.Pi * cycles / float64(g.points)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Square generates a square wave with the given number of full cycles.
func (g *Generator) Square(cycles, amplitude float64) ([]float64, error) {
	if cycles <= 0 {
		return nil, fmt.Errorf("signal: square cycles must be > 0: %f", cycles)
	}

	out := make([]float64, g.points)
	step := 2 * math.Pi * cycles / float64(g.points)
	for i := range out {
		if math.Sin(step*float64(i)) >= 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// Step generates a unit step signal: 1.0 strictly between lo and hi,
// 0.0 elsewhere.
func (g *Generator) Step(lo, hi int) ([]float64, error) {
	if lo >= hi {
		return nil, fmt.Errorf("signal: step bounds must satisfy lo < hi: %d >= %d", lo, hi)
	}

	out := make([]float64, g.points)
	for i := range out {
		if i > lo && i < hi {
			out[i] = 1
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64) ([]float64, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, g.points)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Circle generates one counterclockwise revolution of a circle.
func (g *Generator) Circle(radius float64) ([]complex128, error) {
	return g.Ellipse(radius, radius)
}

// Ellipse generates one counterclockwise revolution of an axis-aligned
// ellipse with the given semi-axes.
func (g *Generator) Ellipse(rx, ry float64) ([]complex128, error) {
	if rx <= 0 || ry <= 0 {
		return nil, fmt.Errorf("signal: ellipse radii must be > 0: %f, %f", rx, ry)
	}

	out := make([]complex128, g.points)
	step := 2 * math.Pi / float64(g.points)
	for i := range out {
		a := step * float64(i)
		out[i] = complex(rx*math.Cos(a), ry*math.Sin(a))
	}
	return out, nil
}

// Lissajous generates a closed Lissajous curve x = sin(a*t + delta),
// y = sin(b*t), scaled by amplitude.
func (g *Generator) Lissajous(a, b int, delta, amplitude float64) ([]complex128, error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("signal: lissajous ratios must be > 0: %d, %d", a, b)
	}

	out := make([]complex128, g.points)
	step := 2 * math.Pi / float64(g.points)
	for i := range out {
		t := step * float64(i)
		out[i] = complex(
			amplitude*math.Sin(float64(a)*t+delta),
			amplitude*math.Sin(float64(b)*t),
		)
	}
	return out, nil
}

// Star generates a closed star polygon with the given number of tips,
// alternating between the outer and inner radius.
func (g *Generator) Star(tips int, outer, inner float64) ([]complex128, error) {
	if tips < 2 {
		return nil, fmt.Errorf("signal: star tips must be >= 2: %d", tips)
	}
	if outer <= inner || inner <= 0 {
		return nil, fmt.Errorf("signal: star radii must satisfy outer > inner > 0: %f, %f", outer, inner)
	}

	// Piecewise-linear walk along the 2*tips vertices, resampled to the
	// configured point count.
	vertices := make([]complex128, 2*tips+1)
	for v := 0; v < 2*tips; v++ {
		r := outer
		if v%2 == 1 {
			r = inner
		}
		a := math.Pi*float64(v)/float64(tips) + math.Pi/2
		vertices[v] = complex(r*math.Cos(a), r*math.Sin(a))
	}
	vertices[2*tips] = vertices[0]

	out := make([]complex128, g.points)
	for i := range out {
		t := float64(i) / float64(g.points) * float64(2*tips)
		seg := int(t)
		frac := t - float64(seg)
		out[i] = vertices[seg] + complex(frac, 0)*(vertices[seg+1]-vertices[seg])
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	out := make([]float64, len(data))
	copy(out, data)

	maxAbs := floats.Norm(out, math.Inf(1))
	if maxAbs == 0 || targetPeak == 0 {
		for i := range out {
			out[i] = 0
		}
		return out, nil
	}

	floats.Scale(targetPeak/maxAbs, out)
	return out, nil
}

// Complexify lifts a real signal into the complex plane with zero
// imaginary parts.
func Complexify(data []float64) []complex128 {
	out := make([]complex128, len(data))
	for i, v := range data {
		out[i] = complex(v, 0)
	}
	return out
}

// Interleave builds a complex curve from separate x and y coordinate
// slices. Returns an error if the lengths differ.
func Interleave(x, y []float64) ([]complex128, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("signal: x and y must have same length: %d != %d", len(x), len(y))
	}

	out := make([]complex128, len(x))
	for i := range out {
		out[i] = complex(x[i], y[i])
	}
	return out, nil
}
