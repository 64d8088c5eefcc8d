// Package playback drives the epicycle animation over a fourier.Engine.
//
// A Controller advances a fractional playback position through the signal's
// sample domain and, on every tick, derives the partial band-limited
// reconstruction and the chained epicycle vectors for the current point.
// It performs no drawing itself; frames are handed to a Renderer.
//
// The controller assumes a single-goroutine cooperative model: the host
// animation loop calls Step once per display frame with the wall-clock
// delta, and all control calls happen from that same goroutine.
package playback

import (
	"fmt"
	"math"

	"github.com/guilmont/web-fourier/fourier"
	"github.com/guilmont/web-fourier/logging"
)

// Speed change factors for the multiplicative control policy.
const (
	speedUpFactor  = 1.5
	slowDownFactor = 2.0 / 3.0
	defaultSpeed   = 1.0
)

// State is the playback state machine state.
type State int

const (
	// Stopped is the initial state; entering it resets the position to 0.
	Stopped State = iota
	// Paused freezes the position while keeping it.
	Paused
	// Playing advances the position on every Step.
	Playing
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Vector is one epicycle arrow in the rotating-vector chain.
type Vector struct {
	Frequency int
	From      complex128
	To        complex128
}

// Frame is everything a renderer needs for one tick: the full original
// curve, the partial reconstruction up to the current point, and the
// ordered epicycle chain whose tip is the current reconstructed point.
type Frame struct {
	Index          int
	Original       []complex128
	Reconstruction []complex128
	Vectors        []Vector
	Tip            complex128
}

// Renderer receives one frame per animation tick. It is the single
// capability the controller needs from whoever owns the drawing surface.
type Renderer interface {
	RenderFrame(Frame)
}

// Controller owns the playback state for one engine. It is not safe for
// concurrent use; see the package comment.
type Controller struct {
	engine   *fourier.Engine
	renderer Renderer
	log      logging.Logger

	position float64
	speed    float64
	state    State

	kMin, kMax int
	recon      []complex128
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpeed sets the initial playback speed in sample-index units per
// unit elapsed time.
func WithSpeed(speed float64) Option {
	return func(c *Controller) {
		c.speed = speed
	}
}

// WithBand sets the initial frequency band. The band is clamped to the
// engine's maximum frequency at construction, so a band carried over from a
// previously loaded, longer signal is always valid before first use.
func WithBand(kMin, kMax int) Option {
	return func(c *Controller) {
		c.kMin, c.kMax = kMin, kMax
	}
}

// WithRenderer attaches the frame sink Step pushes to.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) {
		c.renderer = r
	}
}

// WithLogger sets the error sink for per-tick query failures.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// NewController creates a stopped controller bound to one engine.
func NewController(engine *fourier.Engine, opts ...Option) (*Controller, error) {
	if engine == nil {
		return nil, fmt.Errorf("playback: engine must not be nil")
	}

	c := &Controller{
		engine: engine,
		speed:  defaultSpeed,
		state:  Stopped,
		kMin:   0,
		kMax:   engine.MaxFrequency(),
		log:    logging.NewDefaultLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	c.clampBand()
	if err := c.rebuildReconstruction(); err != nil {
		return nil, err
	}

	return c, nil
}

// Start begins playback from the stopped state. It has no effect while
// paused or already playing.
func (c *Controller) Start() {
	if c.state == Stopped {
		c.state = Playing
	}
}

// Stop halts playback and resets the position to 0. Safe to call from any
// state; idempotent when already stopped.
func (c *Controller) Stop() {
	c.state = Stopped
	c.position = 0
}

// Play resumes a paused animation.
func (c *Controller) Play() {
	if c.state == Paused {
		c.state = Playing
	}
}

// Pause freezes a playing animation.
func (c *Controller) Pause() {
	if c.state == Playing {
		c.state = Paused
	}
}

// State returns the current playback state.
func (c *Controller) State() State { return c.state }

// IsPaused reports whether playback is paused.
func (c *Controller) IsPaused() bool { return c.state == Paused }

// IsStopped reports whether playback is stopped.
func (c *Controller) IsStopped() bool { return c.state == Stopped }

// Speed returns the playback speed.
func (c *Controller) Speed() float64 { return c.speed }

// SetSpeed sets the playback speed. Negative values play in reverse.
// Allowed in any state without a state transition.
func (c *Controller) SetSpeed(speed float64) { c.speed = speed }

// SpeedUp raises the speed by a constant factor, keeping perceived changes
// proportional at all magnitudes.
func (c *Controller) SpeedUp() { c.speed *= speedUpFactor }

// SlowDown lowers the speed by the inverse policy of SpeedUp.
func (c *Controller) SlowDown() { c.speed *= slowDownFactor }

// Band returns the active frequency band.
func (c *Controller) Band() (kMin, kMax int) { return c.kMin, c.kMax }

// SetBand selects which coefficients participate in the reconstruction.
// Returns the engine's range error if the band is invalid for this signal.
func (c *Controller) SetBand(kMin, kMax int) error {
	if kMin < 0 || kMin > kMax || kMax > c.engine.MaxFrequency() {
		return fmt.Errorf("%w: [%d, %d] (max %d)", fourier.ErrInvalidRange, kMin, kMax, c.engine.MaxFrequency())
	}

	c.kMin, c.kMax = kMin, kMax

	return c.rebuildReconstruction()
}

// Position returns the fractional playback position in [0, N].
func (c *Controller) Position() float64 { return c.position }

// CurrentPoint returns the integer sample index derived from the position.
func (c *Controller) CurrentPoint() int {
	n := c.engine.Size()
	return (n + int(math.Floor(c.position))) % n
}

// Step advances the animation by the elapsed wall-clock time and, when a
// renderer is attached, hands it the resulting frame. It is a no-op unless
// playing. A failing frame query is reported to the error sink and that
// tick's render is skipped; playback state is left unchanged.
func (c *Controller) Step(elapsed float64) {
	if c.state != Playing {
		return
	}

	c.position += c.speed * elapsed

	n := float64(c.engine.Size())
	switch {
	case c.position < 0:
		// Reverse playback wraps to the top of the sample domain.
		c.position = n
	case c.position >= n:
		c.position = math.Mod(c.position, n)
	}

	if c.renderer == nil {
		return
	}

	frame, err := c.Frame()
	if err != nil {
		c.log.Error(err, "playback: skipping frame", logging.Fields{
			"point": c.CurrentPoint(),
			"k_min": c.kMin,
			"k_max": c.kMax,
		})
		return
	}

	c.renderer.RenderFrame(frame)
}

// Frame builds the renderable snapshot for the current point: the original
// curve, the band-limited reconstruction truncated to the current point,
// and the epicycle chain. The chain's tip equals the reconstruction value
// at the current point within numerical tolerance.
func (c *Controller) Frame() (Frame, error) {
	point := c.CurrentPoint()
	n := c.engine.Size()

	vectors := make([]Vector, 0, 2*(c.kMax-c.kMin)+1)

	var tip complex128
	for k := c.kMin; k <= c.kMax; k++ {
		comp, err := c.engine.Component(k, point)
		if err != nil {
			return Frame{}, err
		}
		next := tip + comp
		vectors = append(vectors, Vector{Frequency: k, From: tip, To: next})
		tip = next

		if k == 0 || n-k == k {
			continue
		}

		mirror := n - k
		comp, err = c.engine.Component(mirror, point)
		if err != nil {
			return Frame{}, err
		}
		next = tip + comp
		vectors = append(vectors, Vector{Frequency: mirror, From: tip, To: next})
		tip = next
	}

	return Frame{
		Index:          point,
		Original:       c.engine.Original(),
		Reconstruction: c.recon[:point+1],
		Vectors:        vectors,
		Tip:            tip,
	}, nil
}

// clampBand forces the band into the engine's valid range. Used at
// construction so a band carried over from a different signal cannot
// poison the first frame.
func (c *Controller) clampBand() {
	maxFreq := c.engine.MaxFrequency()
	if c.kMax > maxFreq {
		c.kMax = maxFreq
	}
	if c.kMax < 0 {
		c.kMax = 0
	}
	if c.kMin < 0 {
		c.kMin = 0
	}
	if c.kMin > c.kMax {
		c.kMin = c.kMax
	}
}

// rebuildReconstruction refreshes the cached band-limited reconstruction.
// The reconstruction only changes with the band, never with the position,
// so recomputing it per tick would waste the whole frame budget.
func (c *Controller) rebuildReconstruction() error {
	recon, err := c.engine.FilteredRange(c.kMin, c.kMax)
	if err != nil {
		return err
	}

	c.recon = recon

	return nil
}
