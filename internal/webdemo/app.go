// Package webdemo is the application core behind the WASM entrypoint: it
// owns one engine/controller pair per loaded signal and renders playback
// frames onto a plot surface. The JS host only ever talks to App.
package webdemo

import (
	"fmt"

	"github.com/guilmont/web-fourier/fourier"
	"github.com/guilmont/web-fourier/logging"
	"github.com/guilmont/web-fourier/playback"
	"github.com/guilmont/web-fourier/plot"
	"github.com/guilmont/web-fourier/signal"
)

const (
	viewportExtent         = 12.0
	lineWidthOriginal      = 1.0
	lineWidthReconstructed = 2.0
	arrowWidth             = 2.0
	examplePoints          = 500
)

// App drives the web demo: load a signal, control playback, draw frames.
type App struct {
	surface plot.Surface
	log     logging.Logger
	gen     *signal.Generator

	engine *fourier.Engine
	ctrl   *playback.Controller
}

// NewApp creates an app drawing onto surface and reporting through log.
func NewApp(surface plot.Surface, log logging.Logger) *App {
	if log == nil {
		log = logging.NewDefaultLogger()
	}

	return &App{
		surface: surface,
		log:     log,
		gen:     signal.NewGenerator(signal.WithPoints(examplePoints)),
	}
}

// LoadCurve replaces the current signal with a closed 2-D curve given as
// separate coordinate slices. The previous band and speed carry over,
// clamped against the new signal's maximum frequency.
func (a *App) LoadCurve(x, y []float64) error {
	curve, err := signal.Interleave(x, y)
	if err != nil {
		return err
	}

	return a.load(curve)
}

// LoadReal replaces the current signal with a 1-D real signal.
func (a *App) LoadReal(data []float64) error {
	return a.load(signal.Complexify(data))
}

// LoadExample loads one of the built-in demo signals by name.
func (a *App) LoadExample(name string) error {
	var (
		curve []complex128
		err   error
	)

	switch name {
	case "circle":
		curve, err = a.gen.Circle(8)
	case "ellipse":
		curve, err = a.gen.Ellipse(10, 6)
	case "lissajous":
		curve, err = a.gen.Lissajous(3, 2, 0, 8)
	case "star":
		curve, err = a.gen.Star(5, 10, 4)
	case "square":
		var wave []float64
		wave, err = a.gen.Square(3, 8)
		curve = signal.Complexify(wave)
	case "step":
		var wave []float64
		wave, err = a.gen.Step(149, 350)
		curve = signal.Complexify(wave)
	default:
		return fmt.Errorf("webdemo: unknown example: %s", name)
	}
	if err != nil {
		return err
	}

	return a.load(curve)
}

func (a *App) load(curve []complex128) error {
	engine, err := fourier.New(curve)
	if err != nil {
		return err
	}

	opts := []playback.Option{
		playback.WithRenderer(a),
		playback.WithLogger(a.log),
	}
	if a.ctrl != nil {
		// Carry the old band and speed over; NewController clamps the band
		// against the new engine before first use.
		kMin, kMax := a.ctrl.Band()
		opts = append(opts, playback.WithBand(kMin, kMax), playback.WithSpeed(a.ctrl.Speed()))
	}

	ctrl, err := playback.NewController(engine, opts...)
	if err != nil {
		return err
	}

	a.engine = engine
	a.ctrl = ctrl

	a.log.Info("webdemo: signal loaded", logging.Fields{
		"points":        engine.Size(),
		"max_frequency": engine.MaxFrequency(),
	})

	return nil
}

// Loaded reports whether a signal is loaded.
func (a *App) Loaded() bool { return a.ctrl != nil }

// OnTick advances playback by the elapsed seconds since the previous
// animation frame. The controller pushes the resulting frame back into
// RenderFrame.
func (a *App) OnTick(elapsed float64) {
	if a.ctrl == nil {
		return
	}
	a.ctrl.Step(elapsed)
}

// Start begins playback from the stopped state.
func (a *App) Start() {
	if a.ctrl != nil {
		a.ctrl.Start()
	}
}

// Stop halts playback and resets the position.
func (a *App) Stop() {
	if a.ctrl != nil {
		a.ctrl.Stop()
	}
}

// Play resumes a paused animation.
func (a *App) Play() {
	if a.ctrl != nil {
		a.ctrl.Play()
	}
}

// Pause freezes a playing animation.
func (a *App) Pause() {
	if a.ctrl != nil {
		a.ctrl.Pause()
	}
}

// IsPaused reports whether playback is paused.
func (a *App) IsPaused() bool { return a.ctrl != nil && a.ctrl.IsPaused() }

// IsStopped reports whether playback is stopped (true with no signal).
func (a *App) IsStopped() bool { return a.ctrl == nil || a.ctrl.IsStopped() }

// Speed returns the playback speed, 0 with no signal.
func (a *App) Speed() float64 {
	if a.ctrl == nil {
		return 0
	}
	return a.ctrl.Speed()
}

// SetSpeed sets the playback speed.
func (a *App) SetSpeed(speed float64) {
	if a.ctrl != nil {
		a.ctrl.SetSpeed(speed)
	}
}

// SpeedUp raises playback speed by the multiplicative policy.
func (a *App) SpeedUp() {
	if a.ctrl != nil {
		a.ctrl.SpeedUp()
	}
}

// SlowDown lowers playback speed by the multiplicative policy.
func (a *App) SlowDown() {
	if a.ctrl != nil {
		a.ctrl.SlowDown()
	}
}

// SetBand selects the frequency band used for reconstruction.
func (a *App) SetBand(kMin, kMax int) error {
	if a.ctrl == nil {
		return fmt.Errorf("webdemo: no signal loaded")
	}
	return a.ctrl.SetBand(kMin, kMax)
}

// MaxFrequency returns the loaded signal's maximum band frequency,
// -1 with no signal.
func (a *App) MaxFrequency() int {
	if a.engine == nil {
		return -1
	}
	return a.engine.MaxFrequency()
}

// PowerSpectrum returns the centered frequency axis and power spectrum of
// the loaded signal for the host's spectrum plot.
func (a *App) PowerSpectrum() (freqs, power []float64, err error) {
	if a.engine == nil {
		return nil, nil, fmt.Errorf("webdemo: no signal loaded")
	}
	return a.engine.FrequenciesCentered(), a.engine.PowerSpectrumCentered(), nil
}

// RenderFrame implements playback.Renderer: original curve in blue, partial
// reconstruction in orange, epicycle chain in green.
func (a *App) RenderFrame(frame playback.Frame) {
	plt := plot.NewPlotter(a.surface)
	plt.SetXRange(-viewportExtent, viewportExtent)
	plt.SetYRange(-viewportExtent, viewportExtent)

	// Single-point polylines are silently skipped; the first few frames of
	// a fresh animation have no drawable reconstruction yet.
	_ = plt.PlotCurve(frame.Original, plot.TabBlue, lineWidthOriginal)
	_ = plt.PlotCurve(frame.Reconstruction, plot.TabOrange, lineWidthReconstructed)

	for _, v := range frame.Vectors {
		plt.PlotArrow(
			plot.Point{X: real(v.From), Y: imag(v.From)},
			plot.Point{X: real(v.To), Y: imag(v.To)},
			plot.TabGreen, arrowWidth,
		)
	}

	plt.Show()
}
