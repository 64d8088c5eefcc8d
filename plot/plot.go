// Package plot maps signal-space geometry onto an abstract drawing surface.
//
// The Fourier engine and the playback controller work entirely in the
// signal's native coordinate space; this package is the glue that turns
// their polylines and epicycle arrows into pixel-space drawing calls. The
// Surface interface is implemented by the WASM canvas adapter in
// production and by fakes in tests.
package plot

import (
	"fmt"
	"math"
)

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Palette used by the web demo (the matplotlib "tab" colors).
var (
	TabBlue   = Color{31, 119, 180}
	TabOrange = Color{255, 127, 14}
	TabGreen  = Color{44, 160, 44}
	Black     = Color{0, 0, 0}
	LightGray = Color{211, 211, 211}
)

// Point is a 2-D point. Plot inputs are in signal space; Surface calls
// receive pixel space.
type Point struct {
	X, Y float64
}

// LineStyle bundles stroke parameters.
type LineStyle struct {
	Color Color
	Width float64
	Alpha float64
}

// Surface is the pixel-space drawing backend.
type Surface interface {
	Size() (width, height float64)
	Clear()
	Polyline(points []Point, style LineStyle)
	Arrow(from, to Point, style LineStyle)
	FillRect(x, y, w, h float64, style LineStyle)
	Text(s string, at Point, sizePx float64, color Color)
}

type shapeKind int

const (
	shapeLine shapeKind = iota
	shapeArrow
	shapeHistogram
)

type shape struct {
	kind     shapeKind
	points   []Point
	style    LineStyle
	barWidth float64
}

// Plotter accumulates shapes in signal space and flushes them to a Surface
// with an optional grid and axes. Ranges are auto-fitted to the data unless
// set explicitly.
type Plotter struct {
	surface Surface

	xMin, xMax float64
	yMin, yMax float64
	xAuto      bool
	yAuto      bool
	keepAspect bool

	xTicks, yTicks int
	fontSize       float64
	hideAxes       bool

	shapes []shape
}

// NewPlotter creates a plotter over the given surface.
func NewPlotter(surface Surface) *Plotter {
	return &Plotter{
		surface:  surface,
		xAuto:    true,
		yAuto:    true,
		xTicks:   10,
		yTicks:   10,
		fontSize: 12,
	}
}

// SetXRange fixes the x display range, disabling auto-scaling.
func (p *Plotter) SetXRange(min, max float64) {
	p.xMin, p.xMax = min, max
	p.xAuto = false
}

// SetYRange fixes the y display range, disabling auto-scaling.
func (p *Plotter) SetYRange(min, max float64) {
	p.yMin, p.yMax = min, max
	p.yAuto = false
}

// SetTicks sets the grid/axis tick counts.
func (p *Plotter) SetTicks(x, y int) {
	if x > 0 {
		p.xTicks = x
	}
	if y > 0 {
		p.yTicks = y
	}
}

// HideAxes disables the grid and axis rendering.
func (p *Plotter) HideAxes() { p.hideAxes = true }

// PreserveAspectRatio widens the narrower range on Show so circles render
// as circles.
func (p *Plotter) PreserveAspectRatio(keep bool) { p.keepAspect = keep }

// PlotLine queues a polyline through the given signal-space points.
func (p *Plotter) PlotLine(points []Point, color Color, width float64) error {
	if len(points) < 2 {
		return fmt.Errorf("plot: a line needs at least two points: %d", len(points))
	}

	p.shapes = append(p.shapes, shape{
		kind:   shapeLine,
		points: points,
		style:  LineStyle{Color: color, Width: width, Alpha: 1},
	})
	return nil
}

// PlotCurve queues a polyline through a complex curve (x = real, y = imag).
func (p *Plotter) PlotCurve(curve []complex128, color Color, width float64) error {
	points := make([]Point, len(curve))
	for i, c := range curve {
		points[i] = Point{X: real(c), Y: imag(c)}
	}
	return p.PlotLine(points, color, width)
}

// PlotArrow queues an arrow between two signal-space points.
func (p *Plotter) PlotArrow(from, to Point, color Color, width float64) {
	p.shapes = append(p.shapes, shape{
		kind:   shapeArrow,
		points: []Point{from, to},
		style:  LineStyle{Color: color, Width: width, Alpha: 1},
	})
}

// PlotHistogram queues vertical bars at the given bin positions.
func (p *Plotter) PlotHistogram(x, heights []float64, color Color, barWidth float64) error {
	if len(x) != len(heights) {
		return fmt.Errorf("plot: histogram x/height length mismatch: %d != %d", len(x), len(heights))
	}
	if len(x) == 0 {
		return fmt.Errorf("plot: histogram needs at least one bin")
	}

	points := make([]Point, len(x))
	for i := range x {
		points[i] = Point{X: x[i], Y: heights[i]}
	}

	p.shapes = append(p.shapes, shape{
		kind:     shapeHistogram,
		points:   points,
		style:    LineStyle{Color: color, Width: 1, Alpha: 0.8},
		barWidth: barWidth,
	})
	return nil
}

// Show resolves auto-scaling, clears the surface, draws grid and axes, and
// flushes all queued shapes in pixel space. The queue is left intact so a
// host can re-Show after a resize.
func (p *Plotter) Show() {
	p.resolveRanges()

	p.surface.Clear()
	if !p.hideAxes {
		p.drawGrid()
		p.drawAxes()
	}

	for _, s := range p.shapes {
		switch s.kind {
		case shapeLine:
			pixels := make([]Point, len(s.points))
			for i, pt := range s.points {
				pixels[i] = p.transform(pt)
			}
			p.surface.Polyline(pixels, s.style)
		case shapeArrow:
			p.surface.Arrow(p.transform(s.points[0]), p.transform(s.points[1]), s.style)
		case shapeHistogram:
			for _, pt := range s.points {
				base := p.transform(Point{X: pt.X, Y: 0})
				top := p.transform(Point{X: pt.X + s.barWidth, Y: pt.Y})
				p.surface.FillRect(base.X, base.Y, top.X-base.X, top.Y-base.Y, s.style)
			}
		}
	}
}

// Reset drops all queued shapes.
func (p *Plotter) Reset() { p.shapes = p.shapes[:0] }

func (p *Plotter) resolveRanges() {
	if p.xAuto {
		min, max := math.Inf(1), math.Inf(-1)
		for _, s := range p.shapes {
			for _, pt := range s.points {
				min = math.Min(min, pt.X)
				max = math.Max(max, pt.X)
			}
		}
		if min <= max {
			pad := 0.1 * (max - min)
			p.xMin, p.xMax = min-pad, max+pad
		}
	}

	if p.yAuto {
		min, max := math.Inf(1), math.Inf(-1)
		for _, s := range p.shapes {
			for _, pt := range s.points {
				min = math.Min(min, pt.Y)
				max = math.Max(max, pt.Y)
			}
		}
		if min <= max {
			pad := 0.1 * (max - min)
			p.yMin, p.yMax = min-pad, max+pad
		}
	}

	if p.xMax == p.xMin {
		p.xMax = p.xMin + 1
	}
	if p.yMax == p.yMin {
		p.yMax = p.yMin + 1
	}

	if p.keepAspect {
		p.fitAspect()
	}
}

func (p *Plotter) fitAspect() {
	width, height := p.surface.Size()
	if width <= 0 || height <= 0 {
		return
	}

	xRange := p.xMax - p.xMin
	yRange := p.yMax - p.yMin
	aspect := width / height

	if xRange/yRange > aspect {
		newY := xRange / aspect
		center := (p.yMax + p.yMin) / 2
		p.yMin, p.yMax = center-newY/2, center+newY/2
	} else {
		newX := yRange * aspect
		center := (p.xMax + p.xMin) / 2
		p.xMin, p.xMax = center-newX/2, center+newX/2
	}
}

// transform converts a signal-space point to pixel coordinates. The y axis
// flips because canvas pixel space grows downward.
func (p *Plotter) transform(pt Point) Point {
	width, height := p.surface.Size()
	return Point{
		X: (pt.X - p.xMin) / (p.xMax - p.xMin) * width,
		Y: height - (pt.Y-p.yMin)/(p.yMax-p.yMin)*height,
	}
}

func (p *Plotter) drawGrid() {
	width, height := p.surface.Size()
	style := LineStyle{Color: LightGray, Width: 1, Alpha: 0.3}

	for i := 0; i <= p.xTicks; i++ {
		x := p.xMin + (p.xMax-p.xMin)*float64(i)/float64(p.xTicks)
		px := p.transform(Point{X: x}).X
		p.surface.Polyline([]Point{{X: px, Y: 0}, {X: px, Y: height}}, style)
	}

	for i := 0; i <= p.yTicks; i++ {
		y := p.yMin + (p.yMax-p.yMin)*float64(i)/float64(p.yTicks)
		py := p.transform(Point{Y: y}).Y
		p.surface.Polyline([]Point{{X: 0, Y: py}, {X: width, Y: py}}, style)
	}
}

func (p *Plotter) drawAxes() {
	style := LineStyle{Color: Black, Width: 2, Alpha: 1}
	tick := p.fontSize / 2

	// X axis with tick labels, only when y=0 is visible.
	if p.yMin <= 0 && p.yMax >= 0 {
		yAxis := p.transform(Point{}).Y
		start := p.transform(Point{X: p.xMin}).X
		end := p.transform(Point{X: p.xMax}).X
		p.surface.Polyline([]Point{{X: start, Y: yAxis}, {X: end, Y: yAxis}}, style)

		for i := 0; i <= p.xTicks; i++ {
			x := p.xMin + (p.xMax-p.xMin)*float64(i)/float64(p.xTicks)
			px := p.transform(Point{X: x}).X
			p.surface.Polyline([]Point{{X: px, Y: yAxis - tick/2}, {X: px, Y: yAxis + tick/2}}, style)
			p.surface.Text(formatTick(x), Point{X: px, Y: yAxis + p.fontSize + 5}, p.fontSize, Black)
		}
	}

	// Y axis with tick labels, only when x=0 is visible.
	if p.xMin <= 0 && p.xMax >= 0 {
		xAxis := p.transform(Point{}).X
		start := p.transform(Point{Y: p.yMin}).Y
		end := p.transform(Point{Y: p.yMax}).Y
		p.surface.Polyline([]Point{{X: xAxis, Y: start}, {X: xAxis, Y: end}}, style)

		for i := 0; i <= p.yTicks; i++ {
			y := p.yMin + (p.yMax-p.yMin)*float64(i)/float64(p.yTicks)
			if math.Abs(y) < 1e-3 {
				// Skip the origin label to avoid overlap with the x axis.
				continue
			}
			py := p.transform(Point{Y: y}).Y
			p.surface.Polyline([]Point{{X: xAxis - tick/2, Y: py}, {X: xAxis + tick/2, Y: py}}, style)
			p.surface.Text(formatTick(y), Point{X: xAxis - 10, Y: py + p.fontSize/3}, p.fontSize, Black)
		}
	}
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-3 {
		return "0"
	}
	return fmt.Sprintf("%.2f", v)
}
