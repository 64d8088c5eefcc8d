//go:build js && wasm

package main

import (
	"fmt"
	"math"
	"syscall/js"

	"github.com/guilmont/web-fourier/plot"
)

// canvasSurface adapts an HTML canvas 2D context to plot.Surface.
type canvasSurface struct {
	canvas js.Value
	ctx    js.Value
}

func newCanvasSurface(canvasID string) (*canvasSurface, error) {
	canvas := js.Global().Get("document").Call("getElementById", canvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("wasm: canvas element not found: %s", canvasID)
	}

	return &canvasSurface{
		canvas: canvas,
		ctx:    canvas.Call("getContext", "2d"),
	}, nil
}

func (s *canvasSurface) Size() (float64, float64) {
	return s.canvas.Get("width").Float(), s.canvas.Get("height").Float()
}

func (s *canvasSurface) Clear() {
	w, h := s.Size()
	s.ctx.Call("clearRect", 0, 0, w, h)
}

func (s *canvasSurface) Polyline(points []plot.Point, style plot.LineStyle) {
	if len(points) < 2 {
		return
	}

	s.applyStroke(style)
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.ctx.Call("lineTo", p.X, p.Y)
	}
	s.ctx.Call("stroke")
}

func (s *canvasSurface) Arrow(from, to plot.Point, style plot.LineStyle) {
	s.applyStroke(style)
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", from.X, from.Y)
	s.ctx.Call("lineTo", to.X, to.Y)
	s.ctx.Call("stroke")

	// Arrowhead as a filled triangle at the tip.
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}

	const headSize = 6.0
	norm := headSize / length
	ux, uy := dx*norm, dy*norm

	s.ctx.Set("fillStyle", cssColor(style.Color, style.Alpha))
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", to.X, to.Y)
	s.ctx.Call("lineTo", to.X-ux-uy/2, to.Y-uy+ux/2)
	s.ctx.Call("lineTo", to.X-ux+uy/2, to.Y-uy-ux/2)
	s.ctx.Call("closePath")
	s.ctx.Call("fill")
}

func (s *canvasSurface) FillRect(x, y, w, h float64, style plot.LineStyle) {
	s.ctx.Set("fillStyle", cssColor(style.Color, style.Alpha))
	s.ctx.Call("fillRect", x, y, w, h)
}

func (s *canvasSurface) Text(str string, at plot.Point, sizePx float64, color plot.Color) {
	s.ctx.Set("fillStyle", cssColor(color, 1))
	s.ctx.Set("font", fmt.Sprintf("%.0fpx sans-serif", sizePx))
	s.ctx.Set("textAlign", "center")
	s.ctx.Call("fillText", str, at.X, at.Y)
}

func (s *canvasSurface) applyStroke(style plot.LineStyle) {
	s.ctx.Set("strokeStyle", cssColor(style.Color, style.Alpha))
	s.ctx.Set("lineWidth", style.Width)
}

func cssColor(c plot.Color, alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, alpha)
}
