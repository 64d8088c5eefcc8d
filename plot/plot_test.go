package plot

import (
	"math"
	"testing"
)

type fakeSurface struct {
	w, h      float64
	cleared   int
	polylines [][]Point
	arrows    [][2]Point
	rects     int
	texts     []string
}

func (s *fakeSurface) Size() (float64, float64) { return s.w, s.h }
func (s *fakeSurface) Clear()                   { s.cleared++ }

func (s *fakeSurface) Polyline(points []Point, style LineStyle) {
	copied := make([]Point, len(points))
	copy(copied, points)
	s.polylines = append(s.polylines, copied)
}

func (s *fakeSurface) Arrow(from, to Point, style LineStyle) {
	s.arrows = append(s.arrows, [2]Point{from, to})
}

func (s *fakeSurface) FillRect(x, y, w, h float64, style LineStyle) { s.rects++ }

func (s *fakeSurface) Text(str string, at Point, sizePx float64, color Color) {
	s.texts = append(s.texts, str)
}

func TestPlotLineValidation(t *testing.T) {
	p := NewPlotter(&fakeSurface{w: 100, h: 100})

	if err := p.PlotLine([]Point{{X: 1, Y: 1}}, TabBlue, 1); err == nil {
		t.Fatal("PlotLine with one point expected error")
	}
	if err := p.PlotLine([]Point{{}, {X: 1, Y: 1}}, TabBlue, 1); err != nil {
		t.Fatalf("PlotLine error: %v", err)
	}
}

func TestPlotHistogramValidation(t *testing.T) {
	p := NewPlotter(&fakeSurface{w: 100, h: 100})

	if err := p.PlotHistogram([]float64{1}, []float64{1, 2}, TabBlue, 0.5); err == nil {
		t.Fatal("PlotHistogram length mismatch expected error")
	}
	if err := p.PlotHistogram(nil, nil, TabBlue, 0.5); err == nil {
		t.Fatal("PlotHistogram empty expected error")
	}
}

func TestTransformFixedRanges(t *testing.T) {
	surface := &fakeSurface{w: 100, h: 100}
	p := NewPlotter(surface)
	p.SetXRange(0, 10)
	p.SetYRange(0, 10)

	got := p.transform(Point{X: 5, Y: 5})
	if math.Abs(got.X-50) > 1e-12 || math.Abs(got.Y-50) > 1e-12 {
		t.Fatalf("transform(5,5) = %v, want (50,50)", got)
	}

	// Pixel y grows downward.
	got = p.transform(Point{X: 0, Y: 10})
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y) > 1e-12 {
		t.Fatalf("transform(0,10) = %v, want (0,0)", got)
	}
}

func TestAutoScalePadsRanges(t *testing.T) {
	surface := &fakeSurface{w: 100, h: 100}
	p := NewPlotter(surface)

	if err := p.PlotLine([]Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, TabBlue, 1); err != nil {
		t.Fatalf("PlotLine error: %v", err)
	}
	p.HideAxes()
	p.Show()

	if math.Abs(p.xMin+1) > 1e-12 || math.Abs(p.xMax-11) > 1e-12 {
		t.Fatalf("x range = [%v, %v], want [-1, 11]", p.xMin, p.xMax)
	}
	if math.Abs(p.yMin+1) > 1e-12 || math.Abs(p.yMax-11) > 1e-12 {
		t.Fatalf("y range = [%v, %v], want [-1, 11]", p.yMin, p.yMax)
	}
}

func TestAspectRatioWidensNarrowAxis(t *testing.T) {
	surface := &fakeSurface{w: 200, h: 100}
	p := NewPlotter(surface)
	p.SetXRange(0, 10)
	p.SetYRange(0, 10)
	p.PreserveAspectRatio(true)
	p.HideAxes()

	if err := p.PlotLine([]Point{{}, {X: 1, Y: 1}}, TabBlue, 1); err != nil {
		t.Fatalf("PlotLine error: %v", err)
	}
	p.Show()

	if math.Abs((p.xMax-p.xMin)-20) > 1e-12 {
		t.Fatalf("x range width = %v, want 20", p.xMax-p.xMin)
	}
	if math.Abs((p.xMin+p.xMax)/2-5) > 1e-12 {
		t.Fatalf("x range center = %v, want 5", (p.xMin+p.xMax)/2)
	}
}

func TestShowFlushesShapes(t *testing.T) {
	surface := &fakeSurface{w: 100, h: 100}
	p := NewPlotter(surface)
	p.HideAxes()
	p.SetXRange(-1, 1)
	p.SetYRange(-1, 1)

	if err := p.PlotCurve([]complex128{0, 1i, 1 + 1i}, TabOrange, 2); err != nil {
		t.Fatalf("PlotCurve error: %v", err)
	}
	p.PlotArrow(Point{}, Point{X: 1, Y: 0}, TabGreen, 2)
	if err := p.PlotHistogram([]float64{0, 0.5}, []float64{1, 2}, TabBlue, 0.25); err != nil {
		t.Fatalf("PlotHistogram error: %v", err)
	}

	p.Show()

	if surface.cleared != 1 {
		t.Fatalf("surface cleared %d times, want 1", surface.cleared)
	}
	if len(surface.polylines) != 1 {
		t.Fatalf("got %d polylines, want 1", len(surface.polylines))
	}
	if len(surface.arrows) != 1 {
		t.Fatalf("got %d arrows, want 1", len(surface.arrows))
	}
	if surface.rects != 2 {
		t.Fatalf("got %d rects, want 2", surface.rects)
	}

	// Re-Show keeps the queue (host redraw after resize).
	p.Show()
	if len(surface.polylines) != 2 {
		t.Fatalf("got %d polylines after second Show, want 2", len(surface.polylines))
	}

	p.Reset()
	p.Show()
	if len(surface.polylines) != 2 {
		t.Fatalf("Reset did not drop queued shapes")
	}
}

func TestAxesDrawnWhenOriginVisible(t *testing.T) {
	surface := &fakeSurface{w: 100, h: 100}
	p := NewPlotter(surface)
	p.SetXRange(-5, 5)
	p.SetYRange(-5, 5)
	p.SetTicks(4, 4)

	if err := p.PlotLine([]Point{{X: -1, Y: -1}, {X: 1, Y: 1}}, TabBlue, 1); err != nil {
		t.Fatalf("PlotLine error: %v", err)
	}
	p.Show()

	if len(surface.texts) == 0 {
		t.Fatal("expected tick labels with visible origin")
	}
	for _, s := range surface.texts {
		if s == "" {
			t.Fatal("empty tick label")
		}
	}
	// Grid lines, two axis lines, tick marks, and the data polyline.
	if len(surface.polylines) < 10 {
		t.Fatalf("got %d polylines, want grid+axes+data", len(surface.polylines))
	}
}
