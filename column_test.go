package barchart

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vdobler/barchart/anim"
	"github.com/vdobler/barchart/surface"
)

// testChart is a ChartContext whose single y axis puts value 0 at pixel
// zero and grows upwards by one pixel per unit.
type testChart struct {
	canvas   *surface.Canvas
	animator *anim.Animator
	speed    time.Duration
	zero     float64
	noArea   bool
}

func newTestChart(speed time.Duration) *testChart {
	return &testChart{
		canvas:   surface.New(200, 200),
		animator: anim.NewAnimator(),
		speed:    speed,
		zero:     105,
	}
}

func (c *testChart) DrawArea() Surface {
	if c.noArea {
		return nil
	}
	return c.canvas
}

func (c *testChart) AnimationsSpeed() time.Duration { return c.speed }
func (c *testChart) Animator() *anim.Animator       { return c.animator }

func (c *testChart) Dimension(kind AxisKind, index int) Axis {
	if kind != YAxis || index != 0 {
		return nil
	}
	return axisFunc(func(v float64) float64 { return c.zero - v })
}

type axisFunc func(float64) float64

func (f axisFunc) ScaleToUi(v float64) float64 { return f(v) }

// traceRect records every height written to it.
type traceRect struct {
	Rectangle
	heights []float64
}

func (r *traceRect) SetValue(p anim.Property, v float64) {
	if p == anim.Height {
		r.heights = append(r.heights, v)
	}
	r.Rectangle.SetValue(p, v)
}

func newRect() *Rectangle  { return &Rectangle{} }
func newLabel() *TextLabel { return NewTextLabel("%.0f") }
func newColumn() *ColumnPointView[*Rectangle, *TextLabel] {
	return NewColumnPointView(newRect, newLabel)
}

var scenarioModel = ColumnViewModel{Left: 10, Top: 5, Width: 40, Height: 100, Zero: 105}

func testPoint(c ChartContext, vm ColumnViewModel) *Point {
	return &Point{
		Index:      0,
		Coordinate: Point2D{X: 0, Y: vm.Height},
		ViewModel:  vm,
		Series:     &Series{Name: "s", Values: []float64{vm.Height}},
		Chart:      c,
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func checkGeometry(t *testing.T, what string, b *Box, left, top, width, height float64) {
	t.Helper()
	if !near(b.Left, left) || !near(b.Top, top) || !near(b.Width, width) || !near(b.Height, height) {
		t.Errorf("%s: got (%g,%g %gx%g), want (%g,%g %gx%g)",
			what, b.Left, b.Top, b.Width, b.Height, left, top, width, height)
	}
}

func TestColumnCreationBounces(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := newColumn()
	p := testPoint(c, scenarioModel)
	if err := view.Draw(p, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	shape, ok := view.Shape()
	if !ok || view.State() != Rendered {
		t.Fatalf("after Draw: shape=%t state=%s", ok, view.State())
	}
	if !c.canvas.Contains(shape) {
		t.Errorf("shape not attached")
	}
	checkGeometry(t, "initial", &shape.Box, 10, 105, 40, 0)

	c.animator.Tick(80 * time.Millisecond)
	if !near(shape.Height, 130) || !near(shape.Top, -25) {
		t.Errorf("at 0.8: got top=%g height=%g, want -25 130", shape.Top, shape.Height)
	}
	c.animator.Tick(10 * time.Millisecond)
	if !near(shape.Left, 8) || !near(shape.Width, 44) || !near(shape.Height, 115) {
		t.Errorf("at 0.9: got %s", shape)
	}
	c.animator.Tick(10 * time.Millisecond)
	checkGeometry(t, "final", &shape.Box, 10, 5, 40, 100)
	if c.animator.Running(shape) {
		t.Errorf("shape still animating")
	}
}

func TestColumnUpdateDoesNotBounce(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := NewColumnPointView(func() *traceRect { return &traceRect{} }, newLabel)
	p := testPoint(c, scenarioModel)
	view.Draw(p, nil)
	c.animator.Tick(time.Second)

	shape, _ := view.Shape()
	shape.heights = nil
	if err := view.Draw(p, p); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for i := 0; i < 10; i++ {
		c.animator.Tick(10 * time.Millisecond)
	}
	for i, h := range shape.heights {
		if h != 100 {
			t.Errorf("height write %d = %g, want 100", i, h)
		}
	}
	checkGeometry(t, "final", &shape.Box, 10, 5, 40, 100)
}

func TestColumnZeroSpeed(t *testing.T) {
	c := newTestChart(0)
	view := NewColumnPointView(func() *traceRect { return &traceRect{} }, newLabel)
	if err := view.Draw(testPoint(c, scenarioModel), nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	shape, _ := view.Shape()
	checkGeometry(t, "immediately", &shape.Box, 10, 5, 40, 100)
	if c.animator.Active() != 0 {
		t.Errorf("got %d running timelines", c.animator.Active())
	}
	// The baseline height set on creation, then the final one.
	if len(shape.heights) != 2 || shape.heights[0] != 0 || shape.heights[1] != 100 {
		t.Errorf("height writes = %v, want [0 100]", shape.heights)
	}
}

func TestColumnDispose(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := newColumn()
	p := testPoint(c, scenarioModel)
	view.Draw(p, nil)
	view.DrawLabel(p, Point2D{X: 20, Y: 0})
	c.animator.Tick(time.Second)
	if c.canvas.Len() != 2 {
		t.Fatalf("got %d children, want shape and label", c.canvas.Len())
	}

	c.zero = 0
	if err := view.Dispose(c); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
	if view.State() != Disposing {
		t.Errorf("state = %s, want disposing", view.State())
	}
	c.animator.Tick(50 * time.Millisecond)
	if c.canvas.Len() != 2 {
		t.Errorf("detached before the animation finished")
	}
	c.animator.Tick(50 * time.Millisecond)

	shape, _ := view.Shape()
	if shape.Top != 0 || shape.Height != 0 {
		t.Errorf("got top=%g height=%g, want 0 0", shape.Top, shape.Height)
	}
	if c.canvas.Len() != 0 {
		t.Errorf("got %d children after dispose", c.canvas.Len())
	}
	if view.State() != Disposed {
		t.Errorf("state = %s, want disposed", view.State())
	}

	if err := view.Dispose(c); !errors.Is(err, ErrDisposed) {
		t.Errorf("second Dispose: got %v, want ErrDisposed", err)
	}
	if err := view.Draw(p, p); !errors.Is(err, ErrDisposed) {
		t.Errorf("Draw after Dispose: got %v, want ErrDisposed", err)
	}
	if c.animator.Failures() != 0 {
		t.Errorf("got %d failed continuations", c.animator.Failures())
	}
}

func TestColumnDisposeZeroSpeed(t *testing.T) {
	c := newTestChart(0)
	view := newColumn()
	p := testPoint(c, scenarioModel)
	view.Draw(p, nil)
	view.DrawLabel(p, Point2D{})
	if err := view.Dispose(c); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
	if view.State() != Disposed || c.canvas.Len() != 0 {
		t.Errorf("state=%s children=%d, want disposed and none", view.State(), c.canvas.Len())
	}
}

func TestColumnDisposeSupersedesDraw(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := newColumn()
	p := testPoint(c, scenarioModel)
	view.Draw(p, nil)
	c.animator.Tick(50 * time.Millisecond)
	view.Draw(p, p)
	c.animator.Tick(50 * time.Millisecond)
	view.Dispose(c)
	c.animator.Tick(time.Second)
	c.animator.Tick(time.Second)

	// A second detach would fail with surface.ErrNotAttached.
	if c.animator.Failures() != 0 {
		t.Errorf("got %d failed continuations", c.animator.Failures())
	}
	if view.State() != Disposed || c.canvas.Len() != 0 {
		t.Errorf("state=%s children=%d", view.State(), c.canvas.Len())
	}
}

func TestColumnLifecycleErrors(t *testing.T) {
	c := newTestChart(0)
	view := newColumn()
	p := testPoint(c, scenarioModel)

	if err := view.Dispose(c); !errors.Is(err, ErrNotDrawn) {
		t.Errorf("Dispose before Draw: got %v", err)
	}
	if err := view.DrawLabel(p, Point2D{}); !errors.Is(err, ErrNotDrawn) {
		t.Errorf("DrawLabel before Draw: got %v", err)
	}
	if view.State() != Uninitialized {
		t.Errorf("state = %s", view.State())
	}

	c.noArea = true
	if err := view.Draw(p, nil); !errors.Is(err, ErrNoDrawArea) {
		t.Errorf("Draw without area: got %v", err)
	}
	if view.State() != Uninitialized {
		t.Errorf("state = %s after failed Draw", view.State())
	}

	c.noArea = false
	p.Series.ScalesAt[1] = 3
	view.Draw(p, nil)
	if err := view.Dispose(c); !errors.Is(err, ErrNoScale) {
		t.Errorf("Dispose on unknown scale: got %v", err)
	}
	if view.State() != Rendered {
		t.Errorf("state = %s after failed Dispose", view.State())
	}
}

func TestColumnFailedDrawAttachesNothing(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := newColumn()
	vm := scenarioModel
	vm.Height = math.NaN()

	err := view.Draw(testPoint(c, vm), nil)
	if !errors.Is(err, anim.ErrInvalidFrames) {
		t.Errorf("Draw with NaN height: got %v", err)
	}
	if view.State() != Uninitialized || c.canvas.Len() != 0 || c.animator.Active() != 0 {
		t.Errorf("state=%s children=%d animating=%d, want nothing left",
			view.State(), c.canvas.Len(), c.animator.Active())
	}
	if _, ok := view.Shape(); ok {
		t.Errorf("failed view has a shape")
	}

	// The view is still usable.
	if err := view.Draw(testPoint(c, scenarioModel), nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if view.State() != Rendered || c.canvas.Len() != 1 {
		t.Errorf("state=%s children=%d", view.State(), c.canvas.Len())
	}
}

func TestColumnDetach(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := newColumn()
	if err := view.Detach(c); err != nil || view.State() != Uninitialized {
		t.Errorf("Detach before Draw: err=%v state=%s", err, view.State())
	}

	p := testPoint(c, scenarioModel)
	view.Draw(p, nil)
	view.DrawLabel(p, Point2D{X: 20, Y: 0})
	c.animator.Tick(time.Second)
	if err := view.Dispose(c); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
	c.animator.Tick(50 * time.Millisecond)

	// Detaching in the middle of the shrink drops the pending detach.
	if err := view.Detach(c); err != nil {
		t.Errorf("Detach: %v", err)
	}
	if view.State() != Disposed || c.canvas.Len() != 0 || c.animator.Active() != 0 {
		t.Errorf("state=%s children=%d animating=%d", view.State(), c.canvas.Len(), c.animator.Active())
	}
	c.animator.Tick(time.Second)
	if c.animator.Failures() != 0 {
		t.Errorf("%d failed continuations", c.animator.Failures())
	}
	if err := view.Detach(c); err != nil {
		t.Errorf("second Detach: %v", err)
	}
}

func TestColumnRadius(t *testing.T) {
	for _, w := range []float64{0, 1, 40, 1e6} {
		if r := ColumnRadius(w); r < 0 || r != 0.4*w {
			t.Errorf("ColumnRadius(%g) = %g", w, r)
		}
	}

	c := newTestChart(0)
	view := newColumn()
	view.Draw(testPoint(c, scenarioModel), nil)
	shape, _ := view.Shape()
	if shape.RadiusX != 16 || shape.RadiusY != 16 {
		t.Errorf("radius = %g,%g, want 16", shape.RadiusX, shape.RadiusY)
	}

	// Boxes have no radius; drawing them works all the same.
	boxes := NewColumnPointView(func() *Box { return &Box{} }, newLabel)
	if err := boxes.Draw(testPoint(c, scenarioModel), nil); err != nil {
		t.Errorf("Draw box: %v", err)
	}
	box, _ := boxes.Shape()
	checkGeometry(t, "box", box, 10, 5, 40, 100)
}

func TestColumnDrawIsIdempotent(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := newColumn()
	p := testPoint(c, scenarioModel)
	var shape *Rectangle
	for i := 0; i < 3; i++ {
		var previous *Point
		if i > 0 {
			previous = p
		}
		view.Draw(p, previous)
		c.animator.Tick(30 * time.Millisecond)
		c.animator.Tick(time.Second)
		shape, _ = view.Shape()
		checkGeometry(t, "pass", &shape.Box, 10, 5, 40, 100)
	}
	if c.canvas.Len() != 1 {
		t.Errorf("got %d children, want one shape", c.canvas.Len())
	}
}

func TestColumnLabel(t *testing.T) {
	c := newTestChart(100 * time.Millisecond)
	view := newColumn()
	p := testPoint(c, scenarioModel)
	view.Draw(p, nil)
	c.animator.Tick(50 * time.Millisecond)

	shape, _ := view.Shape()
	left, top := shape.Left, shape.Top
	if err := view.DrawLabel(p, Point2D{X: 25, Y: -10}); err != nil {
		t.Fatalf("DrawLabel: %v", err)
	}
	label, ok := view.Label()
	if !ok || !c.canvas.Contains(label) {
		t.Fatalf("label not attached")
	}
	if label.Left != left || label.Top != top {
		t.Errorf("label starts at %g,%g, want shape position %g,%g", label.Left, label.Top, left, top)
	}
	if label.Text() != "100" {
		t.Errorf("label text %q", label.Text())
	}

	c.animator.Tick(50 * time.Millisecond)
	if !near(label.Left, (left+25)/2) {
		t.Errorf("label halfway: left=%g", label.Left)
	}
	c.animator.Tick(50 * time.Millisecond)
	if label.Left != 25 || label.Top != -10 {
		t.Errorf("label at %g,%g, want 25,-10", label.Left, label.Top)
	}

	p2 := testPoint(c, scenarioModel)
	p2.Coordinate.Y = 7
	view.DrawLabel(p2, Point2D{X: 25, Y: -10})
	if label.Text() != "7" {
		t.Errorf("label text after redraw %q, want 7", label.Text())
	}
	if c.canvas.Len() != 2 {
		t.Errorf("got %d children", c.canvas.Len())
	}
}
