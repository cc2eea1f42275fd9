package barchart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/vdobler/barchart/anim"
	"github.com/vdobler/barchart/surface"
)

var (
	// ErrNotDrawn is returned by operations which need a drawn point view.
	ErrNotDrawn = errors.New("barchart: point view not drawn")

	// ErrDisposed is returned for any operation on a point view which is
	// being or has been disposed, including a second Dispose.
	ErrDisposed = errors.New("barchart: point view disposed")

	// ErrNoDrawArea is returned when a chart has no surface to attach to.
	ErrNoDrawArea = errors.New("barchart: chart has no draw area")

	// ErrNoScale is returned when a point refers to a scale the chart
	// does not have.
	ErrNoScale = errors.New("barchart: no such scale")
)

// PointView renders a single point. Implementations differ in geometry
// and animation; the chart engine only uses this contract.
type PointView interface {
	// Draw is called once per re-render pass while the point is visible.
	// previous is the point drawn in the last pass, nil on the first.
	Draw(p, previous *Point) error

	// DrawLabel places the label of the point at the given location.
	DrawLabel(p *Point, at Point2D) error

	// Dispose animates the point out and detaches it once done.
	Dispose(chart ChartContext) error

	State() State
}

// Detacher is implemented by point views which can leave the draw area
// at once. The chart uses it when Dispose fails.
type Detacher interface {
	Detach(chart ChartContext) error
}

// State is the lifecycle state of a point view.
type State int

const (
	Uninitialized State = iota
	Rendered
	Disposing
	Disposed
)

var stateNames = [...]string{"uninitialized", "rendered", "disposing", "disposed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Shape is the visual of a point: animatable, drawable and styled.
type Shape interface {
	surface.Element
	anim.Target
	SetStyle(stroke, fill color.Color)
}

// Rounded is implemented by shapes with a corner radius.
type Rounded interface {
	SetRadius(rx, ry float64)
}

// Label is the text element of a point.
type Label interface {
	surface.Element
	anim.Target
	Measure(info LabelInfo)
}
