package barchart

import (
	"image/color"
	"time"

	"github.com/vdobler/barchart/anim"
	"github.com/vdobler/barchart/surface"
)

// Point2D is a position in data or pixel space.
type Point2D struct {
	X, Y float64
}

// ColumnViewModel is the pixel geometry of one column as computed by the
// chart engine. Zero is the pixel y of value 0 on the column's y scale.
type ColumnViewModel struct {
	Left, Top, Width, Height float64
	Zero                     float64
}

// Series is a named sequence of values drawn with one style.
type Series struct {
	Name   string
	Values []float64

	// Stroke and Fill are the style of the series' shapes. They are passed
	// through unchanged; nil values are taken from the theme by Chart.
	Stroke, Fill color.Color

	// ScalesAt are the indices of the x and y scales this series uses.
	ScalesAt [2]int
}

// Point is one datum of a series as handed to a PointView on each draw.
type Point struct {
	Index      int     // position in the series
	Coordinate Point2D // category and value
	ViewModel  ColumnViewModel
	Series     *Series
	Chart      ChartContext
}

// LabelInfo is what a label needs to know about its point.
type LabelInfo struct {
	Series     string
	Index      int
	Coordinate Point2D
}

// PackAll collects the values a label shows.
func (p *Point) PackAll() LabelInfo {
	info := LabelInfo{Index: p.Index, Coordinate: p.Coordinate}
	if p.Series != nil {
		info.Series = p.Series.Name
	}
	return info
}

// AxisKind selects the x or y dimension of a chart.
type AxisKind int

const (
	XAxis AxisKind = iota
	YAxis
)

// Axis maps data values to pixels.
type Axis interface {
	ScaleToUi(value float64) float64
}

// Surface is the child container of the host. Attached elements are
// visible, removed ones may be discarded.
type Surface interface {
	AddChild(e surface.Element) error
	RemoveChild(e surface.Element) error
}

// ChartContext is what point views need from their chart.
type ChartContext interface {
	// DrawArea returns the host surface, nil if there is none.
	DrawArea() Surface

	// AnimationsSpeed is the duration of every point animation.
	AnimationsSpeed() time.Duration

	// Animator runs the point animations.
	Animator() *anim.Animator

	// Dimension returns scale index of the given axis kind, nil if unknown.
	Dimension(kind AxisKind, index int) Axis
}
