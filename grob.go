package barchart

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vdobler/barchart/anim"
	"github.com/vdobler/barchart/surface"
)

// Grobs are the graphical objects point views put onto the draw area.
// All of them are anim.Targets and surface.Elements.

// -------------------------------------------------------------------------
// Grob Box

// Box is a rectangle with square corners. It has no corner radius, so
// point views skip radius configuration for it.
type Box struct {
	Left, Top, Width, Height float64

	Stroke, Fill color.Color
	StrokeWidth  float64 // 0 draws no border
}

// Value implements anim.Target.
func (b *Box) Value(p anim.Property) float64 {
	switch p {
	case anim.Left:
		return b.Left
	case anim.Top:
		return b.Top
	case anim.Width:
		return b.Width
	case anim.Height:
		return b.Height
	}
	return 0
}

// SetValue implements anim.Target.
func (b *Box) SetValue(p anim.Property, v float64) {
	switch p {
	case anim.Left:
		b.Left = v
	case anim.Top:
		b.Top = v
	case anim.Width:
		b.Width = v
	case anim.Height:
		b.Height = v
	}
}

// SetStyle sets border and fill color.
func (b *Box) SetStyle(stroke, fill color.Color) {
	b.Stroke, b.Fill = stroke, fill
}

// Bounds returns the area covered by b.
func (b *Box) Bounds() surface.Rect {
	return surface.Rect{X: b.Left, Y: b.Top, W: b.Width, H: b.Height}
}

func (b *Box) paint(p surface.Painter, radius float64) {
	r := b.Bounds()
	p.FillRect(r, radius, b.Fill)
	if b.Stroke != nil && b.StrokeWidth > 0 {
		p.StrokeRect(r, radius, b.Stroke, b.StrokeWidth)
	}
}

// Paint implements surface.Element.
func (b *Box) Paint(p surface.Painter) { b.paint(p, 0) }

func (b *Box) String() string {
	return fmt.Sprintf("Box(%.1f,%.1f %.1fx%.1f)", b.Left, b.Top, b.Width, b.Height)
}

// -------------------------------------------------------------------------
// Grob Rectangle

// Rectangle is a Box with rounded corners.
type Rectangle struct {
	Box
	RadiusX, RadiusY float64
}

// SetRadius implements Rounded.
func (r *Rectangle) SetRadius(rx, ry float64) {
	r.RadiusX, r.RadiusY = rx, ry
}

// Paint implements surface.Element. Painters know only circular corners;
// the smaller radius is used.
func (r *Rectangle) Paint(p surface.Painter) {
	r.paint(p, math.Min(r.RadiusX, r.RadiusY))
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%.1f,%.1f %.1fx%.1f r=%.1f)",
		r.Left, r.Top, r.Width, r.Height, r.RadiusX)
}

// -------------------------------------------------------------------------
// Grob TextLabel

// labelFace is used to measure (and by the gg painter to draw) labels.
var labelFace font.Face = basicfont.Face7x13

// MeasureText returns the pixel size of s in the label face.
func MeasureText(s string) (w, h float64) {
	adv := font.MeasureString(labelFace, s)
	return float64(adv) / 64, float64(labelFace.Metrics().Height) / 64
}

// TextLabel shows the value of a point. Its size is the measured size of
// its text; only the position can be animated.
type TextLabel struct {
	Left, Top float64
	Format    string // fmt verb for the value, "%g" if empty
	Color     color.Color

	text          string
	width, height float64
}

// NewTextLabel returns a label formatting values with format.
func NewTextLabel(format string) *TextLabel {
	return &TextLabel{Format: format}
}

// LabelText formats the value of info like a TextLabel with format does.
func LabelText(format string, info LabelInfo) string {
	if format == "" {
		format = "%g"
	}
	return fmt.Sprintf(format, info.Coordinate.Y)
}

// Measure implements Label.
func (l *TextLabel) Measure(info LabelInfo) {
	l.text = LabelText(l.Format, info)
	l.width, l.height = MeasureText(l.text)
}

// Text returns the text set by the last Measure.
func (l *TextLabel) Text() string { return l.text }

// Value implements anim.Target.
func (l *TextLabel) Value(p anim.Property) float64 {
	switch p {
	case anim.Left:
		return l.Left
	case anim.Top:
		return l.Top
	case anim.Width:
		return l.width
	case anim.Height:
		return l.height
	}
	return 0
}

// SetValue implements anim.Target. Width and height follow the text and
// cannot be set.
func (l *TextLabel) SetValue(p anim.Property, v float64) {
	switch p {
	case anim.Left:
		l.Left = v
	case anim.Top:
		l.Top = v
	}
}

// Paint implements surface.Element.
func (l *TextLabel) Paint(p surface.Painter) {
	col := l.Color
	if col == nil {
		col = color.Black
	}
	p.Text(l.Left, l.Top, l.text, col)
}

func (l *TextLabel) String() string {
	return fmt.Sprintf("Label(%q at %.1f,%.1f)", l.text, l.Left, l.Top)
}
