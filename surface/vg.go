package surface

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// VGPainter paints onto a gonum vg.Canvas. One canvas pixel is one vg
// point. vg has its origin in the bottom-left corner, so y is flipped
// using the height of the surface.
type VGPainter struct {
	c      vg.Canvas
	height float64
	font   vg.Font
	text   bool
}

// NewVGPainter returns a painter for c, which must be height points high.
// Text is skipped if the default font cannot be loaded.
func NewVGPainter(c vg.Canvas, height float64) *VGPainter {
	p := &VGPainter{c: c, height: height}
	if f, err := vg.MakeFont("Helvetica", vg.Points(10)); err == nil {
		p.font, p.text = f, true
	}
	return p
}

// FillRect implements Painter.
func (p *VGPainter) FillRect(r Rect, radius float64, fill color.Color) {
	r = r.Canonic()
	if r.Empty() || fill == nil {
		return
	}
	p.c.SetColor(fill)
	p.c.Fill(p.path(r, clampRadius(r, radius)))
}

// StrokeRect implements Painter.
func (p *VGPainter) StrokeRect(r Rect, radius float64, stroke color.Color, width float64) {
	r = r.Canonic()
	if r.Empty() || stroke == nil || width <= 0 {
		return
	}
	// Keep the border inside the rectangle.
	w := 0.4999 * width
	r = Rect{X: r.X + w, Y: r.Y + w, W: r.W - 2*w, H: r.H - 2*w}
	if r.Empty() {
		return
	}
	p.c.SetColor(stroke)
	p.c.SetLineWidth(vg.Length(width))
	p.c.Stroke(p.path(r, clampRadius(r, radius)))
}

// Text implements Painter. (x, y) is the top-left corner of the text.
func (p *VGPainter) Text(x, y float64, text string, col color.Color) {
	if !p.text || text == "" || col == nil {
		return
	}
	p.c.SetColor(col)
	baseline := y + 0.8*float64(p.font.Size)
	p.c.FillString(p.font, p.pt(x, baseline), text)
}

func (p *VGPainter) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(p.height - y)}
}

// path traces r counter-clockwise in vg space, starting at the bottom edge.
func (p *VGPainter) path(r Rect, rad float64) vg.Path {
	x0, x1 := r.X, r.X+r.W
	y0, y1 := p.height-(r.Y+r.H), p.height-r.Y // bottom, top
	at := func(x, y float64) vg.Point { return vg.Point{X: vg.Length(x), Y: vg.Length(y)} }

	var path vg.Path
	if rad == 0 {
		path.Move(at(x0, y0))
		path.Line(at(x1, y0))
		path.Line(at(x1, y1))
		path.Line(at(x0, y1))
		path.Close()
		return path
	}
	l := vg.Length(rad)
	path.Move(at(x0+rad, y0))
	path.Line(at(x1-rad, y0))
	path.Arc(at(x1-rad, y0+rad), l, -math.Pi/2, math.Pi/2)
	path.Line(at(x1, y1-rad))
	path.Arc(at(x1-rad, y1-rad), l, 0, math.Pi/2)
	path.Line(at(x0+rad, y1))
	path.Arc(at(x0+rad, y1-rad), l, math.Pi/2, math.Pi/2)
	path.Line(at(x0, y0+rad))
	path.Arc(at(x0+rad, y0+rad), l, math.Pi, math.Pi/2)
	path.Close()
	return path
}

// WritePNG renders c as PNG through vgimg at 72 dpi, so the image has the
// canvas' pixel size.
func WritePNG(w io.Writer, c *Canvas) error {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(c.Width), vg.Length(c.Height)),
		vgimg.UseDPI(72),
	)
	c.Paint(NewVGPainter(img, c.Height))
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// WriteSVG renders c as SVG through vgsvg.
func WriteSVG(w io.Writer, c *Canvas) error {
	svg := vgsvg.New(vg.Length(c.Width), vg.Length(c.Height))
	c.Paint(NewVGPainter(svg, c.Height))
	_, err := svg.WriteTo(w)
	return err
}
