package surface

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// GGPainter paints onto a fogleman/gg context. gg shares the canvas'
// top-left origin, so no flipping happens here.
type GGPainter struct {
	dc *gg.Context
}

// NewGGPainter returns a painter drawing into dc.
func NewGGPainter(dc *gg.Context) *GGPainter {
	return &GGPainter{dc: dc}
}

// FillRect implements Painter.
func (p *GGPainter) FillRect(r Rect, radius float64, fill color.Color) {
	r = r.Canonic()
	if r.Empty() || fill == nil {
		return
	}
	p.dc.SetColor(fill)
	p.rect(r, clampRadius(r, radius))
	p.dc.Fill()
}

// StrokeRect implements Painter.
func (p *GGPainter) StrokeRect(r Rect, radius float64, stroke color.Color, width float64) {
	r = r.Canonic()
	if r.Empty() || stroke == nil || width <= 0 {
		return
	}
	p.dc.SetColor(stroke)
	p.dc.SetLineWidth(width)
	p.rect(r, clampRadius(r, radius))
	p.dc.Stroke()
}

// Text implements Painter using gg's default face. (x, y) is the top-left
// corner of the text.
func (p *GGPainter) Text(x, y float64, text string, col color.Color) {
	if text == "" || col == nil {
		return
	}
	p.dc.SetColor(col)
	p.dc.DrawStringAnchored(text, x, y, 0, 1)
}

func (p *GGPainter) rect(r Rect, rad float64) {
	if rad > 0 {
		p.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, rad)
		return
	}
	p.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
}

// EncodePNG rasterises c with gg and writes it as PNG.
func EncodePNG(w io.Writer, c *Canvas) error {
	dc := gg.NewContext(int(math.Ceil(c.Width)), int(math.Ceil(c.Height)))
	c.Paint(NewGGPainter(dc))
	return dc.EncodePNG(w)
}
