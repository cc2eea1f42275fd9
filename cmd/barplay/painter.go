package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vdobler/barchart/surface"
)

// cell is one character of the terminal grid.
type cell struct {
	ch     rune
	fg, bg string // lipgloss colors as "#rrggbb", "" for none
}

// cellPainter rasterises a surface.Canvas into a grid of terminal cells.
// A cell covers sx by sy pixels; rectangles fill every cell whose center
// they cover.
type cellPainter struct {
	cols, rows int
	sx, sy     float64
	cells      [][]cell
}

var _ surface.Painter = (*cellPainter)(nil)

func newCellPainter(cols, rows int, width, height float64) *cellPainter {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	p := &cellPainter{
		cols: cols,
		rows: rows,
		sx:   width / float64(cols),
		sy:   height / float64(rows),
	}
	p.cells = make([][]cell, rows)
	for r := range p.cells {
		p.cells[r] = make([]cell, cols)
		for c := range p.cells[r] {
			p.cells[r][c].ch = ' '
		}
	}
	return p
}

// hexColor converts col to "#rrggbb", blending a translucent color onto
// white. Fully transparent colors give "".
func hexColor(col color.Color) string {
	if col == nil {
		return ""
	}
	_, _, _, a := col.RGBA()
	if a == 0 {
		return ""
	}
	c, ok := colorful.MakeColor(col)
	if !ok {
		return ""
	}
	if a < 0xffff {
		c = colorful.Color{R: 1, G: 1, B: 1}.BlendRgb(c, float64(a)/0xffff)
	}
	return c.Clamped().Hex()
}

// span returns the cells [lo, hi) whose centers lie in [from, to).
func span(from, to, size float64, n int) (lo, hi int) {
	lo = int(math.Ceil(from/size - 0.5))
	hi = int(math.Ceil(to/size - 0.5))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

func (p *cellPainter) FillRect(r surface.Rect, _ float64, fill color.Color) {
	hex := hexColor(fill)
	if hex == "" {
		return
	}
	r = r.Canonic()
	c0, c1 := span(r.X, r.X+r.W, p.sx, p.cols)
	r0, r1 := span(r.Y, r.Y+r.H, p.sy, p.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			p.cells[row][col] = cell{ch: ' ', bg: hex}
		}
	}
}

// StrokeRect does nothing: a border is thinner than a cell.
func (p *cellPainter) StrokeRect(surface.Rect, float64, color.Color, float64) {}

func (p *cellPainter) Text(x, y float64, text string, col color.Color) {
	row := int(math.Round(y / p.sy))
	if row < 0 || row >= p.rows {
		return
	}
	fg := hexColor(col)
	c := int(math.Round(x / p.sx))
	for _, ch := range text {
		if c >= 0 && c < p.cols {
			p.cells[row][c].ch = ch
			p.cells[row][c].fg = fg
		}
		c++
	}
}

// String renders the grid, one styled run per stretch of equal colors.
func (p *cellPainter) String() string {
	var b strings.Builder
	for r, line := range p.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for c := 1; c <= len(line); c++ {
			if c < len(line) && line[c].fg == line[start].fg && line[c].bg == line[start].bg {
				continue
			}
			run := make([]rune, 0, c-start)
			for _, x := range line[start:c] {
				run = append(run, x.ch)
			}
			b.WriteString(cellStyle(line[start]).Render(string(run)))
			start = c
		}
	}
	return b.String()
}

func cellStyle(c cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg != "" {
		s = s.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		s = s.Background(lipgloss.Color(c.bg))
	}
	return s
}

// Plain returns the characters of the grid without styling.
func (p *cellPainter) Plain() string {
	lines := make([]string, len(p.cells))
	for r, line := range p.cells {
		run := make([]rune, len(line))
		for c, x := range line {
			run[c] = x.ch
		}
		lines[r] = string(run)
	}
	return strings.Join(lines, "\n")
}
