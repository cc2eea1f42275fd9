package main

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/barchart/surface"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{color.NRGBA{0x33, 0x66, 0xcc, 0xff}, "#3366cc"},
		{color.White, "#ffffff"},
		{color.Transparent, ""},
		{nil, ""},
		{color.NRGBA{0x00, 0x00, 0x00, 0x80}, "#7f7f7f"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, hexColor(tc.in), "%v", tc.in)
	}
}

func TestCellPainter(t *testing.T) {
	// 10x4 cells of 10x10 pixels each.
	p := newCellPainter(10, 4, 100, 40)
	p.FillRect(surface.Rect{X: 20, Y: 10, W: 30, H: 30}, 0, color.NRGBA{0xff, 0, 0, 0xff})
	p.Text(0, 0, "hi", color.Black)
	p.Text(95, 0, "cut", color.Black)
	p.Text(0, 100, "gone", color.Black)

	want := []string{
		"hi        ",
		"          ",
		"          ",
		"          ",
	}
	assert.Equal(t, strings.Join(want, "\n"), p.Plain())

	for row := 0; row < 4; row++ {
		for col := 0; col < 10; col++ {
			filled := row >= 1 && col >= 2 && col < 5
			if filled {
				assert.Equal(t, "#ff0000", p.cells[row][col].bg, "cell %d,%d", row, col)
			} else {
				assert.Equal(t, "", p.cells[row][col].bg, "cell %d,%d", row, col)
			}
		}
	}
	assert.Equal(t, "#000000", p.cells[0][0].fg)
}

func TestCellPainterCanvas(t *testing.T) {
	c := surface.New(40, 20)
	p := newCellPainter(4, 2, c.Width, c.Height)
	c.Paint(p)
	for _, line := range p.cells {
		for _, x := range line {
			require.Equal(t, "#ffffff", x.bg)
		}
	}
	assert.Len(t, strings.Split(p.String(), "\n"), 2)
}
