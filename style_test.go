package barchart

import (
	"image/color"
	"testing"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"gray40", color.NRGBA{0x66, 0x66, 0x66, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
		{"#12", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestString2Float(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"0.5", 0.5},
		{"50%", 0.5},
		{" 1 ", 1},
		{"7", 1},
		{"-3", 0},
		{"nonsens", 0.5},
	}
	for _, tc := range tests {
		if got := String2Float(tc.s, 0, 1); got != tc.want {
			t.Errorf("String2Float(%q) = %g, want %g", tc.s, got, tc.want)
		}
	}
}

func TestSetAlpha(t *testing.T) {
	got := SetAlpha(BuiltinColors["red"], 0.5)
	if n, ok := got.(color.NRGBA); !ok || n != (color.NRGBA{0xff, 0, 0, 0x80}) {
		t.Errorf("Got %v", got)
	}
}

func TestThemeMerge(t *testing.T) {
	theme := Theme{BarStyle: AesMapping{"fill": "#3366cc"}}
	stroke, fill := theme.BarColors()
	if fill != (color.NRGBA{0x33, 0x66, 0xcc, 0xff}) {
		t.Errorf("fill = %v", fill)
	}
	if stroke != (color.NRGBA{0x33, 0x33, 0x33, 0xff}) {
		t.Errorf("stroke = %v, want default gray20", stroke)
	}

	col, format := Theme{}.Label()
	if format != "%.0f" || col != color.Color(BuiltinColors["gray20"]) {
		t.Errorf("label %v %q", col, format)
	}
	if len(theme.BarStyle) != 1 {
		t.Errorf("Merge modified the theme: %v", theme.BarStyle)
	}
}
