package barchart

import "image/color"

// AesMapping holds fixed aesthetics as strings, e.g. "fill": "#3366cc".
type AesMapping map[string]string

// Merge returns m with every value missing in m taken from the defaults,
// earlier defaults winning.
func (m AesMapping) Merge(defaults ...AesMapping) AesMapping {
	merged := make(AesMapping, len(m))
	for a, v := range m {
		merged[a] = v
	}
	for _, d := range defaults {
		for a, v := range d {
			if _, ok := merged[a]; !ok {
				merged[a] = v
			}
		}
	}
	return merged
}

type Theme struct {
	BarStyle, LabelStyle AesMapping
}

var DefaultTheme = Theme{
	BarStyle: AesMapping{
		"color": "gray20",
		"fill":  "gray40",
		"alpha": "1",
	},
	LabelStyle: AesMapping{
		"color":  "gray20",
		"format": "%.0f",
	},
}

// BarColors resolves the stroke and fill of a bar from the theme, falling
// back to DefaultTheme.
func (t Theme) BarColors() (stroke, fill color.Color) {
	style := t.BarStyle.Merge(DefaultTheme.BarStyle)
	alpha := String2Float(style["alpha"], 0, 1)
	return SetAlpha(String2Color(style["color"]), alpha),
		SetAlpha(String2Color(style["fill"]), alpha)
}

// Label returns the label color and format of the theme.
func (t Theme) Label() (col color.Color, format string) {
	style := t.LabelStyle.Merge(DefaultTheme.LabelStyle)
	return String2Color(style["color"]), style["format"]
}
