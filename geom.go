package barchart

import "math"

// -------------------------------------------------------------------------
// Column layout

// ColumnLayout places the values of several series as columns on integer
// categories: value i of every series sits at category i. Columns sharing
// a category are dodged, i.e. drawn side by side.
//
//	     +------------------- width -----------------+
//	n=3  |--------------|--------------|----- we ----|
//	n=4  |----------|----------|----------|----------|
//	     +-------- wh --------+x
type ColumnLayout struct {
	X *Scale   // the category axis
	Y []*Scale // value axes, selected by Series.ScalesAt[1]

	// Width is the fraction of a category covered by the columns at that
	// category. Zero means 0.9.
	Width float64
}

// Layout returns the view models of all values, indexed like series and
// their Values. Series with an unknown y scale get zero view models.
func (l ColumnLayout) Layout(series []*Series) [][]ColumnViewModel {
	width := l.Width
	if width <= 0 {
		width = 0.9
	}

	barsAt := make(map[int]float64) // number of columns at each category
	for _, s := range series {
		for i := range s.Values {
			barsAt[i]++
		}
	}

	drawnAt := make(map[int]float64)
	models := make([][]ColumnViewModel, len(series))
	for si, s := range series {
		models[si] = make([]ColumnViewModel, len(s.Values))
		idx := s.ScalesAt[1]
		if idx < 0 || idx >= len(l.Y) {
			continue
		}
		sy := l.Y[idx]
		for i, y := range s.Values {
			x, wh := float64(i), width/2
			we := width / barsAt[i]
			j := drawnAt[i]
			drawnAt[i]++
			xmin := x - wh + j*we
			xmax := xmin + we

			ymin, ymax := 0.0, y
			if y < 0 {
				ymin, ymax = y, 0
			}

			x0, x1 := l.X.ScaleToUi(xmin), l.X.ScaleToUi(xmax)
			y0, y1 := sy.ScaleToUi(ymin), sy.ScaleToUi(ymax)
			models[si][i] = ColumnViewModel{
				Left:   math.Min(x0, x1),
				Top:    math.Min(y0, y1),
				Width:  math.Abs(x1 - x0),
				Height: math.Abs(y1 - y0),
				Zero:   sy.ScaleToUi(0),
			}
		}
	}
	return models
}

// TrainColumns trains the scales of layout on series: the category axis
// covers every category including half a category margin, each value
// axis covers its values and zero.
func (l ColumnLayout) TrainColumns(series []*Series) {
	n := 0
	for _, s := range series {
		if len(s.Values) > n {
			n = len(s.Values)
		}
		idx := s.ScalesAt[1]
		if idx < 0 || idx >= len(l.Y) {
			continue
		}
		l.Y[idx].Train(0)
		l.Y[idx].Train(s.Values...)
	}
	if n > 0 {
		l.X.Train(-0.5, float64(n)-0.5)
	}
}
