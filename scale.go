package barchart

import (
	"fmt"
	"math"
)

// Scale is a continuous position scale, e.g. an x- or y-axis. It is
// trained on data values, then prepared, after which ScaleToUi maps values
// linearly onto the pixel range [PixelMin, PixelMax]. A y scale typically
// has PixelMin at the bottom of the draw area, i.e. PixelMin > PixelMax.
type Scale struct {
	Type string // "x" or "y"

	// Expand widens the trained domain on both sides by this fraction of
	// its range.
	Expand float64

	DomainMin float64
	DomainMax float64

	PixelMin, PixelMax float64

	// Set up by Prepare.
	Breaks []float64
	Levels []string
	Pos    func(x float64) float64 // in [0,1] for the expanded domain
}

// NewScale sets up an untrained scale for the given aesthetic.
func NewScale(aesthetic string) *Scale {
	s := &Scale{Type: aesthetic}
	s.Reset()
	return s
}

// Reset forgets all training.
func (s *Scale) Reset() {
	s.DomainMin = math.Inf(+1)
	s.DomainMax = math.Inf(-1)
	s.Breaks, s.Levels, s.Pos = nil, nil, nil
}

// Train updates the domain to include values. NaNs are ignored.
func (s *Scale) Train(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < s.DomainMin {
			s.DomainMin = v
		}
		if v > s.DomainMax {
			s.DomainMax = v
		}
	}
}

// Prepare sets up breaks, levels and the mapping function after training.
// An untrained scale gets the domain [0,1], a degenerate one is widened
// by one on both sides.
func (s *Scale) Prepare() {
	if s.DomainMin > s.DomainMax {
		s.DomainMin, s.DomainMax = 0, 1
	}
	if s.DomainMin == s.DomainMax {
		s.DomainMin--
		s.DomainMax++
	}
	fullRange := s.DomainMax - s.DomainMin
	expand := fullRange * s.Expand
	min, max := s.DomainMin-expand, s.DomainMax+expand
	fullRange = max - min

	// Set up breaks and labels
	nb := 6
	s.Breaks = make([]float64, nb+1)
	s.Levels = make([]string, nb+1)
	step := (s.DomainMax - s.DomainMin) / float64(nb)
	for i := range s.Breaks {
		x := s.DomainMin + float64(i)*step
		s.Breaks[i] = x
		s.Levels[i] = fmt.Sprintf("%.4g", x)
	}

	s.Pos = func(x float64) float64 {
		return (x - min) / fullRange
	}
}

// ScaleToUi maps value to pixels. An unprepared scale maps everything to
// PixelMin.
func (s *Scale) ScaleToUi(value float64) float64 {
	if s.Pos == nil {
		return s.PixelMin
	}
	return s.PixelMin + s.Pos(value)*(s.PixelMax-s.PixelMin)
}

func (s *Scale) String() string {
	return fmt.Sprintf("Scale %s: domain=[%g,%g] pixels=[%g,%g]",
		s.Type, s.DomainMin, s.DomainMax, s.PixelMin, s.PixelMax)
}
