// Package surface provides the host drawing surface that chart elements
// attach to, and painters that turn it into images.
//
// A Canvas is an ordered collection of Elements. Elements are painted in
// the order they were added, so later children cover earlier ones.
// Coordinates are pixels with the origin in the top-left corner and y
// growing downwards.
package surface

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/rs/zerolog"
)

var (
	// ErrAttached is returned when adding an element that is already a child.
	ErrAttached = errors.New("surface: element already attached")

	// ErrNotAttached is returned when removing an element that is not a child.
	ErrNotAttached = errors.New("surface: element not attached")
)

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Canonic returns r with non-negative width and height.
func (r Rect) Canonic() Rect {
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	return r
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Painter draws primitives. Radius is the corner radius; it is clamped by
// the painters to half the shorter side.
type Painter interface {
	FillRect(r Rect, radius float64, fill color.Color)
	StrokeRect(r Rect, radius float64, stroke color.Color, width float64)
	Text(x, y float64, text string, col color.Color)
}

// Element is something that can live on a Canvas.
// Elements are compared by identity, use pointer types.
type Element interface {
	Paint(p Painter)
}

// Canvas is the host surface.
type Canvas struct {
	Width, Height float64
	Background    color.Color

	children []Element
	log      zerolog.Logger
}

// New returns an empty canvas of the given pixel size.
func New(width, height float64) *Canvas {
	return &Canvas{
		Width:      width,
		Height:     height,
		Background: color.White,
		log:        zerolog.Nop(),
	}
}

// SetLogger sets the logger for attach and detach traces.
func (c *Canvas) SetLogger(l zerolog.Logger) { c.log = l }

// AddChild appends e. Once added the element is painted.
func (c *Canvas) AddChild(e Element) error {
	if e == nil {
		return fmt.Errorf("surface: nil element")
	}
	if c.index(e) >= 0 {
		return fmt.Errorf("%w: %T", ErrAttached, e)
	}
	c.children = append(c.children, e)
	c.log.Debug().Str("element", fmt.Sprintf("%T", e)).Int("children", len(c.children)).Msg("attached")
	return nil
}

// RemoveChild removes e. A removed element is no longer painted and may be
// discarded.
func (c *Canvas) RemoveChild(e Element) error {
	i := c.index(e)
	if i < 0 {
		return fmt.Errorf("%w: %T", ErrNotAttached, e)
	}
	c.children = append(c.children[:i], c.children[i+1:]...)
	c.log.Debug().Str("element", fmt.Sprintf("%T", e)).Int("children", len(c.children)).Msg("detached")
	return nil
}

// Contains reports whether e is a child of c.
func (c *Canvas) Contains(e Element) bool { return c.index(e) >= 0 }

// Len returns the number of children.
func (c *Canvas) Len() int { return len(c.children) }

// Children returns a copy of the children in paint order.
func (c *Canvas) Children() []Element {
	return append([]Element(nil), c.children...)
}

// Paint fills the background and paints all children onto p.
func (c *Canvas) Paint(p Painter) {
	if c.Background != nil {
		p.FillRect(Rect{W: c.Width, H: c.Height}, 0, c.Background)
	}
	for _, e := range c.children {
		e.Paint(p)
	}
}

func (c *Canvas) index(e Element) int {
	if e == nil {
		return -1
	}
	for i, child := range c.children {
		if child == e {
			return i
		}
	}
	return -1
}

// clampRadius limits a corner radius to what fits into r.
func clampRadius(r Rect, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	if m := r.W / 2; radius > m {
		radius = m
	}
	if m := r.H / 2; radius > m {
		radius = m
	}
	return radius
}
