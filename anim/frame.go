// Package anim animates numeric properties of visual elements along
// keyframe timelines.
//
// An Animator owns every running timeline. The host advances time by
// calling Animator.Tick once per frame; nothing in this package starts
// goroutines or reads the clock, so all property writes and all
// completion continuations happen on the host's goroutine.
//
// A timeline binds one or more properties of a single Target to ordered
// keyframes. The properties share duration and start time and therefore
// finish together:
//
//	tl, err := animator.Animate(shape).
//		AtSpeed(500 * time.Millisecond).
//		Property(anim.Top, anim.F(0.8, 90), anim.F(0.9, 95), anim.F(1, 100)).
//		To(anim.Height, 0).
//		Then(func() error { return canvas.RemoveChild(shape) }).
//		Begin()
package anim

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Property names an animatable numeric property of a Target.
type Property int

const (
	Left Property = iota
	Top
	Width
	Height
)

var propertyNames = [...]string{"left", "top", "width", "height"}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("property(%d)", int(p))
	}
	return propertyNames[p]
}

// Target is something whose properties can be animated. Targets are
// identified by equality, so implementations should be pointer types.
type Target interface {
	Value(p Property) float64
	SetValue(p Property, v float64)
}

// Frame is a keyframe: at Fraction of the timeline's duration the
// property has Value. Easing shapes the values between the previous
// keyframe and this one; nil means linear. The value at a keyframe is
// always exact, whatever the easing.
type Frame struct {
	Fraction float64
	Value    float64
	Easing   ease.TweenFunc
}

// F returns a linear Frame.
func F(fraction, value float64) Frame {
	return Frame{Fraction: fraction, Value: value}
}

// checkFrames reports why frames cannot form a timeline, or nil.
func checkFrames(frames []Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("no keyframes")
	}
	prev := 0.0
	for i, f := range frames {
		if f.Fraction <= prev || f.Fraction > 1 {
			return fmt.Errorf("keyframe %d at fraction %g not in (%g, 1]", i, f.Fraction, prev)
		}
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			return fmt.Errorf("keyframe %d has value %g", i, f.Value)
		}
		prev = f.Fraction
	}
	if prev != 1 {
		return fmt.Errorf("last keyframe at fraction %g, want 1", prev)
	}
	return nil
}

// binding is one property of a timeline. start is the property's value
// when the timeline began and acts as the implicit keyframe at 0.
type binding struct {
	prop   Property
	start  float64
	frames []Frame
}

// at interpolates the property at fraction f of the timeline.
func (b *binding) at(f float64) float64 {
	from, v0 := 0.0, b.start
	for _, fr := range b.frames {
		if f < fr.Fraction {
			p := (f - from) / (fr.Fraction - from)
			if fr.Easing != nil {
				p = float64(fr.Easing(float32(p), 0, 1, 1))
			}
			return v0 + (fr.Value-v0)*p
		}
		from, v0 = fr.Fraction, fr.Value
	}
	return v0
}

// final is the value at fraction 1.
func (b *binding) final() float64 {
	return b.frames[len(b.frames)-1].Value
}
