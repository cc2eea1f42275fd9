package barchart

import (
	"errors"
	"fmt"

	"github.com/vdobler/barchart/anim"
)

// ColumnRadius is the corner radius of a column of the given width.
func ColumnRadius(width float64) float64 { return 0.4 * width }

// ColumnPointView draws a point as a vertical column of shape kind S with a
// label of kind L.
type ColumnPointView[S Shape, L Label] struct {
	newShape func() S
	newLabel func() L

	state    State
	shape    S
	label    L
	hasLabel bool
	area     Surface // where shape and label are attached
	point    *Point  // last point drawn, its series selects the dispose baseline
}

var (
	_ PointView = (*ColumnPointView[*Rectangle, *TextLabel])(nil)
	_ Detacher  = (*ColumnPointView[*Rectangle, *TextLabel])(nil)
)

// NewColumnPointView returns an undrawn point view which creates its
// shape and label with the given constructors on first use.
func NewColumnPointView[S Shape, L Label](newShape func() S, newLabel func() L) *ColumnPointView[S, L] {
	return &ColumnPointView[S, L]{newShape: newShape, newLabel: newLabel}
}

// State implements PointView.
func (v *ColumnPointView[S, L]) State() State { return v.state }

// Shape returns the shape; ok is false before the first Draw.
func (v *ColumnPointView[S, L]) Shape() (s S, ok bool) {
	return v.shape, v.state != Uninitialized
}

// Label returns the label; ok is false before the first DrawLabel.
func (v *ColumnPointView[S, L]) Label() (l L, ok bool) {
	return v.label, v.hasLabel
}

// Draw implements PointView. The first draw grows the column out of the
// baseline with a bounce, later draws move it straight to its new geometry.
func (v *ColumnPointView[S, L]) Draw(p, previous *Point) error {
	if v.state == Disposing || v.state == Disposed {
		return fmt.Errorf("draw point %d: %w", p.Index, ErrDisposed)
	}
	chart := p.Chart
	vm := p.ViewModel
	isNew := v.state == Uninitialized

	shape, area := v.shape, v.area
	if isNew {
		area = chart.DrawArea()
		if area == nil {
			return fmt.Errorf("draw point %d: %w", p.Index, ErrNoDrawArea)
		}
		shape = v.newShape()
		shape.SetValue(anim.Left, vm.Left)
		shape.SetValue(anim.Top, vm.Zero)
		shape.SetValue(anim.Width, vm.Width)
		shape.SetValue(anim.Height, 0)
		if err := area.AddChild(shape); err != nil {
			return fmt.Errorf("draw point %d: %w", p.Index, err)
		}
	}

	if r, ok := any(shape).(Rounded); ok {
		radius := ColumnRadius(vm.Width)
		r.SetRadius(radius, radius)
	}
	shape.SetStyle(p.Series.Stroke, p.Series.Fill)

	var by, bx float64
	if isNew {
		by = vm.Height * .3
		bx = vm.Width * .1
	}

	_, err := chart.Animator().Animate(shape).
		AtSpeed(chart.AnimationsSpeed()).
		Property(anim.Left,
			anim.F(0.9, vm.Left-bx*.5),
			anim.F(1, vm.Left)).
		Property(anim.Width,
			anim.F(0.9, vm.Width+bx),
			anim.F(1, vm.Width)).
		Property(anim.Top,
			anim.F(0.8, vm.Top-by),
			anim.F(0.9, vm.Top-by*.5),
			anim.F(1, vm.Top)).
		Property(anim.Height,
			anim.F(0.8, vm.Height+by),
			anim.F(0.9, vm.Height+by*.5),
			anim.F(1, vm.Height)).
		Begin()
	if err != nil {
		if isNew {
			// Nothing of a view that never rendered stays attached.
			if rerr := area.RemoveChild(shape); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
		return fmt.Errorf("draw point %d: %w", p.Index, err)
	}
	if isNew {
		v.shape, v.area, v.state = shape, area, Rendered
	}
	v.point = p
	return nil
}

// DrawLabel implements PointView. A new label starts at the shape's
// current position; every call tweens it linearly to at.
func (v *ColumnPointView[S, L]) DrawLabel(p *Point, at Point2D) error {
	switch v.state {
	case Uninitialized:
		return fmt.Errorf("draw label %d: %w", p.Index, ErrNotDrawn)
	case Disposing, Disposed:
		return fmt.Errorf("draw label %d: %w", p.Index, ErrDisposed)
	}
	chart := p.Chart

	if !v.hasLabel {
		area := chart.DrawArea()
		if area == nil {
			return fmt.Errorf("draw label %d: %w", p.Index, ErrNoDrawArea)
		}
		label := v.newLabel()
		label.Measure(p.PackAll())
		label.SetValue(anim.Left, v.shape.Value(anim.Left))
		label.SetValue(anim.Top, v.shape.Value(anim.Top))
		if err := area.AddChild(label); err != nil {
			return fmt.Errorf("draw label %d: %w", p.Index, err)
		}
		v.label, v.hasLabel = label, true
	} else {
		v.label.Measure(p.PackAll())
	}

	_, err := chart.Animator().Animate(v.label).
		AtSpeed(chart.AnimationsSpeed()).
		To(anim.Left, at.X).
		To(anim.Top, at.Y).
		Begin()
	if err != nil {
		return fmt.Errorf("draw label %d: %w", p.Index, err)
	}
	return nil
}

// Dispose implements PointView. The column shrinks into the baseline of
// its y scale; shape and label are detached when that has finished.
func (v *ColumnPointView[S, L]) Dispose(chart ChartContext) error {
	switch v.state {
	case Uninitialized:
		return fmt.Errorf("dispose: %w", ErrNotDrawn)
	case Disposing, Disposed:
		return fmt.Errorf("dispose: %w", ErrDisposed)
	}

	scale := v.point.Series.ScalesAt[1]
	axis := chart.Dimension(YAxis, scale)
	if axis == nil {
		return fmt.Errorf("dispose point %d: %w: y scale %d", v.point.Index, ErrNoScale, scale)
	}
	zero := axis.ScaleToUi(0)

	v.state = Disposing
	animator := chart.Animator()
	var tl *anim.Timeline
	detach := func() error {
		err := v.detach(animator)
		if tl != nil {
			tl.Dispose()
		}
		return err
	}

	tl, err := animator.Animate(v.shape).
		AtSpeed(chart.AnimationsSpeed()).
		To(anim.Top, zero).
		To(anim.Height, 0).
		Then(detach).
		Begin()
	if err != nil {
		v.state = Rendered
		return fmt.Errorf("dispose point %d: %w", v.point.Index, err)
	}
	if tl.Done() {
		// Zero speed: detach ran inside Begin, before tl was known.
		tl.Dispose()
	}
	return nil
}

// Detach implements Detacher. Running animations of shape and label are
// stopped, a pending Dispose included.
func (v *ColumnPointView[S, L]) Detach(chart ChartContext) error {
	if v.state == Uninitialized || v.state == Disposed {
		return nil
	}
	chart.Animator().Stop(v.shape)
	return v.detach(chart.Animator())
}

func (v *ColumnPointView[S, L]) detach(animator *anim.Animator) error {
	var errs []error
	if err := v.area.RemoveChild(v.shape); err != nil {
		errs = append(errs, err)
	}
	if v.hasLabel {
		animator.Stop(v.label)
		if err := v.area.RemoveChild(v.label); err != nil {
			errs = append(errs, err)
		}
	}
	v.state = Disposed
	return errors.Join(errs...)
}
