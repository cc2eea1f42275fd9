package anim

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Animator schedules timelines. It keeps at most one running timeline
// per Target. An Animator is not safe for concurrent use; it is meant to
// be driven from the host's frame loop.
type Animator struct {
	log      zerolog.Logger
	running  []*Timeline // in start order
	byTarget map[Target]*Timeline
	failures int
}

// Option configures an Animator.
type Option func(*Animator)

// WithLogger sets the logger used for failed continuations and debug
// traces. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Animator) { a.log = l }
}

// NewAnimator returns an idle Animator.
func NewAnimator(opts ...Option) *Animator {
	a := &Animator{
		log:      zerolog.Nop(),
		byTarget: make(map[Target]*Timeline),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Animate starts building a timeline for target.
func (a *Animator) Animate(target Target) *Builder {
	return &Builder{animator: a, target: target}
}

// Tick advances every running timeline by dt. All property values are
// written first; continuations of the timelines that reached their end
// run afterwards, in the order the timelines were started. A negative dt
// counts as zero.
func (a *Animator) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	var finished []*Timeline
	for _, tl := range a.running {
		tl.elapsed += dt
		f := tl.fraction()
		tl.apply(f)
		if f >= 1 {
			finished = append(finished, tl)
		}
	}
	for _, tl := range finished {
		a.remove(tl)
		tl.finished = true
	}
	for _, tl := range finished {
		a.complete(tl)
	}
}

// Stop cancels the running timeline of target, if any. Its properties
// keep their current values and its continuation is dropped.
func (a *Animator) Stop(target Target) bool {
	tl, ok := a.byTarget[target]
	if !ok {
		return false
	}
	a.remove(tl)
	tl.cancel()
	return true
}

// Running reports whether target has a running timeline.
func (a *Animator) Running(target Target) bool {
	_, ok := a.byTarget[target]
	return ok
}

// Active returns the number of running timelines.
func (a *Animator) Active() int { return len(a.running) }

// Failures returns how many continuations failed so far.
func (a *Animator) Failures() int { return a.failures }

func (a *Animator) add(tl *Timeline) {
	a.running = append(a.running, tl)
	a.byTarget[tl.target] = tl
}

func (a *Animator) remove(tl *Timeline) {
	if a.byTarget[tl.target] == tl {
		delete(a.byTarget, tl.target)
	}
	for i, t := range a.running {
		if t == tl {
			a.running = append(a.running[:i], a.running[i+1:]...)
			break
		}
	}
}

// complete runs the continuation of a finished timeline at most once.
func (a *Animator) complete(tl *Timeline) {
	then := tl.then
	tl.then = nil
	if then == nil {
		return
	}
	if err := run(then); err != nil {
		a.failures++
		a.log.Error().Err(&ContinuationError{Target: tl.target, Err: err}).
			Str("target", fmt.Sprintf("%T", tl.target)).
			Msg("animation continuation failed")
	}
}

// run calls fn and turns a panic into an error.
func run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// -------------------------------------------------------------------------
// Builder

// Builder collects the properties of a timeline until Begin.
type Builder struct {
	animator *Animator
	target   Target
	speed    time.Duration
	bindings []binding
	then     func() error
	err      error
}

// AtSpeed sets the duration of the timeline. Zero or negative durations
// finish synchronously inside Begin.
func (b *Builder) AtSpeed(d time.Duration) *Builder {
	b.speed = d
	return b
}

// Property binds p to frames. Frames must be strictly increasing in
// fraction and end at fraction 1; the value at fraction 0 is taken from
// the target when the timeline begins.
func (b *Builder) Property(p Property, frames ...Frame) *Builder {
	if b.err != nil {
		return b
	}
	if err := checkFrames(frames); err != nil {
		b.err = fmt.Errorf("%w: %s: %v", ErrInvalidFrames, p, err)
		return b
	}
	for _, bd := range b.bindings {
		if bd.prop == p {
			b.err = fmt.Errorf("%w: %s bound twice", ErrInvalidFrames, p)
			return b
		}
	}
	b.bindings = append(b.bindings, binding{prop: p, frames: append([]Frame(nil), frames...)})
	return b
}

// To binds p to a single linear keyframe at fraction 1.
func (b *Builder) To(p Property, v float64) *Builder {
	return b.Property(p, F(1, v))
}

// Then sets the completion continuation. It runs exactly once, after all
// properties reached their final value, unless the timeline is superseded,
// stopped or disposed first.
func (b *Builder) Then(fn func() error) *Builder {
	b.then = fn
	return b
}

// Begin starts the timeline, superseding any timeline running on the same
// target. The superseded timeline's continuation never runs.
func (b *Builder) Begin() (*Timeline, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.bindings) == 0 {
		return nil, fmt.Errorf("%w: no properties bound", ErrInvalidFrames)
	}
	if b.target == nil {
		return nil, fmt.Errorf("anim: nil target")
	}
	a := b.animator
	tl := &Timeline{
		animator: a,
		target:   b.target,
		duration: b.speed,
		bindings: b.bindings,
		then:     b.then,
	}
	for i := range tl.bindings {
		tl.bindings[i].start = b.target.Value(tl.bindings[i].prop)
	}
	if a.Stop(b.target) {
		a.log.Debug().Str("target", fmt.Sprintf("%T", b.target)).Msg("timeline superseded")
	}

	if tl.duration <= 0 {
		tl.apply(1)
		tl.finished = true
		a.complete(tl)
		return tl, nil
	}
	a.add(tl)
	a.log.Debug().Str("target", fmt.Sprintf("%T", b.target)).
		Dur("speed", tl.duration).Int("properties", len(tl.bindings)).
		Msg("timeline started")
	return tl, nil
}

// -------------------------------------------------------------------------
// Timeline

// Timeline is a running, finished or cancelled animation of one target.
type Timeline struct {
	animator *Animator
	target   Target
	duration time.Duration
	elapsed  time.Duration
	bindings []binding
	then     func() error

	finished  bool
	cancelled bool
	disposed  bool
}

// Done reports whether all properties reached their final value.
func (tl *Timeline) Done() bool { return tl.finished }

// Cancelled reports whether the timeline was superseded, stopped or
// disposed before it finished.
func (tl *Timeline) Cancelled() bool { return tl.cancelled }

// Dispose releases the timeline. A running timeline is cancelled. Calling
// Dispose again does nothing.
func (tl *Timeline) Dispose() {
	if tl.disposed {
		return
	}
	tl.disposed = true
	if !tl.finished && !tl.cancelled {
		tl.animator.remove(tl)
		tl.cancel()
	}
	tl.bindings = nil
	tl.then = nil
}

func (tl *Timeline) cancel() {
	tl.cancelled = true
	tl.then = nil
}

func (tl *Timeline) fraction() float64 {
	if tl.duration <= 0 {
		return 1
	}
	f := float64(tl.elapsed) / float64(tl.duration)
	if f > 1 {
		f = 1
	}
	return f
}

// apply writes all bound properties at fraction f. At f >= 1 the final
// keyframe values are written exactly.
func (tl *Timeline) apply(f float64) {
	for i := range tl.bindings {
		b := &tl.bindings[i]
		if f >= 1 {
			tl.target.SetValue(b.prop, b.final())
			continue
		}
		tl.target.SetValue(b.prop, b.at(f))
	}
}
