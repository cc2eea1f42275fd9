package anim

import (
	"errors"
	"fmt"
)

// ErrInvalidFrames is returned by Begin when a property's keyframes are
// empty, out of order, outside (0,1], do not end at 1, or when the same
// property is bound twice.
var ErrInvalidFrames = errors.New("anim: invalid keyframes")

// ContinuationError reports a completion continuation that returned an
// error or panicked. It is logged by the Animator, never propagated into
// Tick's caller.
type ContinuationError struct {
	Target Target
	Err    error
}

func (e *ContinuationError) Error() string {
	return fmt.Sprintf("anim: continuation of %T failed: %v", e.Target, e.Err)
}

func (e *ContinuationError) Unwrap() error {
	return e.Err
}
