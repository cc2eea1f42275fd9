package barchart

import (
	"cmp"
	"fmt"
	"slices"
)

// Set is a set of comparable values.
type Set[K comparable] map[K]struct{}

// NewSet returns a set containing elems.
func NewSet[K comparable](elems ...K) Set[K] {
	s := make(Set[K], len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

func (s Set[K]) String() string {
	return fmt.Sprintf("%v", keys(s))
}

// Add x to s.
func (s Set[K]) Add(x K) {
	s[x] = struct{}{}
}

// Del deletes x from s.
func (s Set[K]) Del(x K) {
	delete(s, x)
}

// Contains returns whether s contains x.
func (s Set[K]) Contains(x K) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s Set[K]) Join(t Set[K]) {
	for x := range t {
		s.Add(x)
	}
}

// Remove removes all elements of t from s.
func (s Set[K]) Remove(t Set[K]) {
	for x := range t {
		s.Del(x)
	}
}

// Sorted returns the elements of s in ascending order.
func Sorted[K cmp.Ordered](s Set[K]) []K {
	e := keys(s)
	slices.Sort(e)
	return e
}

func keys[K comparable](s Set[K]) []K {
	e := make([]K, 0, len(s))
	for x := range s {
		e = append(e, x)
	}
	return e
}
