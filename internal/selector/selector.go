// Package selector binds a closed set of enumerated values to one option
// field, exposing a description for every candidate.
package selector

import "fmt"

// Option is a selectable value together with its description.
type Option[E comparable] struct {
	Value       E
	Description string
}

// Selector keeps exactly one member of a fixed value set selected.
type Selector[E comparable] struct {
	values   []E
	describe func(E) string
	get      func() E
	set      func(E)
}

// New panics if values is empty or the current value is not a member.
func New[E comparable](values []E, describe func(E) string, get func() E, set func(E)) *Selector[E] {
	if len(values) == 0 {
		panic("selector: empty value set")
	}
	s := &Selector[E]{
		values:   append([]E(nil), values...),
		describe: describe,
		get:      get,
		set:      set,
	}
	if cur := get(); !s.Contains(cur) {
		panic(fmt.Sprintf("selector: current value %v is not selectable", cur))
	}
	return s
}

func (s *Selector[E]) Values() []E {
	return append([]E(nil), s.values...)
}

func (s *Selector[E]) Options() []Option[E] {
	out := make([]Option[E], len(s.values))
	for i, v := range s.values {
		out[i] = Option[E]{Value: v, Description: s.describe(v)}
	}
	return out
}

func (s *Selector[E]) Description(v E) string {
	return s.describe(v)
}

func (s *Selector[E]) Contains(v E) bool {
	for _, c := range s.values {
		if c == v {
			return true
		}
	}
	return false
}

func (s *Selector[E]) Selected() E {
	return s.get()
}

// SelectedDescription describes the current selection, for tooltip style
// displays that follow the selection.
func (s *Selector[E]) SelectedDescription() string {
	return s.describe(s.get())
}

// SetSelected stores v. A value outside the set is a programming error and
// panics.
func (s *Selector[E]) SetSelected(v E) {
	if !s.Contains(v) {
		panic(fmt.Sprintf("selector: %v is not a selectable value", v))
	}
	s.set(v)
}
