// Package options holds the run options of a single simulation: the
// integration time step, the geodetic computation strategy and the ordered
// list of listener identifiers attached to the run.
//
// Options is shared by reference for the lifetime of an editing session.
// Every mutation is announced synchronously to subscribers so that all
// projections of a field stay consistent.
package options

import (
	"github.com/san-kum/simopts/internal/geodetic"
)

// RecommendedTimeStep is the default integration time step in seconds.
const RecommendedTimeStep = 0.01

// Field identifies which part of the options changed.
type Field int

const (
	FieldTimeStep Field = iota
	FieldGeodeticComputation
	FieldListeners
)

func (f Field) String() string {
	switch f {
	case FieldTimeStep:
		return "time_step"
	case FieldGeodeticComputation:
		return "geodetic_computation"
	case FieldListeners:
		return "listeners"
	}
	return "unknown"
}

// Change is delivered to subscribers after a field was written.
type Change struct {
	Field Field
}

type subscription struct {
	id int
	fn func(Change)
}

type Options struct {
	timeStep  float64
	geodetic  geodetic.Strategy
	listeners []string

	subs   []subscription
	nextID int
}

func New() *Options {
	return &Options{
		timeStep: RecommendedTimeStep,
		geodetic: geodetic.Default,
	}
}

func (o *Options) TimeStep() float64 { return o.timeStep }

// SetTimeStep stores v verbatim; range enforcement belongs to the parameter
// model bound to this field.
func (o *Options) SetTimeStep(v float64) {
	o.timeStep = v
	o.fire(FieldTimeStep)
}

func (o *Options) GeodeticComputation() geodetic.Strategy { return o.geodetic }

func (o *Options) SetGeodeticComputation(s geodetic.Strategy) {
	o.geodetic = s
	o.fire(FieldGeodeticComputation)
}

// ResetRunDefaults restores the recommended time step and the default
// geodetic strategy in a single operation. Both fields always reset
// together.
func (o *Options) ResetRunDefaults() {
	o.SetTimeStep(RecommendedTimeStep)
	o.SetGeodeticComputation(geodetic.Default)
}

// Listeners returns a copy of the listener identifiers in order.
func (o *Options) Listeners() []string {
	out := make([]string, len(o.listeners))
	copy(out, o.listeners)
	return out
}

func (o *Options) ListenerCount() int { return len(o.listeners) }

// ListenerAt returns the identifier at index i, or false when i is out of range.
func (o *Options) ListenerAt(i int) (string, bool) {
	if i < 0 || i >= len(o.listeners) {
		return "", false
	}
	return o.listeners[i], true
}

func (o *Options) AppendListener(id string) {
	o.listeners = append(o.listeners, id)
	o.fire(FieldListeners)
}

// RemoveListenerAt deletes the identifier at index i and shifts later
// entries down by one. It reports false when i is out of range.
func (o *Options) RemoveListenerAt(i int) bool {
	if i < 0 || i >= len(o.listeners) {
		return false
	}
	o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
	o.fire(FieldListeners)
	return true
}

// SetListeners replaces the whole listener list.
func (o *Options) SetListeners(ids []string) {
	o.listeners = make([]string, len(ids))
	copy(o.listeners, ids)
	o.fire(FieldListeners)
}

// Subscribe registers fn for change notifications and returns a function
// that removes it again.
func (o *Options) Subscribe(fn func(Change)) (cancel func()) {
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *Options) fire(f Field) {
	subs := make([]subscription, len(o.subs))
	copy(subs, o.subs)
	for _, s := range subs {
		s.fn(Change{Field: f})
	}
}
