// Package param binds a bounded numeric option field to any number of
// synchronized views. The bound field always holds the canonical value;
// each view converts it to its own selected display unit on read.
package param

import (
	"math"

	"github.com/san-kum/simopts/internal/unit"
)

// Binding describes how a Model reads, writes and resets one option field.
type Binding struct {
	Get func() float64
	Set func(float64)

	// Reset restores the field to its recommended value. It may touch
	// other fields when the reset is defined as a combined operation.
	Reset func()

	// Watch subscribes to writes of the field from any source and returns
	// a cancel function. When nil, the model only sees its own writes.
	Watch func(func()) func()

	Units *unit.Group

	// Min and Max bound the stored canonical value.
	Min, Max float64

	// SliderMin and SliderMax are the display range of slider views.
	SliderMin, SliderMax float64

	// SpinnerStep is the canonical increment of one spinner click.
	SpinnerStep float64
}

type observer struct {
	id int
	fn func(float64)
}

// Model is the single source of truth behind spinner, slider and unit
// selector views of one option field.
type Model struct {
	b         Binding
	observers []observer
	nextID    int
	unwatch   func()
}

func New(b Binding) *Model {
	if b.Max == 0 {
		b.Max = math.MaxFloat64
	}
	m := &Model{b: b}
	if b.Watch != nil {
		m.unwatch = b.Watch(m.notify)
	}
	return m
}

func (m *Model) Value() float64 {
	return m.b.Get()
}

// SetValue clamps v into [Min, Max] and stores it. NaN is ignored.
func (m *Model) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	m.b.Set(m.clamp(v))
	if m.b.Watch == nil {
		m.notify()
	}
}

// ResetToDefault runs the binding's reset operation.
func (m *Model) ResetToDefault() {
	if m.b.Reset == nil {
		return
	}
	m.b.Reset()
	if m.b.Watch == nil {
		m.notify()
	}
}

func (m *Model) Units() *unit.Group { return m.b.Units }

func (m *Model) Bounds() (min, max float64) { return m.b.Min, m.b.Max }

func (m *Model) SliderRange() (min, max float64) { return m.b.SliderMin, m.b.SliderMax }

// Subscribe registers fn to receive the canonical value after every change.
// Notification is synchronous.
func (m *Model) Subscribe(fn func(float64)) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.observers = append(m.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range m.observers {
			if o.id == id {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

// Close detaches the model from the field's change source.
func (m *Model) Close() {
	if m.unwatch != nil {
		m.unwatch()
		m.unwatch = nil
	}
	m.observers = nil
}

func (m *Model) clamp(v float64) float64 {
	if v < m.b.Min {
		return m.b.Min
	}
	if v > m.b.Max {
		return m.b.Max
	}
	return v
}

func (m *Model) notify() {
	v := m.Value()
	obs := make([]observer, len(m.observers))
	copy(obs, m.observers)
	for _, o := range obs {
		o.fn(v)
	}
}
