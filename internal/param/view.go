package param

import (
	"fmt"

	"github.com/san-kum/simopts/internal/unit"
)

// View is one projection of a Model with its own active display unit.
type View struct {
	m    *Model
	unit unit.Unit
}

// NewView starts in the group's default unit.
func (m *Model) NewView() *View {
	return &View{m: m, unit: m.b.Units.Default()}
}

func (v *View) Model() *Model { return v.m }

func (v *View) Unit() unit.Unit { return v.unit }

// SetUnit switches the display unit; the stored value is untouched.
func (v *View) SetUnit(symbol string) error {
	u, ok := v.m.b.Units.Find(symbol)
	if !ok {
		return fmt.Errorf("%w: %q in %s", unit.ErrUnknownUnit, symbol, v.m.b.Units.Name())
	}
	v.unit = u
	return nil
}

func (v *View) DisplayValue() float64 {
	return v.unit.ToUnit(v.m.Value())
}

func (v *View) SetDisplayValue(d float64) {
	v.m.SetValue(v.unit.FromUnit(d))
}

// Step moves the value by n spinner increments.
func (v *View) Step(n int) {
	v.m.SetValue(v.m.Value() + float64(n)*v.m.b.SpinnerStep)
}

// SliderPosition maps the value into [0, 1] over the slider range.
func (v *View) SliderPosition() float64 {
	lo, hi := v.m.SliderRange()
	if hi <= lo {
		return 0
	}
	p := (v.m.Value() - lo) / (hi - lo)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (v *View) SetSliderPosition(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	lo, hi := v.m.SliderRange()
	v.m.SetValue(lo + p*(hi-lo))
}

func (v *View) String() string {
	return v.unit.Format(v.m.Value())
}
