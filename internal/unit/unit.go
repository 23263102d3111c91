// Package unit converts values between display units of one quantity.
package unit

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrUnknownUnit  = errors.New("unit: unknown unit")
	ErrInvalidValue = errors.New("unit: invalid value")
)

// Unit converts between the canonical value of a quantity and a display
// value. Factor is the number of canonical units in one of this unit.
type Unit struct {
	Symbol string
	Factor float64
}

// ToUnit converts a canonical value into this unit.
func (u Unit) ToUnit(canonical float64) float64 {
	return canonical / u.Factor
}

// FromUnit converts a value in this unit back to the canonical unit.
func (u Unit) FromUnit(display float64) float64 {
	return display * u.Factor
}

// Format renders a canonical value in this unit, e.g. "10 ms".
func (u Unit) Format(canonical float64) string {
	return strconv.FormatFloat(u.ToUnit(canonical), 'g', 4, 64) + " " + u.Symbol
}

func (u Unit) String() string { return u.Symbol }

// Group is the set of units a quantity can be displayed in.
type Group struct {
	name  string
	units []Unit
	def   int
}

// NewGroup panics when def is not a valid index into units.
func NewGroup(name string, def int, units ...Unit) *Group {
	if def < 0 || def >= len(units) {
		panic(fmt.Sprintf("unit: group %s: default index %d out of range", name, def))
	}
	return &Group{name: name, units: units, def: def}
}

var (
	// TimeStep displays integration steps; seconds are canonical.
	TimeStep = NewGroup("time step", 1,
		Unit{Symbol: "ms", Factor: 0.001},
		Unit{Symbol: "s", Factor: 1},
	)

	ShortTime = NewGroup("short time", 0,
		Unit{Symbol: "s", Factor: 1},
	)
)

func (g *Group) Name() string { return g.name }

func (g *Group) Units() []Unit {
	out := make([]Unit, len(g.units))
	copy(out, g.units)
	return out
}

func (g *Group) Default() Unit { return g.units[g.def] }

func (g *Group) Find(symbol string) (Unit, bool) {
	for _, u := range g.units {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// ToStringUnit formats a canonical value in the group's default unit.
func (g *Group) ToStringUnit(canonical float64) string {
	return g.Default().Format(canonical)
}

// Parse reads "<number>[ ]<symbol>" and returns the canonical value. A bare
// number is taken to be in the default unit.
func (g *Group) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty %s value", ErrInvalidValue, g.name)
	}

	// Longest symbols first so "ms" is not read as "s".
	units := g.Units()
	sort.SliceStable(units, func(i, j int) bool {
		return len(units[i].Symbol) > len(units[j].Symbol)
	})

	u := g.Default()
	numStr := s
	for _, cand := range units {
		if strings.HasSuffix(s, cand.Symbol) {
			u = cand
			numStr = strings.TrimSuffix(s, cand.Symbol)
			break
		}
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(numStr), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %s value", ErrInvalidValue, s, g.name)
	}
	return u.FromUnit(val), nil
}
