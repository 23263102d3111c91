package geodetic

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strategy selects how positions and coriolis effects are computed over the
// Earth's surface during a run.
type Strategy int

const (
	Flat Strategy = iota
	Spherical
	WGS84
)

// Default is the strategy restored by a run options reset.
const Default = Spherical

var strategies = []Strategy{Flat, Spherical, WGS84}

var names = map[Strategy]string{
	Flat:      "flat",
	Spherical: "spherical",
	WGS84:     "wgs84",
}

var titles = map[Strategy]string{
	Flat:      "Flat Earth",
	Spherical: "Spherical approximation",
	WGS84:     "WGS84 ellipsoid",
}

var descriptions = map[Strategy]string{
	Flat:      "Perform computations with a flat Earth approximation",
	Spherical: "Perform geodetic computations assuming a spherical Earth",
	WGS84:     "Perform geodetic computations on the WGS84 reference ellipsoid using Vincenty's method (slower)",
}

// Values returns every strategy in display order.
func Values() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies)
	return out
}

func (s Strategy) Valid() bool {
	_, ok := names[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Title is the short human readable label.
func (s Strategy) Title() string {
	return titles[s]
}

func (s Strategy) Description() string {
	return descriptions[s]
}

// ParseStrategy accepts the lower case name of a strategy, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range strategies {
		if names[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Strategy) MarshalYAML() (interface{}, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return s.String(), nil
}
