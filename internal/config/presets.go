package config

import (
	"sort"

	"github.com/san-kum/simopts/internal/geodetic"
)

var Presets = map[string]*Document{
	"default": {
		TimeStep: 0.01, GeodeticComputation: geodetic.Spherical,
	},
	"fine": {
		TimeStep: 0.001, GeodeticComputation: geodetic.WGS84,
	},
	"coarse": {
		TimeStep: 0.05, GeodeticComputation: geodetic.Flat,
	},
}

// GetPreset returns a copy of the named preset, or nil. Presets never carry
// listeners.
func GetPreset(name string) *Document {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &Document{
		TimeStep:            p.TimeStep,
		GeodeticComputation: p.GeodeticComputation,
		Listeners:           []string{},
	}
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
