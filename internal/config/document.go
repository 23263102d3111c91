package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/simopts/internal/geodetic"
	"github.com/san-kum/simopts/internal/options"
	"github.com/san-kum/simopts/internal/param"
)

// Document is the on-disk form of a simulation's run options.
type Document struct {
	TimeStep            float64           `yaml:"time_step"`
	GeodeticComputation geodetic.Strategy `yaml:"geodetic_computation"`
	Listeners           []string          `yaml:"listeners"`
}

func DefaultDocument() *Document {
	return &Document{
		TimeStep:            options.RecommendedTimeStep,
		GeodeticComputation: geodetic.Default,
		Listeners:           []string{},
	}
}

// DocumentFrom captures the current state of opts.
func DocumentFrom(opts *options.Options) *Document {
	return &Document{
		TimeStep:            opts.TimeStep(),
		GeodeticComputation: opts.GeodeticComputation(),
		Listeners:           opts.Listeners(),
	}
}

// Apply writes every field of d into opts. The time step goes through the
// time step model so it is clamped like any other edit.
func (d *Document) Apply(opts *options.Options) {
	ts := param.TimeStep(opts)
	ts.SetValue(d.TimeStep)
	ts.Close()
	opts.SetGeodeticComputation(d.GeodeticComputation)
	opts.SetListeners(d.Listeners)
}

// LoadOptions reads an options document. A missing file yields defaults.
func LoadOptions(path string) (*Document, error) {
	doc := DefaultDocument()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if math.IsNaN(doc.TimeStep) || math.IsInf(doc.TimeStep, 0) || doc.TimeStep <= 0 {
		return nil, fmt.Errorf("parsing %s: time_step must be a positive finite number, got %v", path, doc.TimeStep)
	}
	if doc.Listeners == nil {
		doc.Listeners = []string{}
	}
	return doc, nil
}

func SaveOptions(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
