package example

import (
	"log/slog"

	"github.com/san-kum/simopts/internal/listener"
)

// PrintListener logs every step at debug level.
type PrintListener struct {
	log   *slog.Logger
	steps int
}

func (p *PrintListener) Init() error {
	p.log = slog.Default().With("component", "print_listener")
	return nil
}

func (p *PrintListener) StartSimulation(s listener.Status) error {
	p.steps = 0
	p.log.Info("Simulation started", "time_step", s.TimeStep)
	return nil
}

func (p *PrintListener) PostStep(s listener.Status) error {
	p.steps++
	p.log.Debug("Step", "t", s.Time, "lat", s.Position.Lat, "lon", s.Position.Lon, "alt", s.Position.Alt)
	return nil
}

func (p *PrintListener) EndSimulation(s listener.Status, err error) {
	if err != nil {
		p.log.Warn("Simulation ended with error", "t", s.Time, "steps", p.steps, "error", err)
		return
	}
	p.log.Info("Simulation ended", "t", s.Time, "steps", p.steps)
}
