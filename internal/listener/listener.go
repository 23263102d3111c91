package listener

import (
	"errors"

	"github.com/san-kum/simopts/internal/geodetic"
)

var (
	ErrNotListener     = errors.New("listener: resolved type is not a simulation listener")
	ErrIndexOutOfRange = errors.New("listener: index out of range")
	ErrStopSimulation  = errors.New("listener: simulation stop requested")
)

// Status is the run state handed to listener hooks.
type Status struct {
	Time     float64
	TimeStep float64
	Position geodetic.Coordinate
	Velocity [3]float64
}

// Listener is the capability a listener identifier must resolve to. A hook
// may return ErrStopSimulation to end the run early.
type Listener interface {
	StartSimulation(s Status) error
	PostStep(s Status) error
	EndSimulation(s Status, err error)
}

// Base implements Listener with no-op hooks for embedding.
type Base struct{}

func (Base) StartSimulation(Status) error { return nil }
func (Base) PostStep(Status) error        { return nil }
func (Base) EndSimulation(Status, error)  {}
