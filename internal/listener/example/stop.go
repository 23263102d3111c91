package example

import (
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/simopts/internal/listener"
)

// StopTimeEnv overrides the stop time of StopAtTimeListener, in seconds.
const StopTimeEnv = "SIMOPTS_STOP_TIME"

const defaultStopTime = 10.0

// StopAtTimeListener ends the run once simulated time reaches StopTime.
type StopAtTimeListener struct {
	listener.Base
	StopTime float64
}

func (l *StopAtTimeListener) Init() error {
	l.StopTime = defaultStopTime
	raw := os.Getenv(StopTimeEnv)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", StopTimeEnv, err)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", StopTimeEnv, v)
	}
	l.StopTime = v
	return nil
}

func (l *StopAtTimeListener) PostStep(s listener.Status) error {
	if s.Time >= l.StopTime {
		return listener.ErrStopSimulation
	}
	return nil
}
