package param

import (
	"math"

	"github.com/san-kum/simopts/internal/options"
	"github.com/san-kum/simopts/internal/unit"
)

const (
	// MinTimeStep keeps the time step strictly positive.
	MinTimeStep = 1e-8

	timeStepSliderMax  = 0.2
	timeStepSpinnerInc = 0.001
)

// TimeStep binds the integration time step of opts. Its reset is the
// combined run options reset, which also restores the geodetic strategy.
func TimeStep(opts *options.Options) *Model {
	return New(Binding{
		Get:   opts.TimeStep,
		Set:   opts.SetTimeStep,
		Reset: opts.ResetRunDefaults,
		Watch: func(fn func()) func() {
			return opts.Subscribe(func(c options.Change) {
				if c.Field == options.FieldTimeStep {
					fn()
				}
			})
		},
		Units:       unit.TimeStep,
		Min:         MinTimeStep,
		Max:         math.MaxFloat64,
		SliderMin:   0,
		SliderMax:   timeStepSliderMax,
		SpinnerStep: timeStepSpinnerInc,
	})
}
