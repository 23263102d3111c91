package options

// Simulation owns the options of one run.
type Simulation struct {
	Name    string
	options *Options
}

func NewSimulation(name string) *Simulation {
	return &Simulation{Name: name, options: New()}
}

// WithOptions wraps existing options, for example ones loaded from disk.
func WithOptions(name string, opts *Options) *Simulation {
	if opts == nil {
		opts = New()
	}
	return &Simulation{Name: name, options: opts}
}

// Options returns the live options; callers share the same instance.
func (s *Simulation) Options() *Options { return s.options }
