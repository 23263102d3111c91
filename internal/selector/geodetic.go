package selector

import (
	"github.com/san-kum/simopts/internal/geodetic"
	"github.com/san-kum/simopts/internal/options"
)

// Geodetic selects the geodetic computation strategy of opts.
func Geodetic(opts *options.Options) *Selector[geodetic.Strategy] {
	return New(
		geodetic.Values(),
		geodetic.Strategy.Description,
		opts.GeodeticComputation,
		opts.SetGeodeticComputation,
	)
}
