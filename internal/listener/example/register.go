// Package example provides the built-in simulation listeners. Importing it
// registers them in plugin.Default under their qualified type names.
package example

import "github.com/san-kum/simopts/internal/plugin"

var (
	CSVSaveID    = plugin.QualifiedName[CSVSaveListener]()
	PrintID      = plugin.QualifiedName[PrintListener]()
	StopAtTimeID = plugin.QualifiedName[StopAtTimeListener]()
)

func init() {
	Register(plugin.Default)
}

// Register adds the built-in listeners to r.
func Register(r *plugin.Registry) {
	plugin.MustRegisterType[CSVSaveListener](r)
	plugin.MustRegisterType[PrintListener](r)
	plugin.MustRegisterType[StopAtTimeListener](r)
}
