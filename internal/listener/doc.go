// Package listener manages the simulation listeners attached to a run's
// options.
//
// A listener is named by the qualified Go type name it was registered under
// in a [plugin.Resolver], e.g.
// "github.com/san-kum/simopts/internal/listener/example.CSVSaveListener".
// The options hold only those identifiers; this package turns them into
// something editable and checkable:
//
//   - [Listener]: lifecycle hooks a run calls (start, each step, end)
//   - [Validator]: builds an identifier's listener once and reports a
//     [Verdict] instead of failing or panicking
//   - [Registry]: ordered add/remove view over the options list with a
//     change stream; statuses are validated again on every request
//   - [ValidateSnapshot] and [Registry.Apply]: concurrent batch validation
//     whose results are dropped once the list has changed
//   - [Activate]: resolves a list into live listeners for a run
//
// # Example
//
//	reg := listener.NewRegistry(opts, listener.NewValidator(plugin.Default))
//	reg.Add(example.CSVSaveID)
//	v, _ := reg.Status(0)
//	fmt.Println(v) // Listener instantiated successfully.
//
// # Thread Safety
//
// Registry instances are NOT thread-safe. Mutate and call Apply from one
// goroutine; only ValidateSnapshot fans out to workers.
package listener
