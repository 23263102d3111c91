// Package plugin resolves string identifiers to constructible capabilities.
//
// A Registry maps identifiers to zero-argument factories. Identifiers are by
// convention the qualified Go type name ("<import path>.<TypeName>"), which
// RegisterType derives through reflection, so an identifier reads like a
// fully-qualified type name in the host program.
//
// Resolution never panics: unknown identifiers, factory errors and factory
// panics all come back as errors wrapping ErrUnknown or ErrConstruct.
package plugin
