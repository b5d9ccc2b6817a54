// Package plugin resolves the ordered plugin sequence of a descriptor.
//
// The Registry stores the definitions of every plugin the tool knows about:
// its canonical identifier, the aliases it may be written as, which plugins
// must be applied before it and which plugins it cannot work without.
// Definitions are contributed by Modules at startup, then the registry is
// validated and becomes read-only.
//
// Resolution turns the declared identifiers into definitions and rejects
// sequences an external build tool would fail on, such as applying the
// framework integration plugin before the Android plugin.
package plugin
