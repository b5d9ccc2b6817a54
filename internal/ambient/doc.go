// Package ambient holds the values a descriptor refers to but does not define:
// the SDK bounds and release metadata the enclosing framework provides.
//
// These values are explicit inputs to resolution. They are read from a TOML
// file, optionally seeded with the framework's published defaults, and
// overridden from the command line, then exposed to HCL as a single object
// variable named after the framework namespace (for example `flutter`).
package ambient
