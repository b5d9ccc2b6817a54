// Package resolve turns a declared Build Configuration Record into its
// concrete form. Every symbolic reference is evaluated against explicitly
// supplied ambient inputs, and the plugin sequence is resolved through the
// plugin registry. Resolution is pure: the same descriptor and inputs always
// produce the same record, apart from the per-invocation identifier.
package resolve
