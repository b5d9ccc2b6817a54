// Package validate checks a resolved Build Configuration Record for the
// consistency rules the Android toolchain would otherwise reject late, or
// silently accept. Problems are returned as HCL diagnostics: errors for
// records that cannot build, warnings for records that build but are likely
// wrong.
package validate
