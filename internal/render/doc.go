// Package render serializes Build Configuration Records. Kotlin produces the
// Gradle Kotlin DSL build script consumed by the Android toolchain, JSON a
// machine-readable document, and HCL the canonical descriptor text.
//
// Every renderer is deterministic: the same record always yields the same
// bytes.
package render
