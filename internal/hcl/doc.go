// Package hcl provides the concrete HCL implementation of the descriptor.Loader
// interface. It is responsible for file discovery, parsing, merging fragments
// spread across several files and translating the HCL body into the
// format-agnostic Build Configuration Record.
//
// References to framework values, such as `flutter.minSdkVersion`, are kept
// verbatim. This package never evaluates them.
package hcl
