// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package descriptor defines the Build Configuration Record: the format-agnostic
// model of an Android application build descriptor, together with the Loader
// interface concrete formats implement.
//
// # Core Concepts
//
//   - Descriptor: the record exactly as declared. Settings that refer to values
//     owned by the enclosing framework (for example `flutter.minSdkVersion`) are
//     kept verbatim as references and are never looked up here.
//
//   - Setting: a single declared value that is either a literal or a symbolic
//     reference, along with the source range it was declared at.
//
//   - Resolved: the concrete record produced once every reference has been
//     evaluated against explicit ambient inputs and the plugin sequence has
//     been resolved. Renderers and validators consume this form.
//
// A Descriptor is constructed once per build invocation and is never mutated
// after loading. Resolution produces a new value rather than filling in the
// old one, so the same Descriptor can be resolved against different ambient
// inputs.
package descriptor
