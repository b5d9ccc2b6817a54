// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Setting is a declared value that is either a literal or a symbolic
// reference to a value supplied by the enclosing framework.
type Setting[T int | string] struct {
	// Literal holds the value when the descriptor declares it directly.
	Literal T
	// Ref holds the verbatim reference text, e.g. `flutter.minSdkVersion`.
	// A non-empty Ref takes precedence over Literal.
	Ref string
	// Range is where the setting was declared. The zero Range means the
	// setting was omitted.
	Range hcl.Range
}

// LiteralSetting creates a setting holding a literal value.
func LiteralSetting[T int | string](v T) Setting[T] {
	return Setting[T]{Literal: v}
}

// RefSetting creates a setting holding a symbolic reference.
func RefSetting[T int | string](ref string) Setting[T] {
	return Setting[T]{Ref: ref}
}

// IsRef reports whether the setting is a symbolic reference.
func (s Setting[T]) IsRef() bool {
	return s.Ref != ""
}

// Declared reports whether the setting appeared in the descriptor.
func (s Setting[T]) Declared() bool {
	var zero T
	return s.Ref != "" || s.Literal != zero || s.Range != (hcl.Range{})
}

// String renders the setting the way it was declared.
func (s Setting[T]) String() string {
	if s.IsRef() {
		return s.Ref
	}
	return fmt.Sprint(s.Literal)
}
