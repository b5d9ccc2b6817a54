// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"fmt"
	"strings"
)

// JavaVersion is a source or bytecode compatibility level.
type JavaVersion string

const (
	Java8  JavaVersion = "1.8"
	Java11 JavaVersion = "11"
	Java17 JavaVersion = "17"
	Java21 JavaVersion = "21"
)

// JavaVersions lists every supported level in ascending order.
var JavaVersions = []JavaVersion{Java8, Java11, Java17, Java21}

// ParseJavaVersion accepts the plain tag (`1.8`, `8`, `17`) or the Gradle
// constant name (`VERSION_1_8`, `VERSION_17`).
func ParseJavaVersion(raw string) (JavaVersion, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "JavaVersion.")
	if rest, ok := strings.CutPrefix(s, "VERSION_"); ok {
		s = strings.ReplaceAll(rest, "_", ".")
	}
	if s == "8" {
		s = string(Java8)
	}
	for _, v := range JavaVersions {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unsupported Java version %q (supported: 1.8, 11, 17, 21)", raw)
}

// GradleConstant returns the name of the matching `JavaVersion` constant.
func (v JavaVersion) GradleConstant() string {
	return "VERSION_" + strings.ReplaceAll(string(v), ".", "_")
}

// String implements fmt.Stringer.
func (v JavaVersion) String() string {
	return string(v)
}
