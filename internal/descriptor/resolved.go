// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

// AppliedPlugin is a plugin of the resolved sequence.
type AppliedPlugin struct {
	// ID is the identifier as written in the descriptor.
	ID string
	// Canonical is the registry's primary identifier for the plugin.
	Canonical string
}

// Resolved is the concrete Build Configuration Record handed to renderers.
type Resolved struct {
	InvocationID string

	Plugins []AppliedPlugin

	Namespace     string
	ApplicationID string

	CompileSDK int
	MinSDK     int
	TargetSDK  int
	NDKVersion string

	VersionCode int
	VersionName string

	Compile  CompileOptions
	Kotlin   KotlinOptions
	MultiDex bool

	SigningConfigs []SigningConfig
	BuildTypes     []BuildType

	Framework FrameworkBlock

	Dependencies []Dependency

	// Source is the descriptor this record was resolved from.
	Source *Descriptor
}

// DependenciesInScope returns the dependencies declared under scope, in order.
func (r *Resolved) DependenciesInScope(scope string) []Dependency {
	var out []Dependency
	for _, dep := range r.Dependencies {
		if dep.Scope == scope {
			out = append(out, dep)
		}
	}
	return out
}
