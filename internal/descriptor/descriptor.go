// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/coordinate"
)

// DebugSigningConfig is the signing config every Android build has implicitly.
const DebugSigningConfig = "debug"

// Descriptor is the Build Configuration Record as declared.
type Descriptor struct {
	// Plugins is the ordered plugin sequence. Later plugins may depend on
	// earlier ones having been applied.
	Plugins []PluginRef

	Namespace     string
	ApplicationID string

	CompileSDK Setting[int]
	MinSDK     Setting[int]
	TargetSDK  Setting[int]
	NDKVersion Setting[string]

	VersionCode Setting[int]
	VersionName Setting[string]

	Compile  CompileOptions
	Kotlin   KotlinOptions
	MultiDex bool

	SigningConfigs []SigningConfig
	BuildTypes     []BuildType

	Framework FrameworkBlock

	// Dependencies is the ordered dependency list.
	Dependencies []Dependency

	// Files lists the source files the record was loaded from, in load order.
	Files []string
}

// PluginRef is a plugin identifier as declared.
type PluginRef struct {
	ID    string
	Range hcl.Range
}

// CompileOptions holds the Java compilation settings.
type CompileOptions struct {
	SourceCompatibility   JavaVersion
	TargetCompatibility   JavaVersion
	CoreLibraryDesugaring bool
}

// KotlinOptions holds the Kotlin compilation settings.
type KotlinOptions struct {
	JVMTarget JavaVersion
}

// SigningConfig is one entry of the named signing table.
type SigningConfig struct {
	Name          string
	StoreFile     string
	StorePassword string
	KeyAlias      string
	KeyPassword   string
	Range         hcl.Range
}

// BuildType is a named build variant.
type BuildType struct {
	Name            string
	SigningConfig   string
	Minify          bool
	ShrinkResources bool
	Range           hcl.Range
}

// FrameworkBlock holds the cross-platform framework integration settings.
type FrameworkBlock struct {
	// Source is the path to the framework project root, relative to the
	// Android application module.
	Source string
}

// Dependency is one (scope, coordinate) entry of the dependency list.
type Dependency struct {
	Scope      string
	Coordinate coordinate.Coordinate
	Range      hcl.Range
}

// SigningConfig returns the named signing config. The implicit debug config
// is always found.
func (d *Descriptor) SigningConfig(name string) (SigningConfig, bool) {
	for _, sc := range d.SigningConfigs {
		if sc.Name == name {
			return sc, true
		}
	}
	if name == DebugSigningConfig {
		return SigningConfig{Name: DebugSigningConfig}, true
	}
	return SigningConfig{}, false
}

// BuildType returns the named build type.
func (d *Descriptor) BuildType(name string) (BuildType, bool) {
	for _, bt := range d.BuildTypes {
		if bt.Name == name {
			return bt, true
		}
	}
	return BuildType{}, false
}
