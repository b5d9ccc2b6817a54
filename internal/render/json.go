package render

import (
	"encoding/json"
	"io"

	"github.com/specialistvlad/droidspec/internal/descriptor"
)

type jsonDocument struct {
	Plugins       []jsonPlugin        `json:"plugins"`
	Namespace     string              `json:"namespace"`
	ApplicationID string              `json:"application_id"`
	CompileSDK    int                 `json:"compile_sdk"`
	MinSDK        int                 `json:"min_sdk"`
	TargetSDK     int                 `json:"target_sdk"`
	NDKVersion    string              `json:"ndk_version,omitempty"`
	VersionCode   int                 `json:"version_code,omitempty"`
	VersionName   string              `json:"version_name,omitempty"`
	Compile       jsonCompileOptions  `json:"compile_options"`
	JVMTarget     string              `json:"jvm_target,omitempty"`
	MultiDex      bool                `json:"multidex"`
	Signing       []jsonSigningConfig `json:"signing_configs"`
	BuildTypes    []jsonBuildType     `json:"build_types"`
	Framework     *jsonFramework      `json:"flutter,omitempty"`
	Dependencies  []jsonDependency    `json:"dependencies"`
	Sources       []string            `json:"sources,omitempty"`
}

type jsonPlugin struct {
	ID        string `json:"id"`
	Canonical string `json:"canonical"`
}

type jsonCompileOptions struct {
	SourceCompatibility   string `json:"source_compatibility,omitempty"`
	TargetCompatibility   string `json:"target_compatibility,omitempty"`
	CoreLibraryDesugaring bool   `json:"core_library_desugaring"`
}

// Passwords are intentionally left out of the document.
type jsonSigningConfig struct {
	Name      string `json:"name"`
	StoreFile string `json:"store_file,omitempty"`
	KeyAlias  string `json:"key_alias,omitempty"`
}

type jsonBuildType struct {
	Name            string `json:"name"`
	SigningConfig   string `json:"signing_config,omitempty"`
	Minify          bool   `json:"minify"`
	ShrinkResources bool   `json:"shrink_resources"`
}

type jsonFramework struct {
	Source string `json:"source"`
}

type jsonDependency struct {
	Scope      string `json:"scope"`
	Coordinate string `json:"coordinate"`
}

// JSON writes res as an indented JSON document.
func JSON(w io.Writer, res *descriptor.Resolved) error {
	doc := jsonDocument{
		Plugins:       make([]jsonPlugin, 0, len(res.Plugins)),
		Namespace:     res.Namespace,
		ApplicationID: res.ApplicationID,
		CompileSDK:    res.CompileSDK,
		MinSDK:        res.MinSDK,
		TargetSDK:     res.TargetSDK,
		NDKVersion:    res.NDKVersion,
		VersionCode:   res.VersionCode,
		VersionName:   res.VersionName,
		Compile: jsonCompileOptions{
			SourceCompatibility:   res.Compile.SourceCompatibility.String(),
			TargetCompatibility:   res.Compile.TargetCompatibility.String(),
			CoreLibraryDesugaring: res.Compile.CoreLibraryDesugaring,
		},
		JVMTarget:    res.Kotlin.JVMTarget.String(),
		MultiDex:     res.MultiDex,
		Signing:      make([]jsonSigningConfig, 0, len(res.SigningConfigs)),
		BuildTypes:   make([]jsonBuildType, 0, len(res.BuildTypes)),
		Dependencies: make([]jsonDependency, 0, len(res.Dependencies)),
	}
	for _, p := range res.Plugins {
		doc.Plugins = append(doc.Plugins, jsonPlugin(p))
	}
	for _, sc := range res.SigningConfigs {
		doc.Signing = append(doc.Signing, jsonSigningConfig{Name: sc.Name, StoreFile: sc.StoreFile, KeyAlias: sc.KeyAlias})
	}
	for _, bt := range res.BuildTypes {
		doc.BuildTypes = append(doc.BuildTypes, jsonBuildType{
			Name:            bt.Name,
			SigningConfig:   bt.SigningConfig,
			Minify:          bt.Minify,
			ShrinkResources: bt.ShrinkResources,
		})
	}
	if res.Framework.Source != "" {
		doc.Framework = &jsonFramework{Source: res.Framework.Source}
	}
	for _, dep := range res.Dependencies {
		doc.Dependencies = append(doc.Dependencies, jsonDependency{Scope: dep.Scope, Coordinate: dep.Coordinate.String()})
	}
	if res.Source != nil {
		doc.Sources = res.Source.Files
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
