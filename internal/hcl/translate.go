// This file contains the logic for translating a merged HCL body into the
// format-agnostic Build Configuration Record.

package hcl

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/coordinate"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/hclutil"
)

// translateRoot decodes the top-level body of a descriptor.
func translateRoot(ctx context.Context, body hcl.Body) (*descriptor.Descriptor, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	var allDiags hcl.Diagnostics

	content, diags := body.Content(rootSchema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	desc := &descriptor.Descriptor{}

	if attr, exists := content.Attributes["plugins"]; exists {
		plugins, pluginDiags := decodePlugins(attr)
		allDiags = append(allDiags, pluginDiags...)
		desc.Plugins = plugins
	}
	logger.Debug("Decoded plugin sequence.", "count", len(desc.Plugins))

	androidBlock, diags := hclutil.FindUniqueBlock(content.Blocks, "android")
	allDiags = append(allDiags, diags...)
	if androidBlock == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing \"android\" block",
			Detail:   "A descriptor must declare exactly one \"android\" block.",
			Subject:  body.MissingItemRange().Ptr(),
		})
	} else {
		allDiags = append(allDiags, translateAndroid(ctx, androidBlock, desc)...)
	}

	frameworkBlock, diags := hclutil.FindUniqueBlock(content.Blocks, "flutter")
	allDiags = append(allDiags, diags...)
	if frameworkBlock != nil {
		frameworkContent, diags := frameworkBlock.Body.Content(frameworkSchema)
		allDiags = append(allDiags, diags...)
		if !diags.HasErrors() {
			allDiags = append(allDiags, decodeLiteral(frameworkContent.Attributes, "source", &desc.Framework.Source)...)
		}
	}

	for _, block := range content.Blocks.OfType("dependency") {
		dep, diags := translateDependency(block)
		allDiags = append(allDiags, diags...)
		if !diags.HasErrors() {
			desc.Dependencies = append(desc.Dependencies, dep)
		}
	}
	logger.Debug("Decoded dependency list.", "count", len(desc.Dependencies))

	if allDiags.HasErrors() {
		return nil, allDiags
	}
	return desc, allDiags
}

// translateAndroid decodes the `android` block into desc.
func translateAndroid(ctx context.Context, block *hcl.Block, desc *descriptor.Descriptor) hcl.Diagnostics {
	logger := ctxlog.FromContext(ctx)
	var allDiags hcl.Diagnostics

	content, diags := block.Body.Content(androidSchema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return allDiags
	}

	allDiags = append(allDiags, decodeLiteral(content.Attributes, "namespace", &desc.Namespace)...)

	if attr, exists := content.Attributes["compile_sdk"]; exists {
		desc.CompileSDK, diags = decodeSetting[int](attr)
		allDiags = append(allDiags, diags...)
	}
	if attr, exists := content.Attributes["ndk_version"]; exists {
		desc.NDKVersion, diags = decodeSetting[string](attr)
		allDiags = append(allDiags, diags...)
	}

	if b, diags := hclutil.FindUniqueBlock(content.Blocks, "compile_options"); diags.HasErrors() {
		allDiags = append(allDiags, diags...)
	} else if b != nil {
		allDiags = append(allDiags, translateCompileOptions(b, &desc.Compile)...)
	}

	if b, diags := hclutil.FindUniqueBlock(content.Blocks, "kotlin_options"); diags.HasErrors() {
		allDiags = append(allDiags, diags...)
	} else if b != nil {
		kotlinContent, diags := b.Body.Content(kotlinOptionsSchema)
		allDiags = append(allDiags, diags...)
		if !diags.HasErrors() {
			desc.Kotlin.JVMTarget, diags = decodeJavaVersion(kotlinContent.Attributes, "jvm_target")
			allDiags = append(allDiags, diags...)
		}
	}

	defaultBlock, diags := hclutil.FindUniqueBlock(content.Blocks, "default_config")
	allDiags = append(allDiags, diags...)
	if defaultBlock == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing \"default_config\" block",
			Detail:   "The \"android\" block must declare a \"default_config\" block with the application id and SDK bounds.",
			Subject:  block.Body.MissingItemRange().Ptr(),
		})
	} else {
		allDiags = append(allDiags, translateDefaultConfig(defaultBlock, desc)...)
	}

	seenSigning := make(map[string]hcl.Range)
	for _, b := range content.Blocks.OfType("signing_config") {
		name := b.Labels[0]
		if first, exists := seenSigning[name]; exists {
			allDiags = append(allDiags, duplicateLabel("signing config", name, first, b.DefRange))
			continue
		}
		seenSigning[name] = b.DefRange

		sc := descriptor.SigningConfig{Name: name, Range: b.DefRange}
		scContent, diags := b.Body.Content(signingConfigSchema)
		allDiags = append(allDiags, diags...)
		if diags.HasErrors() {
			continue
		}
		allDiags = append(allDiags, decodeLiteral(scContent.Attributes, "store_file", &sc.StoreFile)...)
		allDiags = append(allDiags, decodeLiteral(scContent.Attributes, "store_password", &sc.StorePassword)...)
		allDiags = append(allDiags, decodeLiteral(scContent.Attributes, "key_alias", &sc.KeyAlias)...)
		allDiags = append(allDiags, decodeLiteral(scContent.Attributes, "key_password", &sc.KeyPassword)...)
		desc.SigningConfigs = append(desc.SigningConfigs, sc)
	}

	seenTypes := make(map[string]hcl.Range)
	for _, b := range content.Blocks.OfType("build_type") {
		name := b.Labels[0]
		if first, exists := seenTypes[name]; exists {
			allDiags = append(allDiags, duplicateLabel("build type", name, first, b.DefRange))
			continue
		}
		seenTypes[name] = b.DefRange

		bt := descriptor.BuildType{Name: name, Range: b.DefRange}
		btContent, diags := b.Body.Content(buildTypeSchema)
		allDiags = append(allDiags, diags...)
		if diags.HasErrors() {
			continue
		}
		allDiags = append(allDiags, decodeLiteral(btContent.Attributes, "signing_config", &bt.SigningConfig)...)
		allDiags = append(allDiags, decodeLiteral(btContent.Attributes, "minify", &bt.Minify)...)
		allDiags = append(allDiags, decodeLiteral(btContent.Attributes, "shrink_resources", &bt.ShrinkResources)...)
		desc.BuildTypes = append(desc.BuildTypes, bt)
	}

	logger.Debug("Decoded android block.",
		"namespace", desc.Namespace,
		"signing_configs", len(desc.SigningConfigs),
		"build_types", len(desc.BuildTypes),
	)
	return allDiags
}

func translateCompileOptions(block *hcl.Block, opts *descriptor.CompileOptions) hcl.Diagnostics {
	var allDiags hcl.Diagnostics

	content, diags := block.Body.Content(compileOptionsSchema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return allDiags
	}

	allDiags = append(allDiags, decodeLiteral(content.Attributes, "core_library_desugaring", &opts.CoreLibraryDesugaring)...)

	opts.SourceCompatibility, diags = decodeJavaVersion(content.Attributes, "source_compatibility")
	allDiags = append(allDiags, diags...)
	opts.TargetCompatibility, diags = decodeJavaVersion(content.Attributes, "target_compatibility")
	allDiags = append(allDiags, diags...)

	return allDiags
}

func translateDefaultConfig(block *hcl.Block, desc *descriptor.Descriptor) hcl.Diagnostics {
	var allDiags hcl.Diagnostics

	content, diags := block.Body.Content(defaultConfigSchema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return allDiags
	}

	allDiags = append(allDiags, decodeLiteral(content.Attributes, "application_id", &desc.ApplicationID)...)
	allDiags = append(allDiags, decodeLiteral(content.Attributes, "multidex", &desc.MultiDex)...)

	intSettings := []struct {
		name   string
		target *descriptor.Setting[int]
	}{
		{"min_sdk", &desc.MinSDK},
		{"target_sdk", &desc.TargetSDK},
		{"version_code", &desc.VersionCode},
	}
	for _, s := range intSettings {
		if attr, exists := content.Attributes[s.name]; exists {
			*s.target, diags = decodeSetting[int](attr)
			allDiags = append(allDiags, diags...)
		}
	}

	if attr, exists := content.Attributes["version_name"]; exists {
		desc.VersionName, diags = decodeSetting[string](attr)
		allDiags = append(allDiags, diags...)
	}

	return allDiags
}

// scopeName matches a configuration name usable as a Kotlin DSL call.
var scopeName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func translateDependency(block *hcl.Block) (descriptor.Dependency, hcl.Diagnostics) {
	scope, raw := block.Labels[0], block.Labels[1]

	_, diags := block.Body.Content(emptySchema)
	if diags.HasErrors() {
		return descriptor.Dependency{}, diags
	}

	if !scopeName.MatchString(scope) {
		return descriptor.Dependency{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid dependency scope",
			Detail:   fmt.Sprintf("The scope '%s' is not a valid configuration name; it must start with a letter and contain only letters, digits and underscores.", scope),
			Subject:  block.LabelRanges[0].Ptr(),
		}}
	}

	coord, err := coordinate.Parse(raw)
	if err != nil {
		return descriptor.Dependency{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid dependency coordinate",
			Detail:   err.Error(),
			Subject:  block.LabelRanges[1].Ptr(),
		}}
	}

	return descriptor.Dependency{Scope: scope, Coordinate: coord, Range: block.DefRange}, nil
}

func duplicateLabel(kind, name string, first, dup hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s", kind),
		Detail:   fmt.Sprintf("A %s named '%s' was already declared at %s.", kind, name, first.String()),
		Subject:  dup.Ptr(),
	}
}
