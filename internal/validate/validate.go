package validate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/modules/android"
)

// DesugaringScope is the dependency scope of the core library desugaring
// artifact.
const DesugaringScope = "coreLibraryDesugaring"

// KnownScopes are the dependency configurations an Android application
// module understands without further plugins.
var KnownScopes = []string{
	"implementation",
	"api",
	"compileOnly",
	"runtimeOnly",
	"testImplementation",
	"androidTestImplementation",
	"debugImplementation",
	"releaseImplementation",
	"kapt",
	"annotationProcessor",
	DesugaringScope,
}

// multiDexNativeSDK is the first API level with native multidex support.
const multiDexNativeSDK = 21

var javaSegment = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

type check func(res *descriptor.Resolved) hcl.Diagnostics

var checks = []check{
	checkApplicationPlugin,
	checkIdentifiers,
	checkSDKBounds,
	checkVersion,
	checkDependencies,
	checkSigning,
	checkDesugaring,
	checkJVMTarget,
	checkMultiDex,
}

// Validate runs every check against res and returns all diagnostics found.
func Validate(ctx context.Context, res *descriptor.Resolved) hcl.Diagnostics {
	logger := ctxlog.FromContext(ctx)

	var diags hcl.Diagnostics
	for _, c := range checks {
		diags = append(diags, c(res)...)
	}

	errs, warns := count(diags)
	logger.Debug("Validation finished.", "errors", errs, "warnings", warns)
	return diags
}

func count(diags hcl.Diagnostics) (errs, warns int) {
	for _, d := range diags {
		switch d.Severity {
		case hcl.DiagError:
			errs++
		case hcl.DiagWarning:
			warns++
		}
	}
	return errs, warns
}

// checkApplicationPlugin warns when nothing applied provides the android
// block the descriptor configures.
func checkApplicationPlugin(res *descriptor.Resolved) hcl.Diagnostics {
	for _, p := range res.Plugins {
		if p.Canonical == android.ID {
			return nil
		}
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagWarning,
		Summary:  "Missing application plugin",
		Detail:   fmt.Sprintf("The plugin '%s' is not applied, so nothing provides the android block.", android.ID),
	}}
}

// IsReverseDomain reports whether s is a valid Android package name: at least
// two dot-separated segments, each a Java identifier, forming a DNS name.
func IsReverseDomain(s string) bool {
	segments := strings.Split(s, ".")
	if len(segments) < 2 {
		return false
	}
	for _, seg := range segments {
		if !javaSegment.MatchString(seg) {
			return false
		}
	}
	return govalidator.IsDNSName(s)
}

func checkIdentifiers(res *descriptor.Resolved) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, id := range []struct{ name, value string }{
		{"namespace", res.Namespace},
		{"application_id", res.ApplicationID},
	} {
		if id.value == "" {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing identifier",
				Detail:   fmt.Sprintf("The '%s' must not be empty.", id.name),
			})
			continue
		}
		if !IsReverseDomain(id.value) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid identifier",
				Detail:   fmt.Sprintf("The %s '%s' is not a valid reverse-domain name, for example 'com.example.app'.", id.name, id.value),
			})
		}
	}
	return diags
}

func checkSDKBounds(res *descriptor.Resolved) hcl.Diagnostics {
	src := sourceOf(res)
	var diags hcl.Diagnostics

	levels := []struct {
		name  string
		value int
		rng   hcl.Range
	}{
		{"min_sdk", res.MinSDK, src.MinSDK.Range},
		{"target_sdk", res.TargetSDK, src.TargetSDK.Range},
		{"compile_sdk", res.CompileSDK, src.CompileSDK.Range},
	}
	for _, l := range levels {
		if l.value <= 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid SDK level",
				Detail:   fmt.Sprintf("The '%s' must be a positive API level, got %d.", l.name, l.value),
				Subject:  subject(l.rng),
			})
		}
	}
	if diags.HasErrors() {
		return diags
	}

	if res.MinSDK > res.TargetSDK {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Inconsistent SDK levels",
			Detail:   fmt.Sprintf("The min_sdk (%d) must not exceed the target_sdk (%d).", res.MinSDK, res.TargetSDK),
			Subject:  subject(src.MinSDK.Range),
		})
	}
	if res.TargetSDK > res.CompileSDK {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Inconsistent SDK levels",
			Detail:   fmt.Sprintf("The target_sdk (%d) must not exceed the compile_sdk (%d).", res.TargetSDK, res.CompileSDK),
			Subject:  subject(src.TargetSDK.Range),
		})
	}
	return diags
}

func checkVersion(res *descriptor.Resolved) hcl.Diagnostics {
	src := sourceOf(res)
	var diags hcl.Diagnostics

	if src.VersionCode.Declared() && res.VersionCode <= 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid version code",
			Detail:   fmt.Sprintf("The version_code must be a positive integer, got %d.", res.VersionCode),
			Subject:  subject(src.VersionCode.Range),
		})
	}
	if src.VersionName.Declared() && strings.TrimSpace(res.VersionName) == "" {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid version name",
			Detail:   "The version_name must not be empty.",
			Subject:  subject(src.VersionName.Range),
		})
	}
	return diags
}

func checkDependencies(res *descriptor.Resolved) hcl.Diagnostics {
	var diags hcl.Diagnostics
	byKey := make(map[string]descriptor.Dependency, len(res.Dependencies))
	byCoordinate := make(map[string]descriptor.Dependency, len(res.Dependencies))

	for _, dep := range res.Dependencies {
		if !isKnownScope(dep.Scope) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagWarning,
				Summary:  "Unknown dependency scope",
				Detail:   fmt.Sprintf("The scope '%s' is not a standard Android configuration; it must be created by a plugin.", dep.Scope),
				Subject:  subject(dep.Range),
			})
		}

		if first, exists := byCoordinate[dep.Coordinate.String()]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagWarning,
				Summary:  "Duplicate dependency",
				Detail:   fmt.Sprintf("The dependency '%s' is already declared at %s.", dep.Coordinate, first.Range),
				Subject:  subject(dep.Range),
			})
			continue
		}
		byCoordinate[dep.Coordinate.String()] = dep

		key := dep.Coordinate.Key()
		first, exists := byKey[key]
		if !exists {
			byKey[key] = dep
			continue
		}
		if first.Coordinate.ConflictsWith(dep.Coordinate) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Conflicting dependency versions",
				Detail: fmt.Sprintf("The artifact '%s' is declared as '%s' here and '%s' at %s.",
					key, dep.Coordinate, first.Coordinate, first.Range),
				Subject: subject(dep.Range),
			})
		}
	}
	return diags
}

func isKnownScope(scope string) bool {
	for _, s := range KnownScopes {
		if s == scope {
			return true
		}
	}
	return false
}

func checkSigning(res *descriptor.Resolved) hcl.Diagnostics {
	src := sourceOf(res)
	var diags hcl.Diagnostics

	for _, bt := range res.BuildTypes {
		if bt.SigningConfig == "" {
			continue
		}
		if _, ok := src.SigningConfig(bt.SigningConfig); !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown signing config",
				Detail:   fmt.Sprintf("The build type '%s' refers to the signing config '%s', which is not declared.", bt.Name, bt.SigningConfig),
				Subject:  subject(bt.Range),
			})
			continue
		}
		if bt.Name == "release" && bt.SigningConfig == descriptor.DebugSigningConfig {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagWarning,
				Summary:  "Release build signed with debug key",
				Detail:   "The release build type uses the debug signing config. Such builds cannot be published; declare a dedicated signing_config.",
				Subject:  subject(bt.Range),
			})
		}
	}
	return diags
}

func checkDesugaring(res *descriptor.Resolved) hcl.Diagnostics {
	deps := res.DependenciesInScope(DesugaringScope)
	enabled := res.Compile.CoreLibraryDesugaring

	switch {
	case enabled && len(deps) == 0:
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing desugaring library",
			Detail:   fmt.Sprintf("Core library desugaring is enabled, but no '%s' dependency is declared.", DesugaringScope),
		}}
	case !enabled && len(deps) > 0:
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Desugaring library without desugaring",
			Detail:   fmt.Sprintf("A '%s' dependency is declared, but core_library_desugaring is not enabled.", DesugaringScope),
			Subject:  subject(deps[0].Range),
		}}
	}
	return nil
}

func checkJVMTarget(res *descriptor.Resolved) hcl.Diagnostics {
	target, jvm := res.Compile.TargetCompatibility, res.Kotlin.JVMTarget
	if target == "" || jvm == "" || target == jvm {
		return nil
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagWarning,
		Summary:  "Inconsistent JVM target",
		Detail:   fmt.Sprintf("The Kotlin jvm_target (%s) differs from the Java target_compatibility (%s).", jvm, target),
	}}
}

func checkMultiDex(res *descriptor.Resolved) hcl.Diagnostics {
	if !res.MultiDex || res.MinSDK < multiDexNativeSDK {
		return nil
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagWarning,
		Summary:  "Redundant multidex",
		Detail:   fmt.Sprintf("Multidex is native from API %d; enabling it with min_sdk %d has no effect.", multiDexNativeSDK, res.MinSDK),
	}}
}

func sourceOf(res *descriptor.Resolved) *descriptor.Descriptor {
	if res.Source == nil {
		return &descriptor.Descriptor{}
	}
	return res.Source
}

func subject(r hcl.Range) *hcl.Range {
	if r == (hcl.Range{}) {
		return nil
	}
	return r.Ptr()
}
