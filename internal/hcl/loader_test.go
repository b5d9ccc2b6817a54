package hcl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/droidspec/internal/coordinate"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytes_FrameworkReferencesKeptVerbatim(t *testing.T) {
	src := `
android {
  namespace   = "com.example.app"
  compile_sdk = flutter.compileSdkVersion

  compile_options {
    core_library_desugaring = true
  }

  default_config {
    application_id = "com.example.app"
    min_sdk        = flutter.minSdkVersion
    target_sdk     = flutter.targetSdkVersion
  }
}
`
	desc, err := NewLoader().LoadBytes(context.Background(), []byte(src), "build.hcl")
	require.NoError(t, err)

	assert.Equal(t, "com.example.app", desc.ApplicationID)
	assert.Equal(t, "flutter.minSdkVersion", desc.MinSDK.Ref)
	assert.Equal(t, "flutter.targetSdkVersion", desc.TargetSDK.Ref)
	assert.Equal(t, "flutter.compileSdkVersion", desc.CompileSDK.Ref)
	assert.True(t, desc.Compile.CoreLibraryDesugaring)
	assert.False(t, desc.VersionCode.Declared())
	assert.Equal(t, []string{"build.hcl"}, desc.Files)
}

func TestLoadBytes_FullDescriptor(t *testing.T) {
	desc, err := NewLoader().LoadBytes(context.Background(), []byte(testutil.WashSyncDescriptor), "build.hcl")
	require.NoError(t, err)

	ids := make([]string, 0, len(desc.Plugins))
	for _, p := range desc.Plugins {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{
		"com.android.application",
		"kotlin-android",
		"dev.flutter.flutter-gradle-plugin",
		"com.google.gms.google-services",
	}, ids)
	assert.Equal(t, 3, desc.Plugins[0].Range.Start.Line)

	assert.Equal(t, "com.example.washsync_app", desc.Namespace)
	assert.Equal(t, "flutter.ndkVersion", desc.NDKVersion.Ref)
	assert.Equal(t, "flutter.versionCode", desc.VersionCode.Ref)
	assert.Equal(t, "flutter.versionName", desc.VersionName.Ref)
	assert.Equal(t, descriptor.Java8, desc.Compile.SourceCompatibility)
	assert.Equal(t, descriptor.Java8, desc.Compile.TargetCompatibility)
	assert.Equal(t, descriptor.Java8, desc.Kotlin.JVMTarget)
	assert.True(t, desc.MultiDex)
	assert.Equal(t, "../..", desc.Framework.Source)

	require.Len(t, desc.BuildTypes, 1)
	assert.Equal(t, "release", desc.BuildTypes[0].Name)
	assert.Equal(t, "debug", desc.BuildTypes[0].SigningConfig)

	require.Len(t, desc.Dependencies, 2)
	assert.Equal(t, "coreLibraryDesugaring", desc.Dependencies[0].Scope)
	assert.Equal(t, coordinate.New("com.android.tools", "desugar_jdk_libs", "2.0.3"), desc.Dependencies[0].Coordinate)
	assert.Equal(t, "implementation", desc.Dependencies[1].Scope)
}

func TestLoadBytes_Literals(t *testing.T) {
	desc, err := NewLoader().LoadBytes(context.Background(), []byte(testutil.LiteralDescriptor), "build.hcl")
	require.NoError(t, err)

	assert.Equal(t, 34, desc.CompileSDK.Literal)
	assert.False(t, desc.CompileSDK.IsRef())
	assert.Equal(t, 24, desc.MinSDK.Literal)
	assert.Equal(t, 12, desc.VersionCode.Literal)
	assert.Equal(t, "3.4.1", desc.VersionName.Literal)
	assert.Equal(t, descriptor.Java17, desc.Compile.SourceCompatibility)

	require.Len(t, desc.SigningConfigs, 1)
	sc := desc.SigningConfigs[0]
	assert.Equal(t, "upload", sc.Name)
	assert.Equal(t, "upload.jks", sc.StoreFile)
	assert.Equal(t, "key-secret", sc.KeyPassword)

	require.Len(t, desc.BuildTypes, 1)
	assert.True(t, desc.BuildTypes[0].Minify)
	assert.True(t, desc.BuildTypes[0].ShrinkResources)
}

func TestLoadBytes_IsIdempotent(t *testing.T) {
	loader := NewLoader()
	first, err := loader.LoadBytes(context.Background(), []byte(testutil.WashSyncDescriptor), "build.hcl")
	require.NoError(t, err)
	second, err := loader.LoadBytes(context.Background(), []byte(testutil.WashSyncDescriptor), "build.hcl")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-parsing produced a different record (-first +second):\n%s", diff)
	}
}

func TestLoad_MergesFragmentsAcrossFiles(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"a_android.hcl": `
plugins = ["com.android.application"]
android {
  namespace   = "com.example.app"
  compile_sdk = 34
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
  }
}
dependency "implementation" "com.example:first:1.0" {}
`,
		"b_deps.hcl": `
dependency "implementation" "com.example:second:2.0" {}
`,
		"notes.txt": "not a descriptor",
	})

	desc, err := NewLoader().Load(context.Background(), root)
	require.NoError(t, err)

	require.Len(t, desc.Dependencies, 2)
	assert.Equal(t, "first", desc.Dependencies[0].Coordinate.Artifact)
	assert.Equal(t, "second", desc.Dependencies[1].Coordinate.Artifact)
	assert.Equal(t, []string{
		filepath.Join(root, "a_android.hcl"),
		filepath.Join(root, "b_deps.hcl"),
	}, desc.Files)
}

func TestLoad_Errors(t *testing.T) {
	const validAndroid = `
android {
  namespace   = "com.example.app"
  compile_sdk = 34
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
  }
}
`
	testCases := []struct {
		name        string
		files       map[string]string
		errContains string
	}{
		{
			name:        "syntax error",
			files:       map[string]string{"build.hcl": `android {`},
			errContains: "failed to parse HCL file",
		},
		{
			name:        "missing android block",
			files:       map[string]string{"build.hcl": `flutter { source = "../.." }`},
			errContains: `Missing "android" block`,
		},
		{
			name:        "android block declared in two files",
			files:       map[string]string{"a.hcl": validAndroid, "b.hcl": validAndroid},
			errContains: `Duplicate "android" block`,
		},
		{
			name: "plugins declared in two files",
			files: map[string]string{
				"a.hcl": validAndroid + `plugins = ["com.android.application"]`,
				"b.hcl": `plugins = ["kotlin-android"]`,
			},
			errContains: "Duplicate argument",
		},
		{
			name:        "invalid coordinate",
			files:       map[string]string{"build.hcl": validAndroid + `dependency "implementation" "not-a-coordinate" {}`},
			errContains: "Invalid dependency coordinate",
		},
		{
			name:        "scope with spaces",
			files:       map[string]string{"build.hcl": validAndroid + `dependency "implementation x" "a:b:1" {}`},
			errContains: "Invalid dependency scope",
		},
		{
			name:        "scope injecting code",
			files:       map[string]string{"build.hcl": validAndroid + `dependency "println(\"hi\"); implementation" "a:b:1" {}`},
			errContains: "Invalid dependency scope",
		},
		{
			name:        "dependency with body",
			files:       map[string]string{"build.hcl": validAndroid + `dependency "implementation" "a:b:1" { version = "2" }`},
			errContains: "Unsupported argument",
		},
		{
			name: "unsupported java version",
			files: map[string]string{"build.hcl": `
android {
  namespace   = "com.example.app"
  compile_sdk = 34
  compile_options { source_compatibility = JavaVersion.VERSION_1_6 }
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
  }
}`},
			errContains: "Invalid Java version",
		},
		{
			name: "missing application id",
			files: map[string]string{"build.hcl": `
android {
  namespace   = "com.example.app"
  compile_sdk = 34
  default_config {
    min_sdk    = 21
    target_sdk = 34
  }
}`},
			errContains: "application_id",
		},
		{
			name: "missing default config",
			files: map[string]string{"build.hcl": `
android {
  namespace   = "com.example.app"
  compile_sdk = 34
}`},
			errContains: `Missing "default_config" block`,
		},
		{
			name: "expression instead of literal",
			files: map[string]string{"build.hcl": `
android {
  namespace   = "com.example.app"
  compile_sdk = flutter.compileSdkVersion + 1
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
  }
}`},
			errContains: "Variables not allowed",
		},
		{
			name: "duplicate build type",
			files: map[string]string{"build.hcl": `
android {
  namespace   = "com.example.app"
  compile_sdk = 34
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
  }
  build_type "release" {}
  build_type "release" {}
}`},
			errContains: "Duplicate build type",
		},
		{
			name:        "empty plugin id",
			files:       map[string]string{"build.hcl": validAndroid + `plugins = ["com.android.application", ""]`},
			errContains: "Empty plugin identifier",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteFiles(t, tc.files)

			_, err := NewLoader().Load(context.Background(), root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_NoFiles(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"readme.md": "# nothing"})

	_, err := NewLoader().Load(context.Background(), root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl descriptor files found")

	_, err = NewLoader().Load(context.Background())
	require.Error(t, err)
}
