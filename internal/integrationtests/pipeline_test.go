package integrationtests

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/droidspec/internal/app"
	"github.com/specialistvlad/droidspec/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipeline_FlutterApplication runs the full pipeline on a Flutter
// application whose SDK bounds come from the framework.
func TestPipeline_FlutterApplication(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"android/app/build.hcl": testutil.WashSyncDescriptor,
		"ambient.toml":          testutil.WashSyncAmbient,
	}

	// --- Act ---
	result := runIntegrationTest(t, files, nil)

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, `    id("com.android.application")
    id("kotlin-android")
    id("dev.flutter.flutter-gradle-plugin")
    id("com.google.gms.google-services")
`, "plugins must keep their declared order")
	assert.Contains(t, result.Output, `    coreLibraryDesugaring("com.android.tools:desugar_jdk_libs:2.0.3")
    implementation("org.jetbrains.kotlin:kotlin-stdlib:1.9.10")
`, "dependencies must keep their declared order")
	assert.Contains(t, result.LogOutput, "Descriptor loaded.")
	assert.Contains(t, result.LogOutput, "Output written.")
}

// TestPipeline_FragmentsAcrossFiles checks that a descriptor split over
// several files behaves like a single file.
func TestPipeline_FragmentsAcrossFiles(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"android/a_plugins.hcl": `plugins = ["com.android.application", "org.jetbrains.kotlin.android"]`,
		"android/b_android.hcl": `
android {
  namespace   = "org.acme.shop"
  compile_sdk = 34
  default_config {
    application_id = "org.acme.shop"
    min_sdk        = 24
    target_sdk     = 34
  }
}
`,
		"android/deps/core.hcl": `dependency "implementation" "androidx.core:core-ktx:1.12.0" {}`,
		"android/deps/test.hcl": `dependency "testImplementation" "junit:junit:4.13.2" {}`,
	}

	// --- Act ---
	result := runIntegrationTest(t, files, func(cfg *app.Config) { cfg.Emit = app.EmitJSON })

	// --- Assert ---
	require.NoError(t, result.Err)

	var doc struct {
		Plugins []struct {
			ID string `json:"id"`
		} `json:"plugins"`
		Dependencies []struct {
			Scope      string `json:"scope"`
			Coordinate string `json:"coordinate"`
		} `json:"dependencies"`
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc))
	require.Len(t, doc.Plugins, 2)
	require.Len(t, doc.Dependencies, 2)
	assert.Equal(t, "androidx.core:core-ktx:1.12.0", doc.Dependencies[0].Coordinate)
	assert.Equal(t, "junit:junit:4.13.2", doc.Dependencies[1].Coordinate)
	assert.Len(t, doc.Sources, 4)
}

// TestPipeline_Rejections covers descriptors the pipeline must refuse before
// producing any output.
func TestPipeline_Rejections(t *testing.T) {
	const android = `
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
		name    string
		files   map[string]string
		summary string
	}{
		{
			name: "flutter plugin before kotlin",
			files: map[string]string{"android/build.hcl": `plugins = ["com.android.application", "dev.flutter.flutter-gradle-plugin", "kotlin-android"]
` + android},
			summary: "Plugin applied too early",
		},
		{
			name:    "alias applied twice",
			files:   map[string]string{"android/build.hcl": `plugins = ["com.android.application", "kotlin-android", "org.jetbrains.kotlin.android"]` + "\n" + android},
			summary: "Duplicate plugin",
		},
		{
			name: "conflicting versions in different files",
			files: map[string]string{
				"android/build.hcl": android,
				"android/a.hcl":     `dependency "implementation" "androidx.core:core-ktx:1.12.0" {}`,
				"android/b.hcl":     `dependency "testImplementation" "androidx.core:core-ktx:1.10.0" {}`,
			},
			summary: "Conflicting dependency versions",
		},
		{
			name: "desugaring without library",
			files: map[string]string{"android/build.hcl": `
android {
  namespace   = "com.example.app"
  compile_sdk = 34
  compile_options {
    core_library_desugaring = true
  }
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
  }
}
`},
			summary: "Missing desugaring library",
		},
		{
			name: "undeclared signing config",
			files: map[string]string{"android/build.hcl": `
android {
  namespace   = "com.example.app"
  compile_sdk = 34
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 34
  }
  build_type "release" {
    signing_config = "upload"
  }
}
`},
			summary: "Unknown signing config",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Act ---
			result := runIntegrationTest(t, tc.files, nil)

			// --- Assert ---
			require.Error(t, result.Err)
			assert.Empty(t, result.Output)
			assert.Contains(t, result.LogOutput, "Error: "+tc.summary)
		})
	}
}

// TestPipeline_DuplicateSingletonBlockAcrossFiles checks that a singleton
// block declared in two fragments is a load error.
func TestPipeline_DuplicateSingletonBlockAcrossFiles(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"android/a.hcl": testutil.LiteralDescriptor,
		"android/b.hcl": `flutter {
  source = "../.."
}
flutter {
  source = "../../.."
}
`,
	}

	// --- Act ---
	result := runIntegrationTest(t, files, nil)

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to load descriptor")
	assert.Contains(t, result.Err.Error(), `Duplicate "flutter" block`)
}
