package render

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/ambient"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	hclloader "github.com/specialistvlad/droidspec/internal/hcl"
	"github.com/specialistvlad/droidspec/internal/plugin"
	"github.com/specialistvlad/droidspec/internal/resolve"
	"github.com/specialistvlad/droidspec/internal/testutil"
	"github.com/specialistvlad/droidspec/modules/android"
	"github.com/specialistvlad/droidspec/modules/flutter"
	"github.com/specialistvlad/droidspec/modules/gms"
	"github.com/specialistvlad/droidspec/modules/kotlin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const washSyncKotlin = `plugins {
    id("com.android.application")
    id("kotlin-android")
    id("dev.flutter.flutter-gradle-plugin")
    id("com.google.gms.google-services")
}

android {
    namespace = "com.example.washsync_app"
    compileSdk = flutter.compileSdkVersion
    ndkVersion = flutter.ndkVersion

    compileOptions {
        isCoreLibraryDesugaringEnabled = true
        sourceCompatibility = JavaVersion.VERSION_1_8
        targetCompatibility = JavaVersion.VERSION_1_8
    }

    kotlinOptions {
        jvmTarget = "1.8"
    }

    defaultConfig {
        applicationId = "com.example.washsync_app"
        minSdk = flutter.minSdkVersion
        targetSdk = flutter.targetSdkVersion
        versionCode = flutter.versionCode
        versionName = flutter.versionName
        multiDexEnabled = true
    }

    buildTypes {
        release {
            signingConfig = signingConfigs.getByName("debug")
        }
    }
}

flutter {
    source = "../.."
}

dependencies {
    coreLibraryDesugaring("com.android.tools:desugar_jdk_libs:2.0.3")
    implementation("org.jetbrains.kotlin:kotlin-stdlib:1.9.10")
}
`

func loadDescriptor(t *testing.T, src string) *descriptor.Descriptor {
	t.Helper()
	desc, err := hclloader.NewLoader().LoadBytes(context.Background(), []byte(src), "build.hcl")
	require.NoError(t, err)
	return desc
}

func resolveDescriptor(t *testing.T, src string) *descriptor.Resolved {
	t.Helper()
	amb := ambient.New("")
	amb.Set(ambient.MinSDKVersion, cty.NumberIntVal(21))
	amb.Set(ambient.TargetSDKVersion, cty.NumberIntVal(34))
	amb.Set(ambient.CompileSDKVersion, cty.NumberIntVal(34))
	amb.Set(ambient.NDKVersion, cty.StringVal("26.1.10909125"))
	amb.Set(ambient.VersionCode, cty.NumberIntVal(7))
	amb.Set(ambient.VersionName, cty.StringVal("1.2.0"))

	registry := plugin.NewWithModules(&android.Module{}, &kotlin.Module{}, &flutter.Module{}, &gms.Module{})
	res, diags := resolve.New(registry).Resolve(context.Background(), loadDescriptor(t, src), amb)
	require.False(t, diags.HasErrors(), diags.Error())
	return res
}

func TestKotlin_KeepReferences(t *testing.T) {
	res := resolveDescriptor(t, testutil.WashSyncDescriptor)

	var buf bytes.Buffer
	require.NoError(t, Kotlin(&buf, res, KotlinOptions{KeepReferences: true}))

	if diff := cmp.Diff(washSyncKotlin, buf.String()); diff != "" {
		t.Errorf("Kotlin output mismatch (-want +got):\n%s", diff)
	}
}

func TestKotlin_ResolvedValues(t *testing.T) {
	res := resolveDescriptor(t, testutil.WashSyncDescriptor)

	var buf bytes.Buffer
	require.NoError(t, Kotlin(&buf, res, KotlinOptions{}))
	out := buf.String()

	assert.Contains(t, out, "    compileSdk = 34\n")
	assert.Contains(t, out, "    ndkVersion = \"26.1.10909125\"\n")
	assert.Contains(t, out, "        minSdk = 21\n")
	assert.Contains(t, out, "        targetSdk = 34\n")
	assert.Contains(t, out, "        versionCode = 7\n")
	assert.Contains(t, out, "        versionName = \"1.2.0\"\n")
	assert.NotContains(t, out, "flutter.")
}

func TestKotlin_SigningConfigsAndCustomBuildTypes(t *testing.T) {
	res := resolveDescriptor(t, testutil.LiteralDescriptor)
	res.BuildTypes = append(res.BuildTypes, descriptor.BuildType{Name: "staging", SigningConfig: "upload"})

	var buf bytes.Buffer
	require.NoError(t, Kotlin(&buf, res, KotlinOptions{}))
	out := buf.String()

	assert.Contains(t, out, `    signingConfigs {
        create("upload") {
            storeFile = file("upload.jks")
            storePassword = "store-secret"
            keyAlias = "upload"
            keyPassword = "key-secret"
        }
    }
`)
	assert.Contains(t, out, `        release {
            signingConfig = signingConfigs.getByName("upload")
            isMinifyEnabled = true
            isShrinkResources = true
        }
        create("staging") {
`)
	assert.Contains(t, out, "        jvmTarget = \"17\"\n")
	assert.Contains(t, out, "        sourceCompatibility = JavaVersion.VERSION_17\n")
	assert.NotContains(t, out, "ndkVersion")
	assert.NotContains(t, out, "flutter {")
}

func TestKotlin_DebugSigningConfigIsLookedUp(t *testing.T) {
	res := resolveDescriptor(t, testutil.LiteralDescriptor)
	res.SigningConfigs = append([]descriptor.SigningConfig{{Name: "debug", StoreFile: "debug.keystore"}}, res.SigningConfigs...)

	var buf bytes.Buffer
	require.NoError(t, Kotlin(&buf, res, KotlinOptions{}))
	out := buf.String()

	assert.Contains(t, out, `    signingConfigs {
        getByName("debug") {
            storeFile = file("debug.keystore")
        }
        create("upload") {
`)
	assert.NotContains(t, out, `create("debug")`)
}

func TestKotlin_IsDeterministic(t *testing.T) {
	res := resolveDescriptor(t, testutil.WashSyncDescriptor)

	var first, second bytes.Buffer
	require.NoError(t, Kotlin(&first, res, KotlinOptions{}))
	require.NoError(t, Kotlin(&second, res, KotlinOptions{}))
	assert.Equal(t, first.String(), second.String())
}

func TestKtString(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "plain", want: `"plain"`},
		{in: `say "hi"`, want: `"say \"hi\""`},
		{in: `C:\keys`, want: `"C:\\keys"`},
		{in: "$HOME/key", want: `"\$HOME/key"`},
		{in: "a\nb", want: `"a\nb"`},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ktString(tc.in))
		})
	}
}

func TestJSON(t *testing.T) {
	res := resolveDescriptor(t, testutil.LiteralDescriptor)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "org.acme.shop", doc["application_id"])
	assert.EqualValues(t, 24, doc["min_sdk"])
	assert.EqualValues(t, 12, doc["version_code"])
	assert.Equal(t, "17", doc["jvm_target"])
	assert.NotContains(t, doc, "flutter")
	assert.NotContains(t, buf.String(), "store-secret")

	plugins, ok := doc["plugins"].([]any)
	require.True(t, ok)
	require.Len(t, plugins, 2)
	assert.Equal(t, map[string]any{"id": "org.jetbrains.kotlin.android", "canonical": "org.jetbrains.kotlin.android"}, plugins[1])

	deps, ok := doc["dependencies"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{map[string]any{"scope": "implementation", "coordinate": "androidx.core:core-ktx:1.12.0"}}, deps)
}

func TestHCL_RoundTrip(t *testing.T) {
	for name, src := range map[string]string{
		"framework references": testutil.WashSyncDescriptor,
		"literals":             testutil.LiteralDescriptor,
	} {
		t.Run(name, func(t *testing.T) {
			original := loadDescriptor(t, src)

			out := HCL(original)
			reloaded := loadDescriptor(t, string(out))

			if diff := cmp.Diff(original, reloaded, cmpopts.IgnoreTypes(hcl.Range{})); diff != "" {
				t.Errorf("descriptor changed after round trip (-want +got):\n%s\n%s", diff, out)
			}
		})
	}
}

func TestHCL_WritesReferencesAsTraversals(t *testing.T) {
	out := string(HCL(loadDescriptor(t, testutil.WashSyncDescriptor)))

	assert.Contains(t, out, "= flutter.minSdkVersion\n")
	assert.Contains(t, out, "= JavaVersion.VERSION_1_8\n")
	assert.NotContains(t, out, `"flutter.minSdkVersion"`)
	assert.Contains(t, out, `dependency "coreLibraryDesugaring" "com.android.tools:desugar_jdk_libs:2.0.3"`)
}
