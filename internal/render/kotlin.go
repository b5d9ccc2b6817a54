package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/droidspec/internal/descriptor"
)

// KotlinOptions controls the Kotlin DSL output.
type KotlinOptions struct {
	// KeepReferences writes framework references verbatim
	// (`minSdk = flutter.minSdkVersion`) instead of their resolved values.
	KeepReferences bool
}

// builtinBuildTypes are created by the Android plugin and addressed by their
// accessor instead of `create(...)`.
var builtinBuildTypes = map[string]bool{"debug": true, "release": true}

// builtinSigningConfigs already exist in the Android plugin and are looked up
// rather than created.
var builtinSigningConfigs = map[string]bool{"debug": true}

// Kotlin writes res as a Gradle Kotlin DSL build script.
func Kotlin(w io.Writer, res *descriptor.Resolved, opts KotlinOptions) error {
	k := &ktsWriter{}
	src := res.Source
	if src == nil || !opts.KeepReferences {
		src = &descriptor.Descriptor{}
	}

	if len(res.Plugins) > 0 {
		k.open("plugins")
		for _, p := range res.Plugins {
			k.line("id(%s)", ktString(p.ID))
		}
		k.close()
		k.blank()
	}

	k.open("android")
	k.line("namespace = %s", ktString(res.Namespace))
	k.line("compileSdk = %s", intOrRef(res.CompileSDK, src.CompileSDK))
	if res.NDKVersion != "" {
		k.line("ndkVersion = %s", stringOrRef(res.NDKVersion, src.NDKVersion))
	}

	if c := res.Compile; c != (descriptor.CompileOptions{}) {
		k.blank()
		k.open("compileOptions")
		if c.CoreLibraryDesugaring {
			k.line("isCoreLibraryDesugaringEnabled = true")
		}
		if c.SourceCompatibility != "" {
			k.line("sourceCompatibility = JavaVersion.%s", c.SourceCompatibility.GradleConstant())
		}
		if c.TargetCompatibility != "" {
			k.line("targetCompatibility = JavaVersion.%s", c.TargetCompatibility.GradleConstant())
		}
		k.close()
	}

	if res.Kotlin.JVMTarget != "" {
		k.blank()
		k.open("kotlinOptions")
		k.line("jvmTarget = %s", ktString(res.Kotlin.JVMTarget.String()))
		k.close()
	}

	k.blank()
	k.open("defaultConfig")
	k.line("applicationId = %s", ktString(res.ApplicationID))
	k.line("minSdk = %s", intOrRef(res.MinSDK, src.MinSDK))
	k.line("targetSdk = %s", intOrRef(res.TargetSDK, src.TargetSDK))
	if res.VersionCode > 0 {
		k.line("versionCode = %s", intOrRef(res.VersionCode, src.VersionCode))
	}
	if res.VersionName != "" {
		k.line("versionName = %s", stringOrRef(res.VersionName, src.VersionName))
	}
	if res.MultiDex {
		k.line("multiDexEnabled = true")
	}
	k.close()

	if len(res.SigningConfigs) > 0 {
		k.blank()
		k.open("signingConfigs")
		for _, sc := range res.SigningConfigs {
			if builtinSigningConfigs[sc.Name] {
				k.open("getByName(%s)", ktString(sc.Name))
			} else {
				k.open("create(%s)", ktString(sc.Name))
			}
			if sc.StoreFile != "" {
				k.line("storeFile = file(%s)", ktString(sc.StoreFile))
			}
			if sc.StorePassword != "" {
				k.line("storePassword = %s", ktString(sc.StorePassword))
			}
			if sc.KeyAlias != "" {
				k.line("keyAlias = %s", ktString(sc.KeyAlias))
			}
			if sc.KeyPassword != "" {
				k.line("keyPassword = %s", ktString(sc.KeyPassword))
			}
			k.close()
		}
		k.close()
	}

	if len(res.BuildTypes) > 0 {
		k.blank()
		k.open("buildTypes")
		for _, bt := range res.BuildTypes {
			if builtinBuildTypes[bt.Name] {
				k.open(bt.Name)
			} else {
				k.open("create(%s)", ktString(bt.Name))
			}
			if bt.SigningConfig != "" {
				k.line("signingConfig = signingConfigs.getByName(%s)", ktString(bt.SigningConfig))
			}
			if bt.Minify {
				k.line("isMinifyEnabled = true")
			}
			if bt.ShrinkResources {
				k.line("isShrinkResources = true")
			}
			k.close()
		}
		k.close()
	}
	k.close()

	if res.Framework.Source != "" {
		k.blank()
		k.open("flutter")
		k.line("source = %s", ktString(res.Framework.Source))
		k.close()
	}

	if len(res.Dependencies) > 0 {
		k.blank()
		k.open("dependencies")
		for _, dep := range res.Dependencies {
			k.line("%s(%s)", dep.Scope, ktString(dep.Coordinate.String()))
		}
		k.close()
	}

	_, err := io.WriteString(w, k.sb.String())
	return err
}

type ktsWriter struct {
	sb    strings.Builder
	depth int
}

func (k *ktsWriter) line(format string, args ...any) {
	k.sb.WriteString(strings.Repeat("    ", k.depth))
	fmt.Fprintf(&k.sb, format, args...)
	k.sb.WriteByte('\n')
}

func (k *ktsWriter) open(format string, args ...any) {
	k.line(format+" {", args...)
	k.depth++
}

func (k *ktsWriter) close() {
	k.depth--
	k.line("}")
}

func (k *ktsWriter) blank() {
	k.sb.WriteByte('\n')
}

var ktEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "\n", `\n`, "\t", `\t`, "\r", `\r`)

// ktString quotes s as a Kotlin string literal.
func ktString(s string) string {
	return `"` + ktEscaper.Replace(s) + `"`
}

func intOrRef(v int, s descriptor.Setting[int]) string {
	if s.IsRef() {
		return s.Ref
	}
	return strconv.Itoa(v)
}

func stringOrRef(v string, s descriptor.Setting[string]) string {
	if s.IsRef() {
		return s.Ref
	}
	return ktString(v)
}
