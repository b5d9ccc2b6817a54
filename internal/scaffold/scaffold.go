package scaffold

import (
	"fmt"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/specialistvlad/droidspec/internal/ambient"
	"github.com/specialistvlad/droidspec/internal/coordinate"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/render"
	"github.com/specialistvlad/droidspec/internal/validate"
	"github.com/specialistvlad/droidspec/modules/android"
	"github.com/specialistvlad/droidspec/modules/flutter"
	"github.com/specialistvlad/droidspec/modules/kotlin"
)

// DesugarLibrary is the desugaring artifact added when desugaring is enabled.
const DesugarLibrary = "com.android.tools:desugar_jdk_libs:2.0.3"

// maxAPILevel bounds the accepted SDK answers.
const maxAPILevel = 100

// Answers holds the questionnaire results.
type Answers struct {
	ApplicationID string
	// Framework selects SDK levels and version metadata from the ambient
	// framework values instead of literals.
	Framework bool
	// Namespace is the ambient namespace used when Framework is set.
	Namespace string

	MinSDK     int
	TargetSDK  int
	CompileSDK int

	Java       descriptor.JavaVersion
	Desugaring bool
	MultiDex   bool
}

// Ask runs the questionnaire.
func Ask(p Prompter) (Answers, error) {
	a := Answers{Namespace: ambient.DefaultNamespace}

	id, err := p.Prompt("Application id", "com.example.app", wrapValidator(validate.IsReverseDomain))
	if err != nil {
		return a, fmt.Errorf("application id: %w", err)
	}
	if !validate.IsReverseDomain(id) {
		return a, fmt.Errorf("application id: %w: %q", ErrInvalidInput, id)
	}
	a.ApplicationID = id

	source, err := p.Select("SDK levels and version", []string{"From the Flutter framework", "Literal values"})
	if err != nil {
		return a, fmt.Errorf("sdk source: %w", err)
	}
	a.Framework = source == 0

	if !a.Framework {
		levels := []struct {
			label string
			def   int
			dst   *int
			floor *int
		}{
			{"Minimum SDK", 21, &a.MinSDK, nil},
			{"Target SDK", 34, &a.TargetSDK, &a.MinSDK},
			{"Compile SDK", 34, &a.CompileSDK, &a.TargetSDK},
		}
		for _, l := range levels {
			floor := 1
			if l.floor != nil {
				floor = *l.floor
			}
			check := func(s string) error {
				_, err := parseAPILevel(s, floor)
				return err
			}
			raw, err := p.Prompt(l.label, strconv.Itoa(max(l.def, floor)), check)
			if err != nil {
				return a, fmt.Errorf("%s: %w", l.label, err)
			}
			if *l.dst, err = parseAPILevel(raw, floor); err != nil {
				return a, fmt.Errorf("%s: %w", l.label, err)
			}
		}
	}

	versions := make([]string, len(descriptor.JavaVersions))
	for i, v := range descriptor.JavaVersions {
		versions[i] = v.String()
	}
	i, err := p.Select("Java version", versions)
	if err != nil {
		return a, fmt.Errorf("java version: %w", err)
	}
	a.Java = descriptor.JavaVersions[i]

	if a.Desugaring, err = p.Confirm("Enable core library desugaring"); err != nil {
		return a, fmt.Errorf("desugaring: %w", err)
	}

	if !a.Framework && a.MinSDK < 21 {
		if a.MultiDex, err = p.Confirm("Enable multidex"); err != nil {
			return a, fmt.Errorf("multidex: %w", err)
		}
	}
	return a, nil
}

// parseAPILevel parses an SDK answer that must lie between floor and
// maxAPILevel, so that min <= target <= compile holds across the answers.
func parseAPILevel(s string, floor int) (int, error) {
	if !govalidator.IsInt(s) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !govalidator.InRangeInt(n, floor, maxAPILevel) {
		return 0, fmt.Errorf("%w: %d must be between %d and %d", ErrInvalidInput, n, floor, maxAPILevel)
	}
	return n, nil
}

// Build turns answers into a descriptor.
func Build(a Answers) *descriptor.Descriptor {
	desc := &descriptor.Descriptor{
		Plugins: []descriptor.PluginRef{
			{ID: android.ID},
			{ID: kotlin.ID},
		},
		Namespace:     a.ApplicationID,
		ApplicationID: a.ApplicationID,
		Compile: descriptor.CompileOptions{
			SourceCompatibility:   a.Java,
			TargetCompatibility:   a.Java,
			CoreLibraryDesugaring: a.Desugaring,
		},
		Kotlin:   descriptor.KotlinOptions{JVMTarget: a.Java},
		MultiDex: a.MultiDex,
	}

	if a.Framework {
		ns := a.Namespace
		if ns == "" {
			ns = ambient.DefaultNamespace
		}
		desc.Plugins = append(desc.Plugins, descriptor.PluginRef{ID: flutter.ID})
		desc.CompileSDK = descriptor.RefSetting[int](ns + "." + ambient.CompileSDKVersion)
		desc.NDKVersion = descriptor.RefSetting[string](ns + "." + ambient.NDKVersion)
		desc.MinSDK = descriptor.RefSetting[int](ns + "." + ambient.MinSDKVersion)
		desc.TargetSDK = descriptor.RefSetting[int](ns + "." + ambient.TargetSDKVersion)
		desc.VersionCode = descriptor.RefSetting[int](ns + "." + ambient.VersionCode)
		desc.VersionName = descriptor.RefSetting[string](ns + "." + ambient.VersionName)
		desc.Framework = descriptor.FrameworkBlock{Source: "../.."}
	} else {
		desc.CompileSDK = descriptor.LiteralSetting(a.CompileSDK)
		desc.MinSDK = descriptor.LiteralSetting(a.MinSDK)
		desc.TargetSDK = descriptor.LiteralSetting(a.TargetSDK)
		desc.VersionCode = descriptor.LiteralSetting(1)
		desc.VersionName = descriptor.LiteralSetting("1.0.0")
	}

	if a.Desugaring {
		desc.Dependencies = append(desc.Dependencies, descriptor.Dependency{
			Scope:      validate.DesugaringScope,
			Coordinate: coordinate.MustParse(DesugarLibrary),
		})
	}
	return desc
}

// Generate runs the questionnaire and returns the descriptor text.
func Generate(p Prompter) ([]byte, error) {
	a, err := Ask(p)
	if err != nil {
		return nil, err
	}
	return render.HCL(Build(a)), nil
}
