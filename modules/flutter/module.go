// Package flutter registers the cross-platform framework integration plugin.
package flutter

import (
	"github.com/specialistvlad/droidspec/internal/plugin"
	"github.com/specialistvlad/droidspec/modules/android"
	"github.com/specialistvlad/droidspec/modules/kotlin"
)

// ID is the canonical identifier of the Flutter Gradle plugin.
const ID = "dev.flutter.flutter-gradle-plugin"

// Module implements the plugin.Module interface for this package.
type Module struct{}

// Register registers the plugin definition with the registry. The Flutter
// plugin reads configuration the Android and Kotlin plugins create, so it
// must come after both.
func (m *Module) Register(r *plugin.Registry) {
	r.Register(&plugin.Definition{
		ID:          ID,
		After:       []string{android.ID, kotlin.ID},
		Requires:    []string{android.ID},
		Description: "Integrates the Flutter engine and Dart build into the Android build.",
	})
}
