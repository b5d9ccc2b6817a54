// Package kotlin registers the Kotlin language-support plugin.
package kotlin

import (
	"github.com/specialistvlad/droidspec/internal/plugin"
	"github.com/specialistvlad/droidspec/modules/android"
)

// ID is the canonical identifier of the Kotlin Android plugin.
const ID = "org.jetbrains.kotlin.android"

// Module implements the plugin.Module interface for this package.
type Module struct{}

// Register registers the plugin definition with the registry.
func (m *Module) Register(r *plugin.Registry) {
	r.Register(&plugin.Definition{
		ID:          ID,
		Aliases:     []string{"kotlin-android"},
		After:       []string{android.ID},
		Requires:    []string{android.ID},
		Description: "Compiles Kotlin sources for Android targets.",
	})
}
