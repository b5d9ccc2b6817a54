// Package android registers the application packaging plugin.
package android

import "github.com/specialistvlad/droidspec/internal/plugin"

// ID is the canonical identifier of the application packaging plugin.
const ID = "com.android.application"

// Module implements the plugin.Module interface for this package.
type Module struct{}

// Register registers the plugin definition with the registry.
func (m *Module) Register(r *plugin.Registry) {
	r.Register(&plugin.Definition{
		ID:          ID,
		Description: "Builds and packages an Android application.",
	})
}
