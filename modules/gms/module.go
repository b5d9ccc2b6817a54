// Package gms registers the cloud-services integration plugin.
package gms

import (
	"github.com/specialistvlad/droidspec/internal/plugin"
	"github.com/specialistvlad/droidspec/modules/android"
)

// ID is the canonical identifier of the Google services plugin.
const ID = "com.google.gms.google-services"

// Module implements the plugin.Module interface for this package.
type Module struct{}

// Register registers the plugin definition with the registry.
func (m *Module) Register(r *plugin.Registry) {
	r.Register(&plugin.Definition{
		ID:          ID,
		After:       []string{android.ID},
		Requires:    []string{android.ID},
		Description: "Processes google-services.json into Android resources.",
	})
}
