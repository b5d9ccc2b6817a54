package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/droidspec/internal/ambient"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
)

func (a *App) loadDescriptor(ctx context.Context) (*descriptor.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading descriptor...", "paths", a.config.DescriptorPaths)

	desc, err := a.loader.Load(ctx, a.config.DescriptorPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptor: %w", err)
	}

	logger.Info("Descriptor loaded.", "files", len(desc.Files), "application_id", desc.ApplicationID)
	return desc, nil
}

// loadAmbient builds the framework values in precedence order: built-in
// Flutter defaults, then the ambient file, then the command-line overrides.
func (a *App) loadAmbient(ctx context.Context) (*ambient.Ambient, error) {
	logger := ctxlog.FromContext(ctx)

	amb := ambient.FlutterDefaults()
	if a.config.Namespace != "" {
		amb.Namespace = a.config.Namespace
	}

	if a.config.AmbientPath != "" {
		logger.Debug("Loading ambient file...", "path", a.config.AmbientPath)
		fromFile, err := ambient.LoadFile(ctx, a.config.AmbientPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load ambient inputs: %w", err)
		}
		if a.config.Namespace == "" {
			amb.Namespace = fromFile.Namespace
		}
		amb.Merge(fromFile)
	}

	for _, o := range a.config.Overrides {
		if err := amb.ApplyOverride(o); err != nil {
			return nil, err
		}
	}

	logger.Debug("Ambient inputs ready.", "namespace", amb.Namespace, "names", amb.Names())
	return amb, nil
}

// readSources returns the contents of the descriptor files, keyed by name,
// for diagnostic snippets. Unreadable files are skipped.
func readSources(desc *descriptor.Descriptor) map[string][]byte {
	sources := make(map[string][]byte, len(desc.Files))
	for _, name := range desc.Files {
		if data, err := os.ReadFile(name); err == nil {
			sources[name] = data
		}
	}
	return sources
}
