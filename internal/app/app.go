package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/plugin"
	"github.com/specialistvlad/droidspec/internal/scaffold"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer // rendered output
	diagW     io.Writer // human-readable diagnostics
	logger    *slog.Logger
	logCloser io.Closer
	plugins   *plugin.Registry
	loader    descriptor.Loader
	prompter  scaffold.Prompter
	config    *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and plugin
// registry. Rendered output goes to outW, logs and diagnostics to errW.
func NewApp(outW, errW io.Writer, cfg *Config, loader descriptor.Loader, modules ...plugin.Module) *App {
	logger, closer := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := plugin.NewWithModules(modules...)
	logger.Debug("All plugin modules registered.", "count", len(modules))

	// An inconsistent registry is a programmer error, so we panic.
	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:      outW,
		diagW:     errW,
		logger:    logger,
		logCloser: closer,
		plugins:   reg,
		loader:    loader,
		prompter:  scaffold.NewTerminalPrompter(nil, nil),
		config:    cfg,
	}
}

// Registry returns the application's plugin registry. This is primarily for
// testing.
func (a *App) Registry() *plugin.Registry {
	return a.plugins
}

// UsePrompter replaces the terminal prompter used by the scaffolder.
func (a *App) UsePrompter(p scaffold.Prompter) {
	a.prompter = p
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
