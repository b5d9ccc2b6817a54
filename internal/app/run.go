package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/render"
	"github.com/specialistvlad/droidspec/internal/resolve"
	"github.com/specialistvlad/droidspec/internal/scaffold"
	"github.com/specialistvlad/droidspec/internal/validate"
)

// ErrStrictWarnings is returned in strict mode when validation produced
// warnings only.
var ErrStrictWarnings = errors.New("validation produced warnings and strict mode is enabled")

// diagWrapWidth is the column width diagnostics are wrapped at.
const diagWrapWidth = 100

// Run executes the main application logic based on the app's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Init {
		return a.runInit(ctx)
	}

	desc, err := a.loadDescriptor(ctx)
	if err != nil {
		return err
	}

	amb, err := a.loadAmbient(ctx)
	if err != nil {
		return err
	}

	res, diags := resolve.New(a.plugins).Resolve(ctx, desc, amb)
	if diags.HasErrors() {
		a.writeDiagnostics(desc, diags)
		return fmt.Errorf("failed to resolve descriptor: %w", diags)
	}

	ctx, logger := ctxlog.With(ctx, "invocation_id", res.InvocationID)

	diags = append(diags, validate.Validate(ctx, res)...)
	a.writeDiagnostics(desc, diags)
	if diags.HasErrors() {
		return fmt.Errorf("descriptor is invalid: %w", diags)
	}
	if a.config.Strict && len(diags) > 0 {
		return ErrStrictWarnings
	}
	logger.Info("Descriptor is valid.", "warnings", len(diags))

	if err := a.emit(ctx, res); err != nil {
		return err
	}

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) emit(ctx context.Context, res *descriptor.Resolved) error {
	logger := ctxlog.FromContext(ctx)
	if a.config.Emit == EmitNone {
		logger.Debug("Output disabled.")
		return nil
	}

	var buf bytes.Buffer
	switch a.config.Emit {
	case EmitKotlin:
		if err := render.Kotlin(&buf, res, render.KotlinOptions{KeepReferences: a.config.KeepReferences}); err != nil {
			return fmt.Errorf("failed to render Kotlin script: %w", err)
		}
	case EmitJSON:
		if err := render.JSON(&buf, res); err != nil {
			return fmt.Errorf("failed to render JSON: %w", err)
		}
	case EmitHCL:
		buf.Write(render.HCL(res.Source))
	default:
		return fmt.Errorf("unsupported emit format %q", a.config.Emit)
	}

	if err := a.writeOutput(buf.Bytes()); err != nil {
		return err
	}
	logger.Info("Output written.", "format", a.config.Emit, "path", a.config.OutputPath, "bytes", buf.Len())
	return nil
}

func (a *App) runInit(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting scaffold.", "output", a.config.OutputPath)

	src, err := scaffold.Generate(a.prompter)
	if err != nil {
		return fmt.Errorf("scaffold aborted: %w", err)
	}
	if err := a.writeOutput(src); err != nil {
		return err
	}

	logger.Info("Descriptor scaffolded.", "path", a.config.OutputPath)
	return nil
}

func (a *App) writeOutput(data []byte) error {
	if a.config.OutputPath == "" {
		_, err := a.outW.Write(data)
		return err
	}
	if err := os.WriteFile(a.config.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writeDiagnostics prints diags with source snippets where available.
func (a *App) writeDiagnostics(desc *descriptor.Descriptor, diags hcl.Diagnostics) {
	if len(diags) == 0 {
		return
	}
	files := make(map[string]*hcl.File)
	for name, data := range readSources(desc) {
		files[name] = &hcl.File{Bytes: data}
	}
	wr := hcl.NewDiagnosticTextWriter(a.diagW, files, diagWrapWidth, false)
	if err := wr.WriteDiagnostics(diags); err != nil {
		a.logger.Warn("Failed to write diagnostics.", "error", err)
	}
}
