package app

import (
	"errors"
	"fmt"
)

// Output formats selected by Config.Emit.
const (
	EmitKotlin = "kts"
	EmitJSON   = "json"
	EmitHCL    = "hcl"
	EmitNone   = "none"
)

// DefaultInitOutput is where -init writes when no output path is given.
const DefaultInitOutput = "build.hcl"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DescriptorPaths []string // .hcl files or directories

	AmbientPath string   // TOML file with framework values
	Overrides   []string // name=value assignments applied last
	Namespace   string

	Emit           string
	OutputPath     string // empty means the app's output writer
	KeepReferences bool
	Strict         bool

	// Init runs the interactive scaffolder instead of the pipeline.
	Init bool

	LogFormat string
	LogLevel  string
	LogFile   string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Init {
		if cfg.OutputPath == "" {
			cfg.OutputPath = DefaultInitOutput
		}
		return &cfg, nil
	}

	if len(cfg.DescriptorPaths) == 0 {
		return nil, errors.New("at least one descriptor path is required")
	}

	switch cfg.Emit {
	case "":
		cfg.Emit = EmitKotlin
	case EmitKotlin, EmitJSON, EmitHCL, EmitNone:
	default:
		return nil, fmt.Errorf("invalid emit format %q: must be one of %s, %s, %s or %s", cfg.Emit, EmitKotlin, EmitJSON, EmitHCL, EmitNone)
	}

	return &cfg, nil
}
