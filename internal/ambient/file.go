package ambient

import (
	"context"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
)

// fileSchema is the layout of an ambient TOML file.
type fileSchema struct {
	Namespace string         `toml:"namespace"`
	Values    map[string]any `toml:"values"`
}

// LoadFile reads an ambient TOML file. Keys outside the schema are an error;
// value names the framework is not known to provide are logged.
func LoadFile(ctx context.Context, path string) (*Ambient, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading ambient values.", "path", path)

	var schema fileSchema
	md, err := toml.DecodeFile(path, &schema)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ambient file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("ambient file %s has unsupported keys: %v", path, undecoded)
	}

	a := New(schema.Namespace)
	for name, raw := range schema.Values {
		if err := a.SetGo(name, raw); err != nil {
			return nil, fmt.Errorf("ambient file %s: %w", path, err)
		}
		if !slices.Contains(KnownNames, name) {
			logger.Warn("Ambient value is not one the framework provides.", "name", name, "path", path)
		}
	}

	logger.Debug("Ambient values loaded.", "namespace", a.Namespace, "names", a.Names())
	return a, nil
}
