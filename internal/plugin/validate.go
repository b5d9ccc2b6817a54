package plugin

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/droidspec/internal/ctxlog"
)

// ValidateRegistry checks that every ordering and requirement constraint
// names a registered plugin by its canonical identifier, and that no plugin
// is constrained to come after itself.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, def := range r.Definitions() {
		for _, kind := range []struct {
			name string
			ids  []string
		}{{"after", def.After}, {"requires", def.Requires}} {
			for _, id := range kind.ids {
				if id == def.ID {
					errs = append(errs, fmt.Sprintf("plugin '%s': '%s' constraint references itself", def.ID, kind.name))
					continue
				}
				target, ok := r.definitions[id]
				if !ok {
					if canonical, isAlias := r.aliases[id]; isAlias {
						errs = append(errs, fmt.Sprintf("plugin '%s': '%s' constraint uses alias '%s', use '%s'", def.ID, kind.name, id, canonical))
					} else {
						errs = append(errs, fmt.Sprintf("plugin '%s': '%s' constraint references unknown plugin '%s'", def.ID, kind.name, id))
					}
					continue
				}
				logger.Debug("Plugin constraint verified.", "plugin", def.ID, "kind", kind.name, "target", target.ID)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("plugin registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
