package plugin

import (
	"context"
	"fmt"

	"github.com/agext/levenshtein"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
)

// maxSuggestionDistance bounds the edit distance for "did you mean" hints.
const maxSuggestionDistance = 4

// ResolvedPlugin is one entry of a resolved plugin sequence.
type ResolvedPlugin struct {
	Ref        descriptor.PluginRef
	Definition *Definition
	// Position is the zero-based index in the declared sequence.
	Position int
}

// Resolve maps the declared plugin sequence onto registered definitions and
// checks the ordering and requirement constraints. The returned slice keeps
// the declared order.
func (r *Registry) Resolve(ctx context.Context, refs []descriptor.PluginRef) ([]ResolvedPlugin, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving plugin sequence.", "count", len(refs))

	var diags hcl.Diagnostics
	resolved := make([]ResolvedPlugin, 0, len(refs))
	positions := make(map[string]int, len(refs))

	for i, ref := range refs {
		def, ok := r.Lookup(ref.ID)
		if !ok {
			detail := fmt.Sprintf("The plugin '%s' is not known.", ref.ID)
			if suggestion := r.suggest(ref.ID); suggestion != "" {
				detail += fmt.Sprintf(" Did you mean '%s'?", suggestion)
			}
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown plugin",
				Detail:   detail,
				Subject:  ref.Range.Ptr(),
			})
			continue
		}

		if first, seen := positions[def.ID]; seen {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate plugin",
				Detail:   fmt.Sprintf("The plugin '%s' is already applied as '%s'.", ref.ID, refs[first].ID),
				Subject:  ref.Range.Ptr(),
			})
			continue
		}
		positions[def.ID] = i
		resolved = append(resolved, ResolvedPlugin{Ref: ref, Definition: def, Position: i})
	}

	for _, rp := range resolved {
		for _, dep := range rp.Definition.After {
			pos, present := positions[dep]
			if present && pos > rp.Position {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Plugin applied too early",
					Detail:   fmt.Sprintf("The plugin '%s' must be applied after '%s'.", rp.Ref.ID, refs[pos].ID),
					Subject:  rp.Ref.Range.Ptr(),
				})
			}
		}
		for _, dep := range rp.Definition.Requires {
			if _, present := positions[dep]; !present {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Missing required plugin",
					Detail:   fmt.Sprintf("The plugin '%s' requires '%s' to be applied as well.", rp.Ref.ID, dep),
					Subject:  rp.Ref.Range.Ptr(),
				})
			}
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	logger.Debug("Plugin sequence resolved.", "count", len(resolved))
	return resolved, diags
}

// suggest returns the closest registered identifier, or "" when nothing is
// close enough.
func (r *Registry) suggest(id string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, candidate := range r.identifiers() {
		if d := levenshtein.Distance(id, candidate, nil); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
