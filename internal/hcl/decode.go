// This file contains the helpers that turn single HCL attributes into the
// typed values of the descriptor model.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/hclutil"
)

// decodeSetting decodes an attribute that may either hold a literal or a
// reference to an ambient framework value. References are kept verbatim.
func decodeSetting[T int | string](attr *hcl.Attribute) (descriptor.Setting[T], hcl.Diagnostics) {
	s := descriptor.Setting[T]{Range: attr.Expr.Range()}
	if ref, ok := hclutil.ReferenceText(attr.Expr); ok {
		s.Ref = ref
		return s, nil
	}
	// A nil eval context is used because only literals and bare references
	// are allowed here.
	diags := gohcl.DecodeExpression(attr.Expr, nil, &s.Literal)
	return s, diags
}

// decodeLiteral decodes an attribute that must be a literal value.
func decodeLiteral[T any](attrs hcl.Attributes, name string, target *T) hcl.Diagnostics {
	attr, exists := attrs[name]
	if !exists {
		return nil
	}
	return gohcl.DecodeExpression(attr.Expr, nil, target)
}

// decodeJavaVersion accepts either a string (`"1.8"`) or the Gradle constant
// reference (`JavaVersion.VERSION_1_8`).
func decodeJavaVersion(attrs hcl.Attributes, name string) (descriptor.JavaVersion, hcl.Diagnostics) {
	attr, exists := attrs[name]
	if !exists {
		return "", nil
	}

	raw, isRef := hclutil.ReferenceText(attr.Expr)
	if !isRef {
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &raw); diags.HasErrors() {
			return "", diags
		}
	}

	v, err := descriptor.ParseJavaVersion(raw)
	if err != nil {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid Java version",
			Detail:   fmt.Sprintf("The value of '%s' is not a supported Java version: %s.", name, err),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}
	return v, nil
}

// decodePlugins decodes the ordered `plugins` list, keeping the source range
// of each element when the list is written literally.
func decodePlugins(attr *hcl.Attribute) ([]descriptor.PluginRef, hcl.Diagnostics) {
	var ids []string
	if diags := gohcl.DecodeExpression(attr.Expr, nil, &ids); diags.HasErrors() {
		return nil, diags
	}

	ranges := make([]hcl.Range, len(ids))
	tuple, isTuple := attr.Expr.(*hclsyntax.TupleConsExpr)
	for i := range ids {
		if isTuple && i < len(tuple.Exprs) {
			ranges[i] = tuple.Exprs[i].Range()
		} else {
			ranges[i] = attr.Expr.Range()
		}
	}

	refs := make([]descriptor.PluginRef, 0, len(ids))
	var diags hcl.Diagnostics
	for i, id := range ids {
		if id == "" {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Empty plugin identifier",
				Detail:   "Every entry of 'plugins' must be a non-empty plugin id.",
				Subject:  ranges[i].Ptr(),
			})
			continue
		}
		refs = append(refs, descriptor.PluginRef{ID: id, Range: ranges[i]})
	}
	return refs, diags
}
