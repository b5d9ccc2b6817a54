package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, e.g. `flutter.minSdkVersion`.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// ReferenceText returns the canonical text of expr when it is a bare
// reference such as `flutter.versionCode`, and false for anything else.
func ReferenceText(expr hcl.Expression) (string, bool) {
	if expr == nil {
		return "", false
	}
	if _, ok := expr.(*hclsyntax.ScopeTraversalExpr); !ok {
		return "", false
	}
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return "", false
	}
	return TraversalKey(traversal), true
}

// ParseReference parses reference text produced by ReferenceText back into
// an absolute traversal.
func ParseReference(ref string) (hcl.Traversal, error) {
	traversal, diags := hclsyntax.ParseTraversalAbs([]byte(ref), "<reference>", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid reference %q: %w", ref, diags)
	}
	return traversal, nil
}
