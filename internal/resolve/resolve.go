package resolve

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/ambient"
	"github.com/specialistvlad/droidspec/internal/ctxlog"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/hclutil"
	"github.com/specialistvlad/droidspec/internal/plugin"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Resolver resolves descriptors against a plugin registry.
type Resolver struct {
	plugins *plugin.Registry
	newID   func() string
}

// New creates a Resolver backed by the given plugin registry.
func New(plugins *plugin.Registry) *Resolver {
	return &Resolver{plugins: plugins, newID: uuid.NewString}
}

// Resolve evaluates every reference of desc against amb and resolves the
// plugin sequence. It returns nil and the diagnostics when any error-level
// diagnostic was produced.
func (r *Resolver) Resolve(ctx context.Context, desc *descriptor.Descriptor, amb *ambient.Ambient) (*descriptor.Resolved, hcl.Diagnostics) {
	invocationID := r.newID()
	ctx, logger := ctxlog.With(ctx, "invocation_id", invocationID)
	logger.Debug("Resolving descriptor.", "application_id", desc.ApplicationID, "ambient_namespace", amb.Namespace)

	var allDiags hcl.Diagnostics
	evalCtx := amb.EvalContext()

	res := &descriptor.Resolved{
		InvocationID:   invocationID,
		Namespace:      desc.Namespace,
		ApplicationID:  desc.ApplicationID,
		Compile:        desc.Compile,
		Kotlin:         desc.Kotlin,
		MultiDex:       desc.MultiDex,
		SigningConfigs: desc.SigningConfigs,
		BuildTypes:     desc.BuildTypes,
		Framework:      desc.Framework,
		Dependencies:   desc.Dependencies,
		Source:         desc,
	}

	plugins, diags := r.plugins.Resolve(ctx, desc.Plugins)
	allDiags = append(allDiags, diags...)
	for _, p := range plugins {
		res.Plugins = append(res.Plugins, descriptor.AppliedPlugin{ID: p.Ref.ID, Canonical: p.Definition.ID})
	}

	var d hcl.Diagnostics
	res.CompileSDK, d = resolveSetting(desc.CompileSDK, "compile_sdk", evalCtx)
	allDiags = append(allDiags, d...)
	res.MinSDK, d = resolveSetting(desc.MinSDK, "min_sdk", evalCtx)
	allDiags = append(allDiags, d...)
	res.TargetSDK, d = resolveSetting(desc.TargetSDK, "target_sdk", evalCtx)
	allDiags = append(allDiags, d...)
	res.NDKVersion, d = resolveSetting(desc.NDKVersion, "ndk_version", evalCtx)
	allDiags = append(allDiags, d...)
	res.VersionCode, d = resolveSetting(desc.VersionCode, "version_code", evalCtx)
	allDiags = append(allDiags, d...)
	res.VersionName, d = resolveSetting(desc.VersionName, "version_name", evalCtx)
	allDiags = append(allDiags, d...)

	if allDiags.HasErrors() {
		logger.Debug("Descriptor resolution failed.", "diagnostics", len(allDiags))
		return nil, allDiags
	}

	logger.Debug("Descriptor resolved.",
		"min_sdk", res.MinSDK,
		"target_sdk", res.TargetSDK,
		"compile_sdk", res.CompileSDK,
		"plugins", len(res.Plugins),
	)
	return res, allDiags
}

// resolveSetting returns the literal of s, or evaluates its reference and
// converts the result to T.
func resolveSetting[T int | string](s descriptor.Setting[T], name string, evalCtx *hcl.EvalContext) (T, hcl.Diagnostics) {
	var out T
	if !s.IsRef() {
		return s.Literal, nil
	}

	subject := s.Range.Ptr()
	if s.Range == (hcl.Range{}) {
		subject = nil
	}
	fail := func(detail string) (T, hcl.Diagnostics) {
		return out, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unresolved reference",
			Detail:   fmt.Sprintf("The reference '%s' used by '%s' %s.", s.Ref, name, detail),
			Subject:  subject,
		}}
	}

	traversal, err := hclutil.ParseReference(s.Ref)
	if err != nil {
		return fail(fmt.Sprintf("is not a valid reference: %s", err))
	}

	val, diags := traversal.TraverseAbs(evalCtx)
	if diags.HasErrors() {
		return fail(fmt.Sprintf("could not be resolved against the ambient inputs (%s)", diags[0].Detail))
	}
	if val.IsNull() || !val.IsKnown() {
		return fail("resolved to a null value")
	}

	ty, err := gocty.ImpliedType(out)
	if err != nil {
		return fail(err.Error())
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fail(fmt.Sprintf("resolved to %s, which is not a valid %s", val.Type().FriendlyName(), ty.FriendlyName()))
	}
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return fail(fmt.Sprintf("could not be converted: %s", err))
	}
	return out, nil
}
