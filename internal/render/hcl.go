package render

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/droidspec/internal/descriptor"
	"github.com/specialistvlad/droidspec/internal/hclutil"
	"github.com/zclconf/go-cty/cty"
)

// HCL returns the canonical descriptor text for desc. References are written
// back as traversals, so loading the output yields an equivalent descriptor.
func HCL(desc *descriptor.Descriptor) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	if len(desc.Plugins) > 0 {
		ids := make([]cty.Value, 0, len(desc.Plugins))
		for _, p := range desc.Plugins {
			ids = append(ids, cty.StringVal(p.ID))
		}
		root.SetAttributeValue("plugins", cty.ListVal(ids))
		root.AppendNewline()
	}

	android := root.AppendNewBlock("android", nil).Body()
	android.SetAttributeValue("namespace", cty.StringVal(desc.Namespace))
	setInt(android, "compile_sdk", desc.CompileSDK)
	if desc.NDKVersion.Declared() {
		setString(android, "ndk_version", desc.NDKVersion)
	}

	if c := desc.Compile; c != (descriptor.CompileOptions{}) {
		android.AppendNewline()
		body := android.AppendNewBlock("compile_options", nil).Body()
		if c.CoreLibraryDesugaring {
			body.SetAttributeValue("core_library_desugaring", cty.True)
		}
		setJavaVersion(body, "source_compatibility", c.SourceCompatibility)
		setJavaVersion(body, "target_compatibility", c.TargetCompatibility)
	}

	if desc.Kotlin.JVMTarget != "" {
		android.AppendNewline()
		body := android.AppendNewBlock("kotlin_options", nil).Body()
		body.SetAttributeValue("jvm_target", cty.StringVal(desc.Kotlin.JVMTarget.String()))
	}

	android.AppendNewline()
	dc := android.AppendNewBlock("default_config", nil).Body()
	dc.SetAttributeValue("application_id", cty.StringVal(desc.ApplicationID))
	setInt(dc, "min_sdk", desc.MinSDK)
	setInt(dc, "target_sdk", desc.TargetSDK)
	if desc.VersionCode.Declared() {
		setInt(dc, "version_code", desc.VersionCode)
	}
	if desc.VersionName.Declared() {
		setString(dc, "version_name", desc.VersionName)
	}
	if desc.MultiDex {
		dc.SetAttributeValue("multidex", cty.True)
	}

	for _, sc := range desc.SigningConfigs {
		android.AppendNewline()
		body := android.AppendNewBlock("signing_config", []string{sc.Name}).Body()
		setOptionalString(body, "store_file", sc.StoreFile)
		setOptionalString(body, "store_password", sc.StorePassword)
		setOptionalString(body, "key_alias", sc.KeyAlias)
		setOptionalString(body, "key_password", sc.KeyPassword)
	}

	for _, bt := range desc.BuildTypes {
		android.AppendNewline()
		body := android.AppendNewBlock("build_type", []string{bt.Name}).Body()
		setOptionalString(body, "signing_config", bt.SigningConfig)
		if bt.Minify {
			body.SetAttributeValue("minify", cty.True)
		}
		if bt.ShrinkResources {
			body.SetAttributeValue("shrink_resources", cty.True)
		}
	}

	if desc.Framework.Source != "" {
		root.AppendNewline()
		root.AppendNewBlock("flutter", nil).Body().SetAttributeValue("source", cty.StringVal(desc.Framework.Source))
	}

	if len(desc.Dependencies) > 0 {
		root.AppendNewline()
	}
	for _, dep := range desc.Dependencies {
		root.AppendNewBlock("dependency", []string{dep.Scope, dep.Coordinate.String()})
	}

	return hclwrite.Format(f.Bytes())
}

func setInt(body *hclwrite.Body, name string, s descriptor.Setting[int]) {
	if s.IsRef() {
		setRef(body, name, s.Ref)
		return
	}
	body.SetAttributeValue(name, cty.NumberIntVal(int64(s.Literal)))
}

func setString(body *hclwrite.Body, name string, s descriptor.Setting[string]) {
	if s.IsRef() {
		setRef(body, name, s.Ref)
		return
	}
	body.SetAttributeValue(name, cty.StringVal(s.Literal))
}

func setOptionalString(body *hclwrite.Body, name, v string) {
	if v != "" {
		body.SetAttributeValue(name, cty.StringVal(v))
	}
}

// setRef writes ref as a bare traversal. Refs come from the loader, which
// only keeps text that parsed as a traversal, so a parse failure falls back
// to a quoted string rather than producing invalid output.
func setRef(body *hclwrite.Body, name, ref string) {
	traversal, err := hclutil.ParseReference(ref)
	if err != nil {
		body.SetAttributeValue(name, cty.StringVal(ref))
		return
	}
	body.SetAttributeTraversal(name, traversal)
}

func setJavaVersion(body *hclwrite.Body, name string, v descriptor.JavaVersion) {
	if v == "" {
		return
	}
	body.SetAttributeTraversal(name, hcl.Traversal{
		hcl.TraverseRoot{Name: "JavaVersion"},
		hcl.TraverseAttr{Name: v.GradleConstant()},
	})
}
