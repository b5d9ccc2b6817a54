package hcl

import "github.com/hashicorp/hcl/v2"

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "plugins"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "android"},
		{Type: "flutter"},
		{Type: "dependency", LabelNames: []string{"scope", "coordinate"}},
	},
}

var androidSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "namespace", Required: true},
		{Name: "compile_sdk", Required: true},
		{Name: "ndk_version"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "compile_options"},
		{Type: "kotlin_options"},
		{Type: "default_config"},
		{Type: "signing_config", LabelNames: []string{"name"}},
		{Type: "build_type", LabelNames: []string{"name"}},
	},
}

var compileOptionsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "core_library_desugaring"},
		{Name: "source_compatibility"},
		{Name: "target_compatibility"},
	},
}

var kotlinOptionsSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "jvm_target"},
	},
}

var defaultConfigSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "application_id", Required: true},
		{Name: "min_sdk", Required: true},
		{Name: "target_sdk", Required: true},
		{Name: "version_code"},
		{Name: "version_name"},
		{Name: "multidex"},
	},
}

var signingConfigSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "store_file"},
		{Name: "store_password"},
		{Name: "key_alias"},
		{Name: "key_password"},
	},
}

var buildTypeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "signing_config"},
		{Name: "minify"},
		{Name: "shrink_resources"},
	},
}

var frameworkSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "source"},
	},
}

// emptySchema rejects any content, e.g. inside a `dependency` block.
var emptySchema = &hcl.BodySchema{}
