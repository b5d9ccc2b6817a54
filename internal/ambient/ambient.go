package ambient

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// DefaultNamespace is the variable name framework values are exposed under.
const DefaultNamespace = "flutter"

// Names of the values the framework is expected to provide.
const (
	MinSDKVersion     = "minSdkVersion"
	TargetSDKVersion  = "targetSdkVersion"
	CompileSDKVersion = "compileSdkVersion"
	NDKVersion        = "ndkVersion"
	VersionCode       = "versionCode"
	VersionName       = "versionName"
)

// KnownNames lists the values the framework is expected to provide.
var KnownNames = []string{MinSDKVersion, TargetSDKVersion, CompileSDKVersion, NDKVersion, VersionCode, VersionName}

// Ambient is a set of named framework values under a namespace.
type Ambient struct {
	Namespace string
	values    map[string]cty.Value
}

// New creates an empty Ambient. An empty namespace selects DefaultNamespace.
func New(namespace string) *Ambient {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Ambient{Namespace: namespace, values: make(map[string]cty.Value)}
}

// FlutterDefaults returns the values the Flutter Gradle plugin falls back to
// when a project does not override them.
func FlutterDefaults() *Ambient {
	a := New(DefaultNamespace)
	a.Set(MinSDKVersion, cty.NumberIntVal(21))
	a.Set(TargetSDKVersion, cty.NumberIntVal(34))
	a.Set(CompileSDKVersion, cty.NumberIntVal(34))
	a.Set(NDKVersion, cty.StringVal("23.1.7779620"))
	a.Set(VersionCode, cty.NumberIntVal(1))
	a.Set(VersionName, cty.StringVal("1.0"))
	return a
}

// Set stores a value, replacing any previous one.
func (a *Ambient) Set(name string, v cty.Value) {
	a.values[name] = v
}

// SetGo stores a native Go value after converting it to its cty equivalent.
func (a *Ambient) SetGo(name string, v any) error {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return fmt.Errorf("value %q: unable to infer cty.Type: %w", name, err)
	}
	val, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return fmt.Errorf("value %q: %w", name, err)
	}
	a.Set(name, val)
	return nil
}

// Get returns the named value.
func (a *Ambient) Get(name string) (cty.Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Names returns the names of all stored values in sorted order.
func (a *Ambient) Names() []string {
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge copies every value of other into a, overriding existing ones.
func (a *Ambient) Merge(other *Ambient) {
	for name, v := range other.values {
		a.values[name] = v
	}
}

// ApplyOverride applies a `name=value` assignment. The name may carry the
// namespace prefix (`flutter.versionCode=3`). The value is kept verbatim as a
// string; numeric settings are converted when the descriptor is resolved.
func (a *Ambient) ApplyOverride(assignment string) error {
	name, raw, ok := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("invalid override %q: expected name=value", assignment)
	}
	name = strings.TrimPrefix(name, a.Namespace+".")
	if strings.Contains(name, ".") {
		return fmt.Errorf("invalid override %q: only values under %q can be set", assignment, a.Namespace)
	}

	a.Set(name, cty.StringVal(strings.TrimSpace(raw)))
	return nil
}

// EvalContext exposes the values as `<namespace>.<name>` for HCL traversals.
func (a *Ambient) EvalContext() *hcl.EvalContext {
	obj := cty.EmptyObjectVal
	if len(a.values) > 0 {
		obj = cty.ObjectVal(a.values)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{a.Namespace: obj},
	}
}
