package descriptor

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/droidspec/internal/coordinate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJavaVersion(t *testing.T) {
	testCases := []struct {
		raw       string
		expected  JavaVersion
		expectErr bool
	}{
		{raw: "1.8", expected: Java8},
		{raw: "8", expected: Java8},
		{raw: "VERSION_1_8", expected: Java8},
		{raw: "JavaVersion.VERSION_1_8", expected: Java8},
		{raw: "11", expected: Java11},
		{raw: "VERSION_17", expected: Java17},
		{raw: " 21 ", expected: Java21},
		{raw: "1.7", expectErr: true},
		{raw: "", expectErr: true},
		{raw: "VERSION_", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			v, err := ParseJavaVersion(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestJavaVersion_GradleConstant(t *testing.T) {
	assert.Equal(t, "VERSION_1_8", Java8.GradleConstant())
	assert.Equal(t, "VERSION_17", Java17.GradleConstant())
}

func TestSetting(t *testing.T) {
	ref := RefSetting[int]("flutter.minSdkVersion")
	assert.True(t, ref.IsRef())
	assert.True(t, ref.Declared())
	assert.Equal(t, "flutter.minSdkVersion", ref.String())

	lit := LiteralSetting(21)
	assert.False(t, lit.IsRef())
	assert.True(t, lit.Declared())
	assert.Equal(t, "21", lit.String())

	var omitted Setting[string]
	assert.False(t, omitted.Declared())

	declaredEmpty := Setting[string]{Range: hcl.Range{Filename: "a.hcl", End: hcl.Pos{Byte: 4}}}
	assert.True(t, declaredEmpty.Declared())
}

func TestDescriptor_SigningConfigLookup(t *testing.T) {
	d := &Descriptor{
		SigningConfigs: []SigningConfig{{Name: "upload", KeyAlias: "upload"}},
		BuildTypes:     []BuildType{{Name: "release", SigningConfig: "upload"}},
	}

	sc, ok := d.SigningConfig("upload")
	require.True(t, ok)
	assert.Equal(t, "upload", sc.KeyAlias)

	_, ok = d.SigningConfig(DebugSigningConfig)
	assert.True(t, ok, "debug signing config exists implicitly")

	_, ok = d.SigningConfig("prod")
	assert.False(t, ok)

	bt, ok := d.BuildType("release")
	require.True(t, ok)
	assert.Equal(t, "upload", bt.SigningConfig)

	_, ok = d.BuildType("debug")
	assert.False(t, ok)
}

func TestResolved_DependenciesInScope(t *testing.T) {
	r := &Resolved{Dependencies: []Dependency{
		{Scope: "implementation", Coordinate: coordinate.MustParse("a:b:1")},
		{Scope: "coreLibraryDesugaring", Coordinate: coordinate.MustParse("c:d:2")},
		{Scope: "implementation", Coordinate: coordinate.MustParse("e:f:3")},
	}}

	impl := r.DependenciesInScope("implementation")
	require.Len(t, impl, 2)
	assert.Equal(t, "a:b:1", impl[0].Coordinate.String())
	assert.Equal(t, "e:f:3", impl[1].Coordinate.String())
	assert.Empty(t, r.DependenciesInScope("api"))
}
