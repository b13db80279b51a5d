package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath_ValidPaths(t *testing.T) {
	// Valid paths have a package, a group (which may contain dots), and a
	// name. The package prefix is optional and always implicit.
	tests := []struct {
		pkg       string
		path      string
		wantGroup string
		wantName  string
	}{
		{"mypackage", "mypackage.readers.yml", "mypackage.readers", "yml"},
		{"mypackage", "mypackage.readers.csv", "mypackage.readers", "csv"},
		{"mypackage", "mypackage.writers.yml", "mypackage.writers", "yml"},
		{"mylib", "mylib.image.formats.jpg", "mylib.image.formats", "jpg"},
		{"mylib", "mylib.audio.formats.wav", "mylib.audio.formats", "wav"},
		{"myapp", "myapp.middleware.json-logging", "myapp.middleware", "json-logging"},
		{"foo", "foo.bar.baz", "foo.bar", "baz"},
		{"package", "package.group.group.group.group.name", "package.group.group.group.group", "name"},

		// without the package prefix
		{"mypackage", "readers.yml", "mypackage.readers", "yml"},
		{"mylib", "image.formats.png", "mylib.image.formats", "png"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			group, name, err := ParsePath(tt.pkg, tt.path, false)

			require.NoError(t, err)
			assert.Equal(t, tt.wantGroup, group)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestParsePath_PackagePrefixIsOptional(t *testing.T) {
	// Parsing with and without the leading package segment is identical.
	paths := []string{"readers.yml", "writers.csv", "image.formats.png"}

	for _, path := range paths {
		group1, name1, err1 := ParsePath("mypackage", path, false)
		group2, name2, err2 := ParsePath("mypackage", "mypackage."+path, false)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, group1, group2)
		assert.Equal(t, name1, name2)
	}
}

func TestParsePath_PrefixStripRequiresExactSegmentMatch(t *testing.T) {
	// A first segment merely starting with the package name is not a
	// package prefix.
	group, name, err := ParsePath("foo", "foobar.baz.qux", false)

	require.NoError(t, err)
	assert.Equal(t, "foo.foobar.baz", group)
	assert.Equal(t, "qux", name)
}

func TestParsePath_InvalidPaths(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
		path string
	}{
		{"bare package name", "mypackage", "mypackage"},
		{"single segment", "mypackage", "csv-reader"},
		{"dashes not dots", "mypackage", "mypackage-readers-xml"},
		{"group without name", "writers", "writers.xml"},
		{"empty path", "mypackage", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePath(tt.pkg, tt.path, false)

			assert.ErrorIs(t, err, ErrInvalidPluginPath)
		})
	}
}

func TestParsePath_WildcardFilling(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantGroup string
		wantName  string
	}{
		{"bare package fills both", "mypackage", "mypackage.*", "*"},
		{"group-level fills name", "mypackage.writers", "mypackage.writers", "*"},
		{"full path unchanged", "mypackage.readers.yml", "mypackage.readers", "yml"},
		{"explicit wildcards kept", "mypackage.*.yml", "mypackage.*", "yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, name, err := ParsePath("mypackage", tt.path, true)

			require.NoError(t, err)
			assert.Equal(t, tt.wantGroup, group)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestParsePath_EmptyPathInvalidEvenWithFilling(t *testing.T) {
	_, _, err := ParsePath("mypackage", "", true)

	assert.ErrorIs(t, err, ErrInvalidPluginPath)
}
