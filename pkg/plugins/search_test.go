package plugins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotplug/dotplug/pkg/metadata"
)

// newMultiEnv holds two distributions so the all-packages search mode has a
// working set to walk.
func newMultiEnv() *metadata.MemoryEnvironment {
	mypackage := metadata.NewDistribution("mypackage", "1.2.3").
		SetAuthor("Jane Doe", "jane.doe@mail.com")
	mypackage.AddEntry("mypackage.readers", "yml", "mypackage/readers:YAML", loadValue("yml reader"))
	mypackage.AddEntry("mypackage.readers", "csv", "mypackage/readers:CSV", loadValue("csv reader"))
	mypackage.AddEntry("mypackage.writers", "yml", "mypackage/writers:YAML", loadValue("yml writer"))

	otherlib := metadata.NewDistribution("otherlib", "2.0.0").
		SetAuthor("John Doe", "john.doe@mail.com")
	otherlib.AddEntry("otherlib.types", "date", "otherlib/types:Date", loadValue("date type"))
	otherlib.AddEntry("otherlib.types", "email", "otherlib/types:Email", loadValue("email type"))

	return metadata.NewEnvironment(mypackage, otherlib)
}

func TestGetPlugin(t *testing.T) {
	env := newMultiEnv()

	t.Run("derives package from path", func(t *testing.T) {
		plugin, err := GetPlugin(env, "mypackage.readers.yml")

		require.NoError(t, err)
		require.NotNil(t, plugin)
		assert.Equal(t, "mypackage.readers.yml", plugin.Path())
	})

	t.Run("unregistered path", func(t *testing.T) {
		plugin, err := GetPlugin(env, "mypackage.readers.xml")

		require.NoError(t, err)
		assert.Nil(t, plugin)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, err := GetPlugin(env, "unknown.readers.yml")

		assert.ErrorIs(t, err, ErrPackageNotFound)
	})

	t.Run("invalid package segment", func(t *testing.T) {
		_, err := GetPlugin(env, "123.readers.yml")

		assert.ErrorIs(t, err, ErrInvalidPackageName)
	})
}

func TestFindPlugins(t *testing.T) {
	env := newMultiEnv()

	matches, err := FindPlugins(env, "mypackage.*.yml")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"mypackage.readers.yml",
		"mypackage.writers.yml",
	}, pathsOf(matches))
}

func TestLoadPlugin(t *testing.T) {
	env := newMultiEnv()
	ctx := context.Background()

	t.Run("loads through the derived registry", func(t *testing.T) {
		result, err := LoadPlugin(ctx, env, "otherlib.types.date")

		require.NoError(t, err)
		assert.Equal(t, "date type", result)
	})

	t.Run("unregistered path fails", func(t *testing.T) {
		_, err := LoadPlugin(ctx, env, "mypackage.bogus.nonsense")

		assert.ErrorIs(t, err, ErrPluginNotFound)
	})
}

func TestSearch_AllDistributions(t *testing.T) {
	env := newMultiEnv()

	// "*" parses per distribution as (<dist>.*, *), so it covers the whole
	// working set in registration order.
	matches := Search(env, "*")

	assert.Equal(t, []string{
		"mypackage.readers.yml",
		"mypackage.readers.csv",
		"mypackage.writers.yml",
		"otherlib.types.date",
		"otherlib.types.email",
	}, pathsOf(matches))
}

func TestSearch_PackageAnchoredPattern(t *testing.T) {
	env := newMultiEnv()

	matches := Search(env, "mypackage.*.yml")

	assert.Equal(t, []string{
		"mypackage.readers.yml",
		"mypackage.writers.yml",
	}, pathsOf(matches))
}

func TestSearch_NeverFails(t *testing.T) {
	env := newMultiEnv()

	assert.Empty(t, Search(env, ""))
	assert.Empty(t, Search(env, "no.such.plugin"))
	assert.Empty(t, Search(metadata.NewEnvironment(), "*"))
}
