package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
name: mypackage
version: 1.2.3
author: Jane Doe
author_email: jane.doe@mail.com
entry_points:
  mypackage.readers:
    yml: mypackage/readers:YAML
    csv: mypackage/readers:CSV
`

func setupPluginDir(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "mypackage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0644))

	t.Setenv("DOTPLUG_PLUGIN_DIRS", dir)
	t.Setenv("DOTPLUG_LOG_LEVEL", "error")
	t.Setenv("DOTPLUG_WASM_ENABLED", "")
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "dotplug", root.Name)
	for _, name := range []string{"groups", "get", "find", "load"} {
		assert.Contains(t, root.Subcommands, name)
	}
}

func TestGroupsCommand(t *testing.T) {
	setupPluginDir(t)

	cmd := newGroupsCommand()

	assert.NoError(t, cmd.Run([]string{"mypackage"}))
	assert.Error(t, cmd.Run([]string{}), "package argument is required")
}

func TestGetCommand(t *testing.T) {
	setupPluginDir(t)

	cmd := newGetCommand()

	assert.NoError(t, cmd.Run([]string{"mypackage.readers.yml"}))
	assert.Error(t, cmd.Run([]string{"mypackage.readers.xml"}), "unregistered path")
}

func TestFindCommand(t *testing.T) {
	setupPluginDir(t)

	assert.NoError(t, newFindCommand().Run([]string{"mypackage.*.yml"}))
}

func TestFindCommand_All(t *testing.T) {
	setupPluginDir(t)

	assert.NoError(t, newFindCommand().Run([]string{"-all", "*"}))
}

func TestLoadCommand_TargetNotRegistered(t *testing.T) {
	setupPluginDir(t)

	// the manifest resolves, but no symbol is bound in this process
	assert.Error(t, newLoadCommand().Run([]string{"mypackage.readers.yml"}))
}
