package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_HasExpectedSubcommands(t *testing.T) {
	root := Root()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"build", "test", "doctor", "predeploy", "history", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestLoadProject_MissingFile(t *testing.T) {
	_, err := loadProject(filepath.Join(t.TempDir(), "fnforge.yml"), false)
	assert.Error(t, err)
}

func TestLoadProject_ResolvesOptionsAndDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fnforge.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
service: svc
provider:
  runtime: go1.x
custom:
  fnforge:
    binPath: artifacts
functions:
  widget:
    handler: entrypoints/widget.Handle
`), 0o644))

	env, err := loadProject(path, false)
	require.NoError(t, err)

	assert.Equal(t, "artifacts", env.cfg.BinPath)
	assert.Equal(t, dir, env.dir)
	assert.Equal(t, []string{"widget"}, env.project.Names())
}

func TestSetVersionInfo(t *testing.T) {
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "1.2.3", versionString)
	assert.Equal(t, "abc123", commitString)
	assert.Equal(t, "2026-01-01", dateString)
}
