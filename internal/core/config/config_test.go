package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterDisplay(t *testing.T) {
	cfg := Configuration{Filter: "core"}
	assert.True(t, cfg.HasFilter())
	assert.Equal(t, "core", cfg.FilterDisplay())

	cfg.Filter = ""
	assert.False(t, cfg.HasFilter())
	assert.Equal(t, FilterPlaceholder, cfg.FilterDisplay())
}

func TestLoadConfigToml_Valid(t *testing.T) {
	tempDir := t.TempDir()
	content := `
package_name = "my_pkg-1.0"
repo_url = "https://example.com/repo.git"
mode = "remote"
output_file = "graph.svg"
filter = "core"
`
	path := filepath.Join(tempDir, ConfigTomlName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigToml(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "my_pkg-1.0", cfg.PackageName)
	assert.Equal(t, "https://example.com/repo.git", cfg.RepoURL)
	assert.Equal(t, "remote", cfg.Mode)
	assert.Equal(t, "graph.svg", cfg.OutputFile)
	assert.Equal(t, "core", cfg.Filter)
}

func TestLoadConfigToml_NotFound(t *testing.T) {
	_, err := LoadConfigToml(filepath.Join(t.TempDir(), ConfigTomlName))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err), "Error should be a 'file not found' type error")
}

func TestLoadConfigToml_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigTomlName)
	require.NoError(t, os.WriteFile(path, []byte("package_name = \n[mode"), 0644))

	_, err := LoadConfigToml(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestWriteConfigToml_OmitsEmptyFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigTomlName)
	cfg := Configuration{
		PackageName: "pkg",
		RepoURL:     "git@github.com:org/repo.git",
		Mode:        "local",
		OutputFile:  "out.png",
	}

	require.NoError(t, WriteConfigToml(path, cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `package_name = "pkg"`)
	assert.NotContains(t, string(raw), "filter")

	loaded, err := LoadConfigToml(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestWriteConfigToml_OverwriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigTomlName)
	require.NoError(t, os.WriteFile(path, []byte(`package_name = "old"
filter = "stale"
`), 0644))

	cfg := Configuration{PackageName: "new", RepoURL: ".", Mode: "test", OutputFile: "g.jpg"}
	require.NoError(t, WriteConfigToml(path, cfg))

	loaded, err := LoadConfigToml(path)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.PackageName)
	assert.Empty(t, loaded.Filter, "Old fields should be gone")
}

func TestWriteConfigToml_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ConfigTomlName)
	err := WriteConfigToml(path, Configuration{PackageName: "pkg"})
	assert.Error(t, err)
}
