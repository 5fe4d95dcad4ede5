package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spritemanifest/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spritemanifest.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvOutput, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRoot, cfg.Root)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
	assert.Empty(t, cfg.IndexFile)
	assert.Empty(t, cfg.IndexPath())
}

func TestLoadDecodesTOML(t *testing.T) {
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvOutput, "")
	path := writeConfig(t, `
root = "/srv/sprites"
output_dir = "/srv/out"
index_file = "personagems.json"

[log]
json = true
quiet = true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/sprites", cfg.Root)
	assert.Equal(t, "/srv/out", cfg.OutputDir)
	assert.Equal(t, "personagems.json", cfg.IndexFile)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Quiet)
	assert.False(t, cfg.Log.NoColor)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `roots = "/typo"`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `root = "/from/file"`)
	t.Setenv(config.EnvRoot, "/from/env")
	t.Setenv(config.EnvOutput, "/out/env")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Root)
	assert.Equal(t, "/out/env", cfg.OutputDir)
}

func TestNormalizeMakesPathsAbsolute(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	cfg.Root = "~/sprites"
	cfg.IndexFile = "  personagems.json "
	require.NoError(t, cfg.Normalize())

	assert.Equal(t, filepath.Join(home, "sprites"), cfg.Root)
	assert.True(t, filepath.IsAbs(cfg.OutputDir))
	assert.Equal(t, filepath.Base(config.DefaultOutputDir), filepath.Base(cfg.OutputDir))
	assert.Equal(t, "personagems.json", cfg.IndexFile)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "personagems.json"), cfg.IndexPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "empty root", mutate: func(c *config.Config) { c.Root = " " }, wantErr: "root is required"},
		{name: "empty output", mutate: func(c *config.Config) { c.OutputDir = "" }, wantErr: "output_dir is required"},
		{name: "index with separator", mutate: func(c *config.Config) { c.IndexFile = "sub/index.json" }, wantErr: "bare file name"},
		{name: "index dotdot", mutate: func(c *config.Config) { c.IndexFile = ".." }, wantErr: "bare file name"},
		{name: "index ok", mutate: func(c *config.Config) { c.IndexFile = config.IndexFileName }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
