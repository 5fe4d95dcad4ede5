package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spritemanifest/config"
)

func writeSprite(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))))
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvOutput, "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunGeneratesManifests(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "sprites")
	out := filepath.Join(base, "json")
	writeSprite(t, filepath.Join(root, "cat", "cat_1.png"), 6, 4)
	writeSprite(t, filepath.Join(root, "cat", "cat_2.png"), 6, 4)

	code, stdout, stderr := runCLI(t, "-out", out, "-index", config.IndexFileName, root)
	require.Equal(t, exitOK, code, stderr)

	manifestPath := filepath.Join(out, "cat_sprites.json")
	assert.FileExists(t, manifestPath)
	assert.FileExists(t, filepath.Join(out, config.IndexFileName))
	assert.Contains(t, stdout, "Generated: "+manifestPath)
	assert.Contains(t, stdout, "Manifests written")
	assert.Contains(t, stdout, "Completed.")
}

func TestRunMissingRoot(t *testing.T) {
	base := t.TempDir()

	code, stdout, _ := runCLI(t, "-root", filepath.Join(base, "absent"), "-out", filepath.Join(base, "json"))
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stdout, "Processing error")
	assert.NotContains(t, stdout, "Completed.")
	assert.NoDirExists(t, filepath.Join(base, "json"))
}

func TestRunWriteFailureExitsNonZero(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "sprites")
	out := filepath.Join(base, "json")
	writeSprite(t, filepath.Join(root, "cat", "a.png"), 1, 1)
	require.NoError(t, os.MkdirAll(filepath.Join(out, "cat_sprites.json"), 0o755))

	code, stdout, _ := runCLI(t, "-out", out, root)
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stdout, "Completed with 1 failed writes")
}

func TestRunQuietJSONLogs(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "sprites")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dog"), 0o755))

	code, stdout, _ := runCLI(t, "-json-logs", "-quiet", "-out", filepath.Join(base, "json"), root)
	require.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(base, "json", "dog_sprites.json"))
}

func TestRunUsesConfigFile(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "sprites")
	out := filepath.Join(base, "from_config")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "owl"), 0o755))

	cfgPath := filepath.Join(base, "spritemanifest.toml")
	body := "root = " + quote(root) + "\noutput_dir = " + quote(out) + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	code, _, stderr := runCLI(t, "-config", cfgPath)
	require.Equal(t, exitOK, code, stderr)
	assert.FileExists(t, filepath.Join(out, "owl_sprites.json"))
}

func quote(s string) string {
	return "'" + s + "'"
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"-bogus"}, want: "flag provided but not defined"},
		{name: "two roots", args: []string{"a", "b"}, want: "at most one root"},
		{name: "root twice", args: []string{"-root", "a", "b"}, want: "both as -root"},
		{name: "bad index", args: []string{"-index", "../escape.json"}, want: "bare file name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "-version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Version: "+Version)
	assert.Contains(t, stdout, "Git commit: "+GitCommit)
}

func TestRunHelp(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "Usage: spritemanifest")
	assert.Contains(t, stderr, "-index")
}
