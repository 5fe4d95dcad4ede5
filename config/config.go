package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultRoot      = "sprites_animais"
	DefaultOutputDir = "processed_json"

	// IndexFileName is the character index the game front-end loads.
	IndexFileName = "personagems.json"

	EnvRoot   = "SPRITES_ROOT"
	EnvOutput = "SPRITES_OUT"
)

// Logging controls console output.
type Logging struct {
	JSON    bool `toml:"json"`
	NoColor bool `toml:"no_color"`
	Quiet   bool `toml:"quiet"`
}

// Config is everything a manifest run needs.
type Config struct {
	Root      string  `toml:"root"`
	OutputDir string  `toml:"output_dir"`
	IndexFile string  `toml:"index_file"`
	Log       Logging `toml:"log"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		Root:      DefaultRoot,
		OutputDir: DefaultOutputDir,
	}
}

// Load starts from Default, decodes the TOML file at path when path is
// non-empty and finally applies environment overrides. The result is not
// normalized or validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, fmt.Errorf("parse config: %s", strings.TrimSpace(strict.String()))
			}
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvRoot); ok && strings.TrimSpace(v) != "" {
		c.Root = v
	}
	if v, ok := os.LookupEnv(EnvOutput); ok && strings.TrimSpace(v) != "" {
		c.OutputDir = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Log.NoColor = true
	}
}

// Normalize expands and absolutizes the configured paths.
func (c *Config) Normalize() error {
	var err error
	if c.Root, err = ExpandPath(c.Root); err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if c.OutputDir, err = ExpandPath(c.OutputDir); err != nil {
		return fmt.Errorf("output_dir: %w", err)
	}
	c.IndexFile = strings.TrimSpace(c.IndexFile)
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("root is required")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir is required")
	}
	if c.IndexFile != "" {
		if strings.ContainsAny(c.IndexFile, `/\`) || c.IndexFile == "." || c.IndexFile == ".." {
			return fmt.Errorf("index_file %q must be a bare file name", c.IndexFile)
		}
	}
	return nil
}

// IndexPath returns the full path of the character index, or "" when the
// index is disabled.
func (c *Config) IndexPath() string {
	if c.IndexFile == "" {
		return ""
	}
	return filepath.Join(c.OutputDir, c.IndexFile)
}

// ExpandPath resolves a leading tilde and returns a cleaned absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
