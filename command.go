package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"spritemanifest/config"
	"spritemanifest/logger"
)

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// errVersion signals that -version was handled and the program should exit
// cleanly.
var errVersion = errors.New("version requested")

type options struct {
	configPath string
	root       string
	outputDir  string
	indexFile  string
	jsonLogs   bool
	noColor    bool
	quiet      bool
	version    bool
}

func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("spritemanifest", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&opts.root, "root", "", "Directory holding one sub-folder per animal (default \""+config.DefaultRoot+"\")")
	fs.StringVar(&opts.outputDir, "out", "", "Directory receiving <animal>_sprites.json (default \""+config.DefaultOutputDir+"\")")
	fs.StringVar(&opts.indexFile, "index", "", "Also write a character index with this file name, e.g. "+config.IndexFileName)
	fs.BoolVar(&opts.jsonLogs, "json-logs", false, "Emit log records as JSON lines")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colours")
	fs.BoolVar(&opts.quiet, "quiet", false, "Only print warnings and errors")
	fs.BoolVar(&opts.version, "version", false, "Show version information")

	return fs
}

// ParseConfig layers flags and an optional positional root over the config
// file and environment, then normalizes and validates the result.
func ParseConfig(args []string, stderr io.Writer) (*config.Config, error) {
	var opts options
	var usage strings.Builder
	fs := newFlagSet(&opts, &usage)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(fs, stderr)
			return nil, err
		}
		io.WriteString(stderr, usage.String())
		return nil, err
	}

	if opts.version {
		return nil, errVersion
	}

	rest := fs.Args()
	if len(rest) > 1 {
		printUsage(fs, stderr)
		return nil, fmt.Errorf("expected at most one root directory, got %d arguments", len(rest))
	}
	if len(rest) == 1 && opts.root != "" {
		return nil, errors.New("root given both as -root and as an argument")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if len(rest) == 1 {
		cfg.Root = rest[0]
	}
	if opts.root != "" {
		cfg.Root = opts.root
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.indexFile != "" {
		cfg.IndexFile = opts.indexFile
	}
	cfg.Log.JSON = cfg.Log.JSON || opts.jsonLogs
	cfg.Log.NoColor = cfg.Log.NoColor || opts.noColor
	cfg.Log.Quiet = cfg.Log.Quiet || opts.quiet

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	old := fs.Output()
	defer fs.SetOutput(old)

	fmt.Fprintln(w, "Usage: spritemanifest [options] [root]")
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// consoleOptions turns the logging section of the config into console
// options.
func consoleOptions(cfg *config.Config) *logger.RichLoggerOptions {
	opts := logger.DefaultOptions()
	opts.EnableJSON = cfg.Log.JSON
	if cfg.Log.NoColor {
		opts.EnableColors = false
	}
	if cfg.Log.Quiet {
		opts.Level = slog.LevelWarn
		opts.EnableProgress = false
	}
	return opts
}

func versionInfo() string {
	return fmt.Sprintf(
		"Version: %s\nBuild date: %s\nGit commit: %s",
		Version, BuildDate, GitCommit,
	)
}
