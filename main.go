package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"spritemanifest/logger"
	"spritemanifest/manifest"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseConfig(args, stderr)
	if err != nil {
		switch {
		case errors.Is(err, errVersion):
			console := logger.NewConsole(&logger.RichLoggerOptions{Output: stdout})
			console.Box("spritemanifest version information", versionInfo())
			return exitOK
		case errors.Is(err, flag.ErrHelp):
			return exitOK
		}
		io.WriteString(stderr, "Configuration error: "+err.Error()+"\n")
		return exitUsage
	}

	opts := consoleOptions(cfg)
	opts.Output = stdout
	opts.ProgressOutput = stderr
	console := logger.NewConsole(opts)

	builder := manifest.NewBuilder(cfg, console)

	res, err := builder.Build(ctx)
	if err != nil {
		console.Error("Processing error: %v", err)
		return exitFailed
	}

	if !cfg.Log.Quiet && !cfg.Log.JSON {
		builder.DisplayResults(res)
	}

	if res.Failed() {
		console.Error("Completed with %d failed writes", len(res.WriteFailures))
		return exitFailed
	}

	console.Success("Completed.")
	return exitOK
}
