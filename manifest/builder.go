package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spritemanifest/config"
	"spritemanifest/logger"
)

// Written describes one manifest file on disk.
type Written struct {
	Animal     string
	Path       string
	Frames     int
	Unreadable int
}

// Result summarizes a Build.
type Result struct {
	Manifests     []Written
	Frames        int
	Unreadable    int
	WriteFailures []error
	IndexPath     string
	Elapsed       time.Duration
}

// Failed reports whether any manifest or the index could not be written.
func (r *Result) Failed() bool {
	return len(r.WriteFailures) > 0
}

// Builder writes one manifest per animal folder under Root into OutputDir.
type Builder struct {
	Root      string
	OutputDir string
	IndexPath string
	Console   *logger.Console
}

func NewBuilder(cfg *config.Config, console *logger.Console) *Builder {
	if console == nil {
		console = logger.Discard()
	}
	return &Builder{
		Root:      cfg.Root,
		OutputDir: cfg.OutputDir,
		IndexPath: cfg.IndexPath(),
		Console:   console,
	}
}

// Build processes every animal folder in root enumeration order. It returns
// an error only for failures that stop the run: an inaccessible root, an
// output directory that cannot be created, a folder that cannot be listed,
// or ctx cancellation. Manifest write failures are collected in the Result.
// Files written before a fatal error stay on disk.
//
// The output directory is never treated as an animal, even when it is a
// direct child of the root; it is skipped with a warning.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	timer := b.Console.StartTimer("Manifest generation")

	animals, err := ListAnimals(b.Root)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return nil, &OutputDirError{Path: b.OutputDir, Err: err}
	}

	b.Console.Info("Processing %d animal folders from %s", len(animals), b.Root)

	res := &Result{}
	index := Index{}
	bar := b.Console.NewProgressBar(int64(len(animals)), "Animals")

	for _, name := range animals {
		if err := ctx.Err(); err != nil {
			bar.Complete()
			return res, err
		}
		bar.Describe(name)

		dir := filepath.Join(b.Root, name)
		if b.isOutputDir(dir) {
			b.Console.Warn("Skipping %s: it is the output directory", dir)
			bar.Increment(1)
			continue
		}

		animal, err := b.collect(name, dir)
		if err != nil {
			bar.Complete()
			return res, err
		}

		w, err := b.write(animal)
		bar.Increment(1)
		if err != nil {
			b.Console.Error("%v", err)
			res.WriteFailures = append(res.WriteFailures, err)
			continue
		}

		b.Console.Success("Generated: %s", w.Path)
		res.Manifests = append(res.Manifests, w)
		res.Frames += w.Frames
		res.Unreadable += w.Unreadable
		index[name] = IndexEntry{Frames: w.Frames}
	}
	bar.Complete()

	if b.IndexPath != "" {
		path, err := b.writeIndex(index)
		if err != nil {
			b.Console.Error("%v", err)
			res.WriteFailures = append(res.WriteFailures, err)
		} else {
			b.Console.Success("Generated: %s", path)
			res.IndexPath = path
		}
	}

	res.Elapsed = timer.End()
	return res, nil
}

func (b *Builder) collect(name, dir string) (Animal, error) {
	names, err := ListFrames(dir)
	if err != nil {
		return Animal{}, err
	}

	animal := Animal{Name: name, Frames: make([]Frame, 0, len(names))}
	for _, file := range names {
		result := Probe(filepath.Join(dir, file))
		if !result.OK() {
			b.Console.Logger.Warn("unreadable frame",
				"animal", name,
				"file", file,
				"error", result.Err)
		}
		animal.Frames = append(animal.Frames, Frame{Name: file, Result: result})
	}
	return animal, nil
}

func (b *Builder) write(animal Animal) (Written, error) {
	fileName := FileName(animal.Name)
	path := filepath.Join(b.OutputDir, fileName)

	data, err := animal.Marshal()
	if err != nil {
		return Written{}, &ManifestWriteError{Animal: animal.Name, Path: path, Err: err}
	}
	if err := writeFileAtomic(b.OutputDir, fileName, data); err != nil {
		return Written{}, &ManifestWriteError{Animal: animal.Name, Path: path, Err: err}
	}

	return Written{
		Animal:     animal.Name,
		Path:       path,
		Frames:     len(animal.Frames),
		Unreadable: animal.Unreadable(),
	}, nil
}

func (b *Builder) writeIndex(index Index) (string, error) {
	path := b.IndexPath

	data, err := index.Marshal()
	if err != nil {
		return "", &ManifestWriteError{Path: path, Err: err}
	}
	if err := writeFileAtomic(filepath.Dir(path), filepath.Base(path), data); err != nil {
		return "", &ManifestWriteError{Path: path, Err: err}
	}
	return path, nil
}

// isOutputDir reports whether dir is the output directory itself, which
// happens when the output is placed inside the sprite root.
func (b *Builder) isOutputDir(dir string) bool {
	a, err := os.Stat(dir)
	if err != nil {
		return false
	}
	o, err := os.Stat(b.OutputDir)
	if err != nil {
		return false
	}
	return os.SameFile(a, o)
}

// DisplayResults prints the run summary as a table.
func (b *Builder) DisplayResults(res *Result) {
	table := b.Console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Manifests written", fmt.Sprintf("%d", len(res.Manifests)))
	table.AddRow("Frames", fmt.Sprintf("%d", res.Frames))
	table.AddRow("Unreadable frames", fmt.Sprintf("%d", res.Unreadable))
	table.AddRow("Failed writes", fmt.Sprintf("%d", len(res.WriteFailures)))
	if res.IndexPath != "" {
		table.AddRow("Character index", res.IndexPath)
	}
	table.AddRow("Elapsed", res.Elapsed.Round(time.Millisecond).String())

	b.Console.Info("Summary:")
	table.Print()
}
