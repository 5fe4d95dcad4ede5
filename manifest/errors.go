package manifest

import (
	"errors"
	"fmt"
)

// RootAccessError means the sprite root is missing, unreadable or not a
// directory.
type RootAccessError struct {
	Path string
	Err  error
}

func (e *RootAccessError) Error() string {
	return fmt.Sprintf("sprite root %q: %v", e.Path, e.Err)
}

func (e *RootAccessError) Unwrap() error { return e.Err }

// OutputDirError means the output directory could not be created.
type OutputDirError struct {
	Path string
	Err  error
}

func (e *OutputDirError) Error() string {
	return fmt.Sprintf("create output directory %q: %v", e.Path, e.Err)
}

func (e *OutputDirError) Unwrap() error { return e.Err }

// ManifestWriteError means a single manifest (or the character index) could
// not be written. Other manifests are unaffected.
type ManifestWriteError struct {
	Animal string
	Path   string
	Err    error
}

func (e *ManifestWriteError) Error() string {
	if e.Animal == "" {
		return fmt.Sprintf("write %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("write manifest for %q to %q: %v", e.Animal, e.Path, e.Err)
}

func (e *ManifestWriteError) Unwrap() error { return e.Err }

// ErrNotDirectory is wrapped by RootAccessError when the root is a file.
var ErrNotDirectory = errors.New("not a directory")

func IsRootAccess(err error) bool {
	var e *RootAccessError
	return errors.As(err, &e)
}

func IsOutputDir(err error) bool {
	var e *OutputDirError
	return errors.As(err, &e)
}

func IsManifestWrite(err error) bool {
	var e *ManifestWriteError
	return errors.As(err, &e)
}
