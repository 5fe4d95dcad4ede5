package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var frameExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// IsFrameFile reports whether name has one of the frame extensions,
// ignoring case.
func IsFrameFile(name string) bool {
	return frameExtensions[strings.ToLower(filepath.Ext(name))]
}

// ListAnimals returns the names of root's direct subdirectories. Symlinks are
// followed when deciding whether an entry is a directory; everything else is
// skipped.
func ListAnimals(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &RootAccessError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &RootAccessError{Path: root, Err: ErrNotDirectory}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &RootAccessError{Path: root, Err: err}
	}

	animals := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isDir(root, entry) {
			animals = append(animals, entry.Name())
		}
	}
	return animals, nil
}

// ListFrames returns the frame file names in dir, sorted by SortFrames.
func ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list frames in %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isDir(dir, entry) {
			continue
		}
		if IsFrameFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	SortFrames(names)
	return names, nil
}

// SortFrames orders names by their lower-cased form. Names that lower-case
// identically keep a stable byte order. The comparison is lexicographic, so
// frame_10.png sorts before frame_2.png.
func SortFrames(names []string) {
	lower := cases.Lower(language.Und)
	keys := make(map[string]string, len(names))
	for _, name := range names {
		keys[name] = lower.String(name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(keys[a], keys[b]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

func isDir(parent string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
