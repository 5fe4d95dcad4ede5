package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

var renameFunc = os.Rename

// writeFileAtomic replaces dir/name with data via a temp file in the same
// directory, so readers never observe a half-written manifest. The temp name
// has a fixed short length so any name that fits the filesystem also works
// here.
func writeFileAtomic(dir, name string, data []byte) error {
	dst := filepath.Join(dir, name)
	if info, err := os.Lstat(dst); err == nil && info.IsDir() {
		return fmt.Errorf("%q is a directory", dst)
	}

	tmp, err := os.CreateTemp(dir, ".sprites-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return renameFunc(tmpName, dst)
}
