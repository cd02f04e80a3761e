package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultOutput  = "icon.ico"
	ConfigFileName = "mkicon.json"
	DirPerm        = 0755
	FilePerm       = 0644
)

// FrameName returns the file name for a single exported frame,
// e.g. "icon-48.png".
func FrameName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
