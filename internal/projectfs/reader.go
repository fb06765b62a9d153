package projectfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Reader loads project files by root-relative path. Implementations must
// report missing files with an error matching fs.ErrNotExist so callers can
// distinguish "optional file absent" from real I/O failures.
type Reader interface {
	ReadFile(root, rel string) ([]byte, error)
}

// OSReader reads files from the local filesystem.
type OSReader struct{}

// ReadFile reads the file at rel (a slash-separated path) beneath root.
func (OSReader) ReadFile(root, rel string) ([]byte, error) {
	return os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
}

// IsNotExist reports whether err means the file was absent, as opposed to
// some other I/O failure.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
