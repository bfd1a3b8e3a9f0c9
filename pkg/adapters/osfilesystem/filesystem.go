// Package osfilesystem implements ports.FileSystem on the local disk.
package osfilesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/framecap/pkg/ports"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

func (FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path, creating missing parent directories.
func (f FileSystem) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := f.MkdirAll(dir); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, filePerm)
}

func (FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirPerm)
}

func (FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return statResult(err)
}

// IsRegular reports whether path is an existing regular file, following symlinks.
func (FileSystem) IsRegular(path string) (bool, error) {
	info, err := os.Stat(path)
	if ok, err := statResult(err); !ok {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func statResult(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

var _ ports.FileSystem = (*FileSystem)(nil)
