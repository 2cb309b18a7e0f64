package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem resolves every path against root on the local disk.
type OSFileSystem struct {
	root string
}

func NewOSFileSystem(root string) *OSFileSystem {
	if root == "" {
		root = "."
	}
	return &OSFileSystem{root: root}
}

func (fs *OSFileSystem) path(path string) string {
	return filepath.Join(fs.root, filepath.FromSlash(path))
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(fs.path(path))
}

func (fs *OSFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return os.ReadDir(fs.path(path))
}

func (fs *OSFileSystem) FileExists(path string) bool {
	_, err := os.Stat(fs.path(path))
	return err == nil
}

func (fs *OSFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return os.WriteFile(fs.path(path), data, perm)
}

func (fs *OSFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return os.MkdirAll(fs.path(path), perm)
}

func (fs *OSFileSystem) Remove(path string) error {
	return os.Remove(fs.path(path))
}
