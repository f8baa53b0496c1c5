// Package fs provides the filesystem adapters used by the document loader.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// OSFS implements ports.FileSystem using the operating system.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path, following symlinks.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is resolved by the loader
	return os.ReadFile(path)
}

// ReadDir lists the entry names of the directory at path in directory order.
func (o *OSFS) ReadDir(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is resolved by the loader
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return f.Readdirnames(-1)
}

// EvalSymlinks returns path with all symbolic links resolved.
func (o *OSFS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// MapFSAdapter adapts an fs.FS (typically fstest.MapFS) to ports.FileSystem for testing.
// Absolute paths are mapped below Root.
type MapFSAdapter struct {
	FS   fs.FS
	Root string
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: filepath.Clean(root),
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	rel, err := m.toRelPath(path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(m.FS, rel)
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	rel, err := m.toRelPath(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(m.FS, rel)
}

// ReadDir lists the entry names of the directory at path, sorted by name.
func (m *MapFSAdapter) ReadDir(path string) ([]string, error) {
	rel, err := m.toRelPath(path)
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(m.FS, rel)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// EvalSymlinks cleans path. MapFS has no symbolic links.
func (m *MapFSAdapter) EvalSymlinks(path string) (string, error) {
	if _, err := m.Stat(path); err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}

// toRelPath converts an absolute path to a path within the filesystem.
// Paths outside Root report fs.ErrNotExist.
func (m *MapFSAdapter) toRelPath(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.Root, path)
	}
	path = filepath.Clean(path)

	if path == m.Root {
		return ".", nil
	}
	prefix := m.Root
	if prefix != string(filepath.Separator) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(path, prefix) {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	rel := filepath.ToSlash(strings.TrimPrefix(path, prefix))
	if !fs.ValidPath(rel) {
		return "", &fs.PathError{Op: "open", Path: path, Err: errors.Join(fs.ErrInvalid, fs.ErrNotExist)}
	}
	return rel, nil
}
