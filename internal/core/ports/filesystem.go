package ports

import "io/fs"

// FileSystem abstracts the filesystem queries made by the loader.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path, following symlinks.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// ReadDir lists the entry names of the directory at path.
	ReadDir(path string) ([]string, error)
	// EvalSymlinks returns path with all symbolic links resolved.
	EvalSymlinks(path string) (string, error)
}
