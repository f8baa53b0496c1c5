package ports

import "go.trai.ch/dataloader/internal/core/domain"

// DocumentLoader is the surface exposed to callers for loading documents and resolving paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load parses in-memory text. No file I/O takes place.
	Load(text, source string, showContent bool) (*domain.Document, error)

	// LoadNode re-parses a tracked scalar and keeps the scalar's position on the result root.
	LoadNode(node *domain.Node, showContent bool) (*domain.Document, error)

	// LoadFromFile resolves path, then returns an independent copy of its parsed content.
	LoadFromFile(path string) (*domain.Document, error)

	// Digest returns the content digest recorded when path was cached.
	Digest(path string) (uint64, bool)

	PathExists(path string) bool
	IsFile(path string) bool
	IsDirectory(path string) bool
	ListDirectory(path string) ([]string, error)

	BaseDir() string
	SetBaseDir(dir *string)

	// Dwim turns a user-given path into an absolute path against the base directory.
	Dwim(given string) string

	// DwimRelative searches role and playbook layouts for source.
	// It returns the first existing candidate, or the last candidate with found set to false.
	DwimRelative(basePath, subdir, source string) (path string, found bool)

	// Candidates returns the ordered search list used by DwimRelative.
	Candidates(basePath, subdir, source string) []string
}
