// Package loader loads documents from disk or memory, decrypting and caching them,
// and resolves user-given paths against a base directory.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Options configures a Loader.
type Options struct {
	// BaseDir is the initial base directory. Empty means the working directory.
	BaseDir string
	// Secret is the vault secret. It is copied and never changes afterwards.
	Secret []byte
	// Verbose logs every cache fill.
	Verbose bool
}

// Loader implements ports.DocumentLoader. It is safe for concurrent use.
type Loader struct {
	fs       ports.FileSystem
	parser   ports.DocumentParser
	reader   *FileReader
	resolver *PathResolver
	cache    *DocumentCache
	logger   ports.Logger
	verbose  bool

	mu      sync.RWMutex
	baseDir string

	inflight singleflight.Group
}

// New creates a Loader.
func New(
	fsys ports.FileSystem,
	vault ports.Vault,
	parser ports.DocumentParser,
	logger ports.Logger,
	opts Options,
) *Loader {
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = workingDir()
	}
	return &Loader{
		fs:       fsys,
		parser:   parser,
		reader:   NewFileReader(fsys, NewDecryptionGate(vault, opts.Secret)),
		resolver: NewPathResolver(fsys),
		cache:    NewDocumentCache(),
		logger:   logger,
		verbose:  opts.Verbose,
		baseDir:  absolute(baseDir),
	}
}

// WithResolver replaces the path resolver. It must be called before the Loader is shared.
func (l *Loader) WithResolver(r *PathResolver) *Loader {
	l.resolver = r
	return l
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Load parses in-memory text without touching the filesystem or the cache.
func (l *Loader) Load(text, source string, showContent bool) (*domain.Document, error) {
	return l.parser.Parse(text, source, showContent)
}

// LoadNode re-parses a tracked string scalar.
func (l *Loader) LoadNode(node *domain.Node, showContent bool) (*domain.Document, error) {
	return l.parser.ParseNode(node, showContent)
}

// LoadFromFile resolves path and returns a private copy of its parsed content.
// The first successful load of a resolved path is cached for the life of the Loader.
func (l *Loader) LoadFromFile(path string) (*domain.Document, error) {
	if path == "" {
		return nil, domain.ErrInvalidFilename
	}

	resolved := l.Dwim(path)
	if doc, ok := l.cache.Get(resolved); ok {
		return doc, nil
	}

	v, err, _ := l.inflight.Do(resolved, func() (any, error) {
		if doc, ok := l.cache.Get(resolved); ok {
			return doc, nil
		}

		text, shownInClear, err := l.reader.Read(resolved)
		if err != nil {
			return nil, err
		}
		doc, err := l.parser.Parse(text, resolved, shownInClear)
		if err != nil {
			return nil, err
		}

		digest := xxhash.Sum64String(text)
		l.cache.Put(resolved, doc, digest)
		if l.verbose && l.logger != nil {
			l.logger.Info(fmt.Sprintf("cached %s (xxhash %016x)", resolved, digest))
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	// Callers sharing one flight must not share the tree.
	return v.(*domain.Document).Clone(), nil
}

// Digest returns the xxhash of the decoded text cached for path.
func (l *Loader) Digest(path string) (uint64, bool) {
	if path == "" {
		return 0, false
	}
	return l.cache.Digest(l.Dwim(path))
}

// PathExists reports whether anything exists at the resolved path.
func (l *Loader) PathExists(path string) bool {
	_, err := l.fs.Stat(l.Dwim(path))
	return err == nil
}

// IsFile reports whether the resolved path is a regular file.
func (l *Loader) IsFile(path string) bool {
	info, err := l.fs.Stat(l.Dwim(path))
	return err == nil && info.Mode().IsRegular()
}

// IsDirectory reports whether the resolved path is a directory.
func (l *Loader) IsDirectory(path string) bool {
	info, err := l.fs.Stat(l.Dwim(path))
	return err == nil && info.IsDir()
}

// ListDirectory returns the entry names of the resolved directory.
func (l *Loader) ListDirectory(path string) ([]string, error) {
	resolved := l.Dwim(path)
	names, err := l.fs.ReadDir(resolved)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrDirectoryReadFailed, err), "path", resolved)
	}
	return names, nil
}

// BaseDir returns the current base directory.
func (l *Loader) BaseDir() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.baseDir
}

// SetBaseDir replaces the base directory. A nil dir leaves it unchanged.
func (l *Loader) SetBaseDir(dir *string) {
	if dir == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.baseDir = absolute(filepath.Clean(*dir))
}

// Dwim resolves given against the current base directory.
func (l *Loader) Dwim(given string) string {
	return l.resolver.Dwim(l.BaseDir(), given)
}

// DwimRelative finds source referenced from basePath using role and playbook layouts.
func (l *Loader) DwimRelative(basePath, subdir, source string) (string, bool) {
	return l.resolver.DwimRelative(l.BaseDir(), basePath, subdir, source)
}

// Candidates returns the ordered search list DwimRelative walks.
func (l *Loader) Candidates(basePath, subdir, source string) []string {
	return l.resolver.Candidates(l.BaseDir(), basePath, subdir, source)
}
