// Package app implements the use cases behind the dataloader CLI.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/dataloader/internal/adapters/parser" //nolint:depguard // Rendering is an app concern
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.DocumentLoader
	fs     ports.FileSystem
	vault  ports.Vault
	secret []byte
	tracer ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.DocumentLoader,
	fsys ports.FileSystem,
	vault ports.Vault,
	secret domain.VaultSecret,
	tracer ports.Tracer,
) *App {
	return &App{
		loader: loader,
		fs:     fsys,
		vault:  vault,
		secret: secret,
		tracer: tracer,
	}
}

// FindResult is the outcome of a role-aware lookup.
type FindResult struct {
	Path       string
	Found      bool
	Candidates []string
}

// PathInfo describes what exists at a resolved path.
type PathInfo struct {
	Path   string
	Exists bool
	IsFile bool
	IsDir  bool
}

// Inspection summarizes a loaded document.
type Inspection struct {
	Path     string
	Digest   uint64
	Kind     domain.Kind
	Keys     []string
	Len      int
	Position *domain.Position
}

// SetBaseDir replaces the loader base directory. An empty dir is ignored.
func (a *App) SetBaseDir(dir string) {
	if dir == "" {
		return
	}
	a.loader.SetBaseDir(&dir)
}

// BaseDir returns the loader base directory.
func (a *App) BaseDir() string {
	return a.loader.BaseDir()
}

// Load loads the document at path.
func (a *App) Load(ctx context.Context, path string) (*domain.Document, error) {
	_, span := a.tracer.Start(ctx, "load", ports.WithAttribute("path", path))
	defer span.End()

	doc, err := a.loader.LoadFromFile(path)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load document")
	}
	if digest, ok := a.loader.Digest(path); ok {
		span.SetAttribute("digest", digest)
	}
	return doc, nil
}

// LoadReader parses everything read from r. Nothing is cached.
func (a *App) LoadReader(ctx context.Context, r io.Reader, source string) (*domain.Document, error) {
	_, span := a.tracer.Start(ctx, "load_stream", ports.WithAttribute("source", source))
	defer span.End()

	data, err := io.ReadAll(r)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrFileReadFailed, err), "source", source)
	}
	doc, err := a.loader.Load(string(data), source, true)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load document")
	}
	return doc, nil
}

// Render writes doc to w in the named format.
func (a *App) Render(w io.Writer, doc *domain.Document, format string) error {
	f, err := parser.ParseFormat(format)
	if err != nil {
		return err
	}
	return parser.Render(w, doc, f)
}

// Resolve turns a user-given path into an absolute path.
func (a *App) Resolve(ctx context.Context, given string) string {
	_, span := a.tracer.Start(ctx, "resolve", ports.WithAttribute("given", given))
	defer span.End()

	resolved := a.loader.Dwim(given)
	span.SetAttribute("resolved", resolved)
	return resolved
}

// Find searches role and playbook layouts for source referenced from basePath.
func (a *App) Find(ctx context.Context, basePath, subdir, source string) FindResult {
	_, span := a.tracer.Start(ctx, "find",
		ports.WithAttribute("base_path", basePath),
		ports.WithAttribute("subdir", subdir),
		ports.WithAttribute("source", source),
	)
	defer span.End()

	// One snapshot of the list, so a concurrent SetBaseDir cannot split the result from its candidates.
	candidates := a.loader.Candidates(basePath, subdir, source)
	span.SetAttribute("candidates", candidates)

	res := FindResult{Path: candidates[len(candidates)-1], Candidates: candidates}
	for _, c := range candidates {
		if a.loader.PathExists(c) {
			res.Path, res.Found = c, true
			break
		}
	}
	span.SetAttribute("found", res.Found)
	return res
}

// Exists reports what is present at path.
func (a *App) Exists(ctx context.Context, path string) PathInfo {
	_, span := a.tracer.Start(ctx, "exists", ports.WithAttribute("path", path))
	defer span.End()

	info := PathInfo{
		Path:   a.loader.Dwim(path),
		Exists: a.loader.PathExists(path),
		IsFile: a.loader.IsFile(path),
		IsDir:  a.loader.IsDirectory(path),
	}
	span.SetAttribute("exists", info.Exists)
	return info
}

// List returns the entries of the directory at path.
func (a *App) List(ctx context.Context, path string) ([]string, error) {
	_, span := a.tracer.Start(ctx, "list", ports.WithAttribute("path", path))
	defer span.End()

	names, err := a.loader.ListDirectory(path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("entries", len(names))
	return names, nil
}

// Inspect loads path and summarizes the result.
func (a *App) Inspect(ctx context.Context, path string) (*Inspection, error) {
	ctx, span := a.tracer.Start(ctx, "inspect", ports.WithAttribute("path", path))
	defer span.End()

	doc, err := a.Load(ctx, path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	digest, _ := a.loader.Digest(path)
	return &Inspection{
		Path:     a.loader.Dwim(path),
		Digest:   digest,
		Kind:     doc.Root.Kind,
		Keys:     doc.Root.Keys(),
		Len:      doc.Root.Len(),
		Position: doc.Position(),
	}, nil
}

// Encrypt seals the file at path with the configured secret and returns the envelope.
// Content that is already encrypted is rejected.
func (a *App) Encrypt(ctx context.Context, path, label string) ([]byte, error) {
	_, span := a.tracer.Start(ctx, "encrypt", ports.WithAttribute("path", path))
	defer span.End()

	resolved := a.loader.Dwim(path)
	if !a.loader.IsFile(path) {
		err := zerr.With(fmt.Errorf("%w", domain.ErrFileNotFound), "path", resolved)
		span.RecordError(err)
		return nil, err
	}

	plaintext, err := a.fs.ReadFile(resolved)
	if err != nil {
		err = zerr.With(fmt.Errorf("%w: %w", domain.ErrFileReadFailed, err), "path", resolved)
		span.RecordError(err)
		return nil, err
	}
	if a.vault.IsEncrypted(plaintext) {
		err := zerr.With(fmt.Errorf("%w", domain.ErrAlreadyEncrypted), "path", resolved)
		span.RecordError(err)
		return nil, err
	}

	sealed, err := a.vault.Encrypt(plaintext, a.secret, label)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return sealed, nil
}

// Err returns ErrCandidateNotFound when the lookup found nothing.
func (r FindResult) Err() error {
	if r.Found {
		return nil
	}
	return zerr.With(fmt.Errorf("%w", domain.ErrCandidateNotFound), "candidate", r.Path)
}
