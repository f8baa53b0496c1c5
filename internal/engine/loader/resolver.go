package loader

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
)

// HomeLookup returns the home directory of the named user, or of the current user when name is empty.
type HomeLookup func(name string) (string, error)

// PathResolver computes absolute paths from user-given path expressions.
// It never reads loader state: the base directory is always passed in.
type PathResolver struct {
	fs   ports.FileSystem
	home HomeLookup
}

// NewPathResolver creates a PathResolver that probes fs and expands "~" through the OS user database.
func NewPathResolver(fs ports.FileSystem) *PathResolver {
	return NewPathResolverWithHome(fs, lookupHome)
}

// NewPathResolverWithHome creates a PathResolver with a custom home directory lookup.
func NewPathResolverWithHome(fs ports.FileSystem, home HomeLookup) *PathResolver {
	return &PathResolver{fs: fs, home: home}
}

func lookupHome(name string) (string, error) {
	if name == "" {
		return os.UserHomeDir()
	}
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

// Dwim turns given into an absolute path against baseDir. It does not touch the filesystem.
func (r *PathResolver) Dwim(baseDir, given string) string {
	given = unquote(given)

	switch {
	case strings.HasPrefix(given, "/"):
		return filepath.Clean(given)
	case strings.HasPrefix(given, "~"):
		// An unknown user leaves the path unexpanded, and it resolves against the working directory.
		return absolute(r.expandUser(given))
	default:
		return absolute(filepath.Join(baseDir, given))
	}
}

// Candidates returns the ordered search list for source referenced from basePath.
// The list is never empty.
func (r *PathResolver) Candidates(baseDir, basePath, subdir, source string) []string {
	if strings.HasPrefix(source, "~") || strings.HasPrefix(source, "/") {
		return []string{r.Dwim(baseDir, source)}
	}

	absBase := r.Dwim(baseDir, basePath)
	search := []string{filepath.Join(absBase, subdir, source)}

	roleBase := r.unfrack(absBase)
	isRole := r.isRole(absBase)
	if isRole && filepath.Base(absBase) == domain.TasksDirName {
		roleBase = r.unfrack(filepath.Dir(absBase))
	}

	// Paths anchored at roleBase are absolute, so the role base never has to replace baseDir.
	search = append(search, r.Dwim(roleBase, filepath.Join(roleBase, subdir, source)))
	if isRole && !strings.HasSuffix(source, subdir) {
		search = append(search, r.Dwim(baseDir, filepath.Join(roleBase, domain.TasksDirName, source)))
	}
	search = append(search,
		r.Dwim(baseDir, filepath.Join(subdir, source)),
		r.Dwim(baseDir, filepath.Join(roleBase, source)),
		r.Dwim(baseDir, source),
	)
	return search
}

// DwimRelative returns the first candidate that exists.
// When none exists it returns the last candidate with found set to false.
func (r *PathResolver) DwimRelative(baseDir, basePath, subdir, source string) (path string, found bool) {
	candidates := r.Candidates(baseDir, basePath, subdir, source)
	for _, candidate := range candidates {
		if r.exists(candidate) {
			return candidate, true
		}
	}
	return candidates[len(candidates)-1], false
}

// isRole reports whether dir is a role root or the tasks directory of one.
func (r *PathResolver) isRole(dir string) bool {
	for _, entry := range domain.RoleEntrypoints {
		if filepath.Base(dir) == domain.TasksDirName && r.exists(filepath.Join(dir, entry)) {
			return true
		}
		if r.exists(filepath.Join(dir, domain.TasksDirName, entry)) {
			return true
		}
	}
	return false
}

func (r *PathResolver) exists(path string) bool {
	_, err := r.fs.Stat(path)
	return err == nil
}

// unfrack normalizes path with environment and home expansion and resolves symlinks where possible.
func (r *PathResolver) unfrack(path string) string {
	path = r.expandUser(os.ExpandEnv(path))
	path = absolute(path)
	if resolved, err := r.fs.EvalSymlinks(path); err == nil {
		return filepath.Clean(resolved)
	}
	return path
}

// expandUser replaces a leading "~" or "~name" with the matching home directory.
// The path is returned unchanged when the home directory cannot be found.
func (r *PathResolver) expandUser(path string) string {
	if !strings.HasPrefix(path, "~") || r.home == nil {
		return path
	}

	name, rest, _ := strings.Cut(path[1:], "/")
	home, err := r.home(name)
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, rest)
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// unquote strips one pair of matching surrounding quotes that are not escaped.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first != '"' && first != '\'') || first != last {
		return s
	}
	if len(s) > 2 && s[len(s)-2] == '\\' {
		return s
	}
	return s[1 : len(s)-1]
}
