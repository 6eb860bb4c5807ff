package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/moby/patternmatcher"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver lists project input files below a set of roots.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs walks roots below dir. Files whose base name matches glob are
// kept unless their dir relative path matches one of the excludes, which use
// .dockerignore syntax. Missing roots are skipped. The result holds slash
// separated paths relative to dir, sorted case-insensitively.
func (r *Resolver) ResolveInputs(dir string, roots []string, glob string, excludes []string) ([]string, error) {
	matcher, err := patternmatcher.New(excludes)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid exclude pattern"), "excludes", strings.Join(excludes, ","))
	}

	seen := make(map[string]struct{})
	var files []string

	add := func(path string) error {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", path)
		}
		rel = filepath.ToSlash(rel)
		if _, ok := seen[rel]; ok {
			return nil
		}
		ok, err := matchesGlob(glob, filepath.Base(path))
		if err != nil || !ok {
			return err
		}
		seen[rel] = struct{}{}
		files = append(files, rel)
		return nil
	}

	excluded := func(path string) bool {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return false
		}
		hit, err := matcher.MatchesOrParentMatches(filepath.ToSlash(rel))
		return err == nil && hit
	}

	for _, root := range roots {
		abs := root
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(dir, root)
		}

		info, err := os.Stat(abs)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", abs)
		}

		if !info.IsDir() {
			if !excluded(abs) {
				if err := add(abs); err != nil {
					return nil, err
				}
			}
			continue
		}

		skip := func(path string, _ iofs.DirEntry) bool { return excluded(path) }
		for path, err := range r.walker.WalkFiles(abs, skip) {
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", abs)
			}
			if err := add(path); err != nil {
				return nil, err
			}
		}
	}

	slices.SortFunc(files, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return files, nil
}

func matchesGlob(glob, name string) (bool, error) {
	if glob == "" || glob == "*" {
		return true, nil
	}
	ok, err := filepath.Match(glob, name)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "invalid input glob"), "glob", glob)
	}
	return ok, nil
}
