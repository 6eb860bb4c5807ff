// Package localrepo stores build records and artifacts in a directory tree
// indexed by a leveldb database.
//
// Layout: <location>/v1/<groupId>/<artifactId>/<checksum>/ holds the copy of a
// remote build, its local/ sub directory holds the build produced on this
// machine. The index lives in <location>/index.
package localrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LocalRepository = (*Repository)(nil)

// Option configures a Repository.
type Option func(*Repository)

// WithClock replaces the time source used for history and lookup throttling.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// Repository implements ports.LocalRepository.
type Repository struct {
	root            string
	maxBuildsCached int
	logger          ports.Logger
	index           *index
	now             func() time.Time
}

// Open opens, creating if needed, the repository at location.
func Open(location string, maxBuildsCached int, logger ports.Logger, opts ...Option) (*Repository, error) {
	if err := os.MkdirAll(location, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryUnavailable.Error()), "path", location)
	}
	idx, err := openIndex(filepath.Join(location, domain.IndexDirName))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRepositoryUnavailable.Error())
	}

	r := &Repository{
		root:            filepath.Join(location, domain.CacheLayoutVersion),
		maxBuildsCached: maxBuildsCached,
		logger:          logger,
		index:           idx,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close closes the index.
func (r *Repository) Close() error {
	return r.index.close()
}

func (r *Repository) projectDir(project string) string {
	groupID, artifactID, _ := strings.Cut(project, ":")
	return filepath.Join(r.root, groupID, artifactID)
}

func (r *Repository) entryDir(key domain.CacheKey, local bool) string {
	dir := filepath.Join(r.projectDir(key.Project), key.Checksum)
	if local {
		dir = filepath.Join(dir, domain.LocalBuildDirName)
	}
	return dir
}

// FindLocalBuild returns the build produced on this machine for key.
func (r *Repository) FindLocalBuild(_ context.Context, key domain.CacheKey) (*domain.Build, error) {
	return r.readBuild(key, true, domain.SourceLocal)
}

// FindBuild returns the downloaded copy of a remote build for key.
func (r *Repository) FindBuild(_ context.Context, key domain.CacheKey) (*domain.Build, error) {
	return r.readBuild(key, false, domain.SourceRemote)
}

// readBuild loads a build record. A record that cannot be decoded is deleted and reported as absent.
func (r *Repository) readBuild(key domain.CacheKey, local bool, source domain.CacheSource) (*domain.Build, error) {
	path := filepath.Join(r.entryDir(key, local), domain.BuildRecordFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the cache key
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildRecordRead.Error()), "path", path)
	}

	var build domain.Build
	if err := json.Unmarshal(data, &build); err != nil {
		r.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrBuildRecordDecode.Error()), "path", path))
		r.logger.Warn("Build record is not valid, deleting: " + path)
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			return nil, zerr.With(zerr.Wrap(rmErr, domain.ErrCacheIO.Error()), "path", path)
		}
		return nil, nil
	}
	build.Source = source
	return &build, nil
}

// SaveBuild writes the build record of key and records it in the build history.
func (r *Repository) SaveBuild(_ context.Context, key domain.CacheKey, build *domain.Build, local bool) error {
	data, err := json.MarshalIndent(build, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildRecordEncode.Error()), "key", key.String())
	}

	path := filepath.Join(r.entryDir(key, local), domain.BuildRecordFileName)
	if err := writeAtomic(path, func(w io.Writer) error {
		_, werr := w.Write(data)
		return werr
	}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildRecordWrite.Error()), "path", path)
	}
	return r.index.recordBuild(key, r.now())
}

// SaveArtifactFile copies artifact.File into the entry of key.
func (r *Repository) SaveArtifactFile(_ context.Context, key domain.CacheKey, artifact domain.Artifact, local bool) error {
	dest := r.ArtifactPath(key, artifact, local)

	src, err := os.Open(artifact.File)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWrite.Error()), "path", artifact.File)
	}
	defer func() { _ = src.Close() }()

	if err := writeAtomic(dest, func(w io.Writer) error {
		_, cerr := io.Copy(w, src)
		return cerr
	}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWrite.Error()), "path", dest)
	}
	return nil
}

// ArtifactPath returns where the entry of key keeps artifact.
func (r *Repository) ArtifactPath(key domain.CacheKey, artifact domain.Artifact, local bool) string {
	return filepath.Join(r.entryDir(key, local), filepath.Base(artifact.FileName))
}

// NeedsRemoteLookup reports whether the throttle allows asking the remote for key.
func (r *Repository) NeedsRemoteLookup(_ context.Context, key domain.CacheKey) bool {
	marker, ok := r.index.lookup(key)
	if !ok {
		return true
	}
	return lookupDue(marker, r.now())
}

// MarkRemoteLookup records an unsuccessful remote lookup of key.
func (r *Repository) MarkRemoteLookup(_ context.Context, key domain.CacheKey) error {
	return r.index.markLookup(key, r.now())
}

// BeforeSave keeps at most maxBuildsCached builds of key's project, counting
// the one about to be saved, and removes a stale local entry for key.
func (r *Repository) BeforeSave(ctx context.Context, key domain.CacheKey) error {
	entries, err := r.index.builds(key.Project)
	if err != nil {
		return err
	}

	kept := 0
	for _, entry := range entries {
		if entry.checksum == key.Checksum {
			continue
		}
		kept++
		if kept < r.maxBuildsCached {
			continue
		}
		r.logger.Debug(fmt.Sprintf("Evicting cached build %s@%s", key.Project, entry.checksum))
		if err := r.removeEntry(key.Project, entry.checksum); err != nil {
			return err
		}
	}
	return r.ClearCache(ctx, key)
}

func (r *Repository) removeEntry(project, checksum string) error {
	dir := filepath.Join(r.projectDir(project), checksum)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheIO.Error()), "path", dir)
	}
	return r.index.forget(project, checksum)
}

// ClearCache removes the locally produced entry of key.
func (r *Repository) ClearCache(_ context.Context, key domain.CacheKey) error {
	dir := r.entryDir(key, true)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheIO.Error()), "path", dir)
	}
	return nil
}

// Builds lists the saved builds of project, newest first.
func (r *Repository) Builds(_ context.Context, project string) ([]domain.CacheKey, error) {
	entries, err := r.index.builds(project)
	if err != nil {
		return nil, err
	}
	keys := make([]domain.CacheKey, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, domain.NewCacheKey(project, entry.checksum))
	}
	return keys, nil
}

// Purge removes every entry of projects, or the whole cache when projects is empty.
func (r *Repository) Purge(_ context.Context, projects []string) error {
	if len(projects) == 0 {
		if err := os.RemoveAll(r.root); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheIO.Error()), "path", r.root)
		}
		return r.index.purge("")
	}

	for _, project := range projects {
		dir := r.projectDir(project)
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheIO.Error()), "path", dir)
		}
		if err := r.index.purge(project); err != nil {
			return err
		}
	}
	return nil
}

// writeAtomic writes path through a temporary file in the same directory.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
