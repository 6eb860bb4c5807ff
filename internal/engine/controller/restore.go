package controller

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Classifier prefixes of zipped output directories attached to build records.
const (
	GeneratedSourcesPrefix = "generatedsources_"
	AttachedOutputPrefix   = "attached-output_"
)

type restoredFile struct {
	artifact domain.Artifact
	path     string
}

// RestoreProjectArtifacts locates every artifact of the matched build in the
// cache, downloading remote ones when needed, and only then copies them into
// the build directory and attaches them to the project. Zipped output
// directories are extracted into the build directory.
func (c *Controller) RestoreProjectArtifacts(ctx context.Context, result domain.CacheResult) bool {
	build, cacheCtx := result.Build, result.Context
	if build == nil || cacheCtx == nil || cacheCtx.InputInfo == nil {
		return false
	}
	project := cacheCtx.Project
	key := cacheCtx.InputInfo.Key(project.Key())

	var primary *restoredFile
	if build.Artifact != nil {
		path, ok := c.cachedFile(ctx, key, build, *build.Artifact)
		if !ok {
			c.logger.Info("Missing file for cached build, cannot restore. File: " + build.Artifact.FileName)
			return false
		}
		primary = &restoredFile{artifact: *build.Artifact, path: path}
	}

	attached := make([]restoredFile, 0, len(build.AttachedArtifacts))
	for _, a := range build.AttachedArtifacts {
		path, ok := c.cachedFile(ctx, key, build, a)
		if !ok {
			c.logger.Error(zerr.With(zerr.With(domain.ErrArtifactMissing, "file", a.FileName), "project", project.Key()))
			return false
		}
		attached = append(attached, restoredFile{artifact: a, path: path})
	}

	for _, f := range attached {
		if dir, ok := outputDir(project, f.artifact.Classifier); ok {
			if err := c.extract(f.path, dir); err != nil {
				c.logger.Error(zerr.With(err, "project", project.Key()))
				return false
			}
		}
	}

	if primary != nil {
		path, err := stage(project, *primary)
		if err != nil {
			c.logger.Error(zerr.With(err, "project", project.Key()))
			return false
		}
		primary.path = path
	}
	for i := range attached {
		path, err := stage(project, attached[i])
		if err != nil {
			c.logger.Error(zerr.With(err, "project", project.Key()))
			return false
		}
		attached[i].path = path
	}

	if primary != nil {
		project.SetArtifactFile(primary.path)
	}
	for _, f := range attached {
		a := f.artifact
		a.Version = project.Version
		a.File = f.path
		project.AttachArtifact(a)
	}
	return true
}

// stage copies a cached file into the build directory of project.
func stage(project *domain.Project, f restoredFile) (string, error) {
	dest := filepath.Join(project.BuildDir(), filepath.Base(f.artifact.FileName))
	if err := copyFile(f.path, dest); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArtifactRestore.Error()), "path", dest)
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// cachedFile returns the cache location of artifact, fetching it from the
// remote for downloaded builds. The file must match the recorded hash.
func (c *Controller) cachedFile(ctx context.Context, key domain.CacheKey, build *domain.Build, artifact domain.Artifact) (string, bool) {
	local := build.Source == domain.SourceLocal
	path := c.local.ArtifactPath(key, artifact, local)

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) || local {
			return "", false
		}
		found, err := c.remote.FetchArtifact(ctx, key, artifact, path)
		if err != nil {
			c.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrArtifactRestore.Error()), "file", artifact.FileName))
			return "", false
		}
		if !found {
			return "", false
		}
	}

	if artifact.FileHash != "" {
		hash, err := c.hasher.HashFile(build.HashFunction, path)
		if err != nil || hash != artifact.FileHash {
			c.logger.Warn("Cached artifact does not match its recorded hash: " + artifact.FileName)
			return "", false
		}
	}
	return path, true
}

// outputDir maps the classifier of a zipped output directory back to the
// directory below the build directory it was packed from.
func outputDir(project *domain.Project, classifier string) (string, bool) {
	for _, prefix := range []string{GeneratedSourcesPrefix, AttachedOutputPrefix} {
		if rel, ok := strings.CutPrefix(classifier, prefix); ok && rel != "" {
			return filepath.Join(project.BuildDir(), filepath.FromSlash(strings.ReplaceAll(rel, "_", "/"))), true
		}
	}
	return "", false
}

func (c *Controller) extract(archive, dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactRestore.Error()), "path", dir)
	}
	if err := c.archiver.Unpack(archive, dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactRestore.Error()), "path", dir)
	}
	return nil
}
