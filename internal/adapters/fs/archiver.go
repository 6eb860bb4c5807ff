package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/moby/patternmatcher"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Archiver)(nil)

// archiveEpoch is the modification time stamped on every entry so that equal
// inputs produce byte identical archives.
var archiveEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Archiver packs directories into zip files and extracts them again.
type Archiver struct {
	walker *Walker
}

// NewArchiver creates a new Archiver.
func NewArchiver(walker *Walker) *Archiver {
	return &Archiver{walker: walker}
}

// Pack zips the files below dir into dest. Paths relative to dir that match an
// exclude pattern are left out. It reports false, and writes nothing, when no
// file qualifies.
func (a *Archiver) Pack(dir, dest string, excludes []string) (bool, error) {
	matcher, err := patternmatcher.New(excludes)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrArchiveFailed.Error())
	}

	var files []string
	skip := func(path string, _ iofs.DirEntry) bool {
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return false
		}
		hit, _ := matcher.MatchesOrParentMatches(filepath.ToSlash(rel))
		return hit
	}
	for path, walkErr := range a.walker.WalkFiles(dir, skip) {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(walkErr, domain.ErrArchiveFailed.Error()), "dir", dir)
		}
		files = append(files, path)
	}
	if len(files) == 0 {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", dest)
	}
	out, err := os.Create(dest) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", dest)
	}

	zw := zip.NewWriter(out)
	for _, path := range files {
		if err := addToArchive(zw, dir, path); err != nil {
			_ = zw.Close()
			_ = out.Close()
			return false, err
		}
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return false, zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", dest)
	}
	if err := out.Close(); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", dest)
	}
	return true, nil
}

func addToArchive(zw *zip.Writer, dir, path string) error {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     filepath.ToSlash(rel),
		Method:   zip.Deflate,
		Modified: archiveEpoch,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from walking dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", path)
	}
	return nil
}

// Unpack extracts archive into dir. Entries escaping dir are rejected.
func (a *Archiver) Unpack(archive, dir string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "path", archive)
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if err := extract(f, dir); err != nil {
			return zerr.With(err, "archive", archive)
		}
	}
	return nil
}

func extract(f *zip.File, dir string) error {
	target := filepath.Join(dir, filepath.FromSlash(f.Name))
	if target != filepath.Clean(dir) && !strings.HasPrefix(target, filepath.Clean(dir)+string(filepath.Separator)) {
		return zerr.With(domain.ErrArchiveFailed, "entry", f.Name)
	}
	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, domain.DirPerm)
	}
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "entry", f.Name)
	}

	rc, err := f.Open()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "entry", f.Name)
	}
	defer func() { _ = rc.Close() }()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm) //nolint:gosec // target is checked against dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "entry", f.Name)
	}
	if _, err := io.Copy(out, rc); err != nil { //nolint:gosec // archives are produced by Pack
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "entry", f.Name)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveFailed.Error()), "entry", f.Name)
	}
	return nil
}
