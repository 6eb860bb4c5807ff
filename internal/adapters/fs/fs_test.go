package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/fs"
	"go.trai.ch/memo/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_SkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config"), "x")
	writeFile(t, filepath.Join(root, ".memo", "cache", "a"), "x")
	writeFile(t, filepath.Join(root, "src", "Main.java"), "class Main {}")

	var files []string
	for path, err := range fs.NewWalker().WalkFiles(root, nil) {
		require.NoError(t, err)
		files = append(files, path)
	}

	assert.Equal(t, []string{filepath.Join(root, "src", "Main.java")}, files)
}

func TestWalker_MissingRoot(t *testing.T) {
	t.Parallel()

	var errs int
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

func TestHasher_HashBytes(t *testing.T) {
	t.Parallel()

	h := fs.NewHasher()

	sha, err := h.HashBytes(domain.HashSHA256, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sha)

	xx, err := h.HashBytes(domain.HashXX, []byte("hello"))
	require.NoError(t, err)
	assert.Len(t, xx, 16)

	_, err = h.HashBytes("MD5", []byte("hello"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedHashAlgorithm.Error())
}

func TestHasher_HashFile_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unix := filepath.Join(dir, "unix.txt")
	windows := filepath.Join(dir, "windows.txt")
	binary := filepath.Join(dir, "data.bin")
	writeFile(t, unix, "a\nb\n")
	writeFile(t, windows, "a\r\nb\r\n")
	writeFile(t, binary, "a\r\n\x00b")

	h := fs.NewHasher()
	for _, alg := range []string{domain.HashSHA256, domain.HashXX} {
		u, err := h.HashFile(alg, unix)
		require.NoError(t, err)
		w, err := h.HashFile(alg, windows)
		require.NoError(t, err)
		assert.Equal(t, u, w, alg)

		b, err := h.HashFile(alg, binary)
		require.NoError(t, err)
		raw, err := h.HashBytes(alg, []byte("a\r\n\x00b"))
		require.NoError(t, err)
		assert.Equal(t, raw, b, "binary content is hashed verbatim")
	}
}

func TestHasher_HashFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := fs.NewHasher().HashFile(domain.HashSHA256, filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInputReadFailed.Error())
}
