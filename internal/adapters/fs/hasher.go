package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/opencontainers/go-digest"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// textProbeSize is how much of a file is inspected to decide whether it is text.
const textProbeSize = 8 << 10

// Hasher digests files and byte slices with SHA-256 or xxhash64.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile hashes the content of path. Text files have CRLF line endings
// normalized to LF first so that checkouts on different platforms agree.
func (h *Hasher) HashFile(algorithm, path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", path)
	}
	if isText(data) {
		data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	}
	return h.HashBytes(algorithm, data)
}

// HashBytes hashes data with the named algorithm.
func (h *Hasher) HashBytes(algorithm string, data []byte) (string, error) {
	switch algorithm {
	case domain.HashSHA256, "":
		return digest.SHA256.FromBytes(data).Encoded(), nil
	case domain.HashXX:
		return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
	default:
		return "", zerr.With(domain.ErrUnsupportedHashAlgorithm, "algorithm", algorithm)
	}
}

func isText(data []byte) bool {
	probe := data
	if len(probe) > textProbeSize {
		probe = probe[:textProbeSize]
	}
	return bytes.IndexByte(probe, 0) < 0
}
