package ports

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
)

//go:generate mockgen -source=checksum.go -destination=mocks/mock_checksum.go -package=mocks

// Hasher computes digests with a named algorithm.
type Hasher interface {
	// HashFile hashes a file, normalizing line endings of text content.
	HashFile(algorithm, path string) (string, error)
	// HashBytes hashes data.
	HashBytes(algorithm string, data []byte) (string, error)
}

// InputResolver lists the input files of a project.
type InputResolver interface {
	// ResolveInputs walks roots below dir and returns matching files sorted
	// case-insensitively by their slash separated path relative to dir.
	ResolveInputs(dir string, roots []string, glob string, excludes []string) ([]string, error)
}

// InputCalculator computes the fingerprint of a project.
type InputCalculator interface {
	// CalculateInput returns the project's input info. Failures wrap
	// domain.ErrFingerprintUnavailable.
	CalculateInput(ctx context.Context, session *domain.Session, project *domain.Project) (*domain.ProjectsInputInfo, error)
}

// Archiver packs output directories into attachable archives.
type Archiver interface {
	// Pack zips dir into dest, skipping excluded paths. It reports false when dir has no files.
	Pack(dir, dest string, excludes []string) (bool, error)
	// Unpack extracts archive into dir.
	Unpack(archive, dir string) error
}
