// Package remote implements the shared build cache transports.
//
// A transport is selected by name once per session. Every transport is wrapped
// so that request failures read as misses unless fail-fast is configured.
package remote

import (
	"context"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
)

// Noop is the remote used when no remote is configured.
type Noop struct{}

var _ ports.RemoteRepository = Noop{}

// Enabled implements ports.RemoteRepository.
func (Noop) Enabled() bool { return false }

// FindBuild implements ports.RemoteRepository.
func (Noop) FindBuild(context.Context, domain.CacheKey) (*domain.Build, error) { return nil, nil }

// FetchArtifact implements ports.RemoteRepository.
func (Noop) FetchArtifact(context.Context, domain.CacheKey, domain.Artifact, string) (bool, error) {
	return false, nil
}

// SaveBuild implements ports.RemoteRepository.
func (Noop) SaveBuild(context.Context, domain.CacheKey, *domain.Build) error { return nil }

// SaveArtifactFile implements ports.RemoteRepository.
func (Noop) SaveArtifactFile(context.Context, domain.CacheKey, domain.Artifact) error { return nil }

// ResourceURL implements ports.RemoteRepository.
func (Noop) ResourceURL(domain.CacheKey, string) string { return "" }

// Close implements ports.RemoteRepository.
func (Noop) Close() error { return nil }

// Tolerant turns request failures of a transport into misses and no-ops.
// With failFast set errors are returned unchanged.
type Tolerant struct {
	next     ports.RemoteRepository
	logger   ports.Logger
	failFast bool
}

var _ ports.RemoteRepository = (*Tolerant)(nil)

// NewTolerant wraps next.
func NewTolerant(next ports.RemoteRepository, logger ports.Logger, failFast bool) *Tolerant {
	return &Tolerant{next: next, logger: logger, failFast: failFast}
}

func (t *Tolerant) absorb(err error) error {
	if err == nil || t.failFast {
		return err
	}
	t.logger.Error(err)
	return nil
}

// Enabled implements ports.RemoteRepository.
func (t *Tolerant) Enabled() bool {
	return t.next.Enabled()
}

// FindBuild implements ports.RemoteRepository.
func (t *Tolerant) FindBuild(ctx context.Context, key domain.CacheKey) (*domain.Build, error) {
	build, err := t.next.FindBuild(ctx, key)
	if err != nil {
		return nil, t.absorb(err)
	}
	return build, nil
}

// FetchArtifact implements ports.RemoteRepository.
func (t *Tolerant) FetchArtifact(ctx context.Context, key domain.CacheKey, artifact domain.Artifact, dest string) (bool, error) {
	found, err := t.next.FetchArtifact(ctx, key, artifact, dest)
	if err != nil {
		return false, t.absorb(err)
	}
	return found, nil
}

// SaveBuild implements ports.RemoteRepository.
func (t *Tolerant) SaveBuild(ctx context.Context, key domain.CacheKey, build *domain.Build) error {
	return t.absorb(t.next.SaveBuild(ctx, key, build))
}

// SaveArtifactFile implements ports.RemoteRepository.
func (t *Tolerant) SaveArtifactFile(ctx context.Context, key domain.CacheKey, artifact domain.Artifact) error {
	return t.absorb(t.next.SaveArtifactFile(ctx, key, artifact))
}

// ResourceURL implements ports.RemoteRepository.
func (t *Tolerant) ResourceURL(key domain.CacheKey, fileName string) string {
	return t.next.ResourceURL(key, fileName)
}

// Close implements ports.RemoteRepository.
func (t *Tolerant) Close() error {
	return t.next.Close()
}

// resourcePath returns "v1/<groupId>/<artifactId>/<checksum>/<fileName>".
func resourcePath(key domain.CacheKey, fileName string) string {
	groupID, artifactID, _ := strings.Cut(key.Project, ":")
	return strings.Join([]string{domain.CacheLayoutVersion, groupID, artifactID, key.Checksum, fileName}, "/")
}
