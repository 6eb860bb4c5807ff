package ports

import (
	"context"

	"go.trai.ch/memo/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// LocalRepository stores build records and artifact files on the local machine.
// Records produced by this machine are kept apart from copies downloaded from a remote.
type LocalRepository interface {
	// FindLocalBuild returns the locally produced build for key, or nil if there is none.
	FindLocalBuild(ctx context.Context, key domain.CacheKey) (*domain.Build, error)
	// FindBuild returns the downloaded remote build for key, or nil if there is none.
	FindBuild(ctx context.Context, key domain.CacheKey) (*domain.Build, error)
	// SaveBuild persists a build record; local selects the locally produced slot.
	SaveBuild(ctx context.Context, key domain.CacheKey, build *domain.Build, local bool) error
	// SaveArtifactFile copies artifact.File into the entry for key.
	SaveArtifactFile(ctx context.Context, key domain.CacheKey, artifact domain.Artifact, local bool) error
	// ArtifactPath returns where the entry for key keeps artifact.
	ArtifactPath(key domain.CacheKey, artifact domain.Artifact, local bool) string
	// NeedsRemoteLookup reports whether the remote should be asked for key again.
	NeedsRemoteLookup(ctx context.Context, key domain.CacheKey) bool
	// MarkRemoteLookup records that the remote was asked for key.
	MarkRemoteLookup(ctx context.Context, key domain.CacheKey) error
	// BeforeSave evicts the oldest builds of key's project beyond the configured
	// maximum and removes a stale locally produced entry for key.
	BeforeSave(ctx context.Context, key domain.CacheKey) error
	// ClearCache removes the locally produced entry for key.
	ClearCache(ctx context.Context, key domain.CacheKey) error
	// Builds lists the known cache keys of a project, newest first.
	Builds(ctx context.Context, project string) ([]domain.CacheKey, error)
	// Purge removes every entry of the given projects, or everything when projects is empty.
	Purge(ctx context.Context, projects []string) error
	// Close releases the repository.
	Close() error
}

// RemoteRepository is a shared build cache reached over a transport.
// Find methods return nil, nil when nothing is stored for the key.
type RemoteRepository interface {
	// Enabled reports whether a remote is configured.
	Enabled() bool
	// FindBuild returns the remote build for key.
	FindBuild(ctx context.Context, key domain.CacheKey) (*domain.Build, error)
	// FetchArtifact downloads artifact into dest and reports whether it existed.
	FetchArtifact(ctx context.Context, key domain.CacheKey, artifact domain.Artifact, dest string) (bool, error)
	// SaveBuild uploads a build record.
	SaveBuild(ctx context.Context, key domain.CacheKey, build *domain.Build) error
	// SaveArtifactFile uploads artifact.File.
	SaveArtifactFile(ctx context.Context, key domain.CacheKey, artifact domain.Artifact) error
	// ResourceURL returns the location of a file of the entry for key.
	ResourceURL(key domain.CacheKey, fileName string) string
	// Close releases the transport.
	Close() error
}

// LocalRepositoryOpener opens the local repository of a session.
type LocalRepositoryOpener interface {
	// Open opens the repository rooted at location.
	Open(location string, maxBuildsCached int) (LocalRepository, error)
}

// RemoteRepositoryProvider selects and constructs the remote transport of a session.
type RemoteRepositoryProvider interface {
	// Provide constructs the remote repository. Construction failures are
	// returned immediately and wrap domain.ErrRepositoryUnavailable.
	Provide(ctx context.Context, settings domain.RemoteSettings, failFast bool) (RemoteRepository, error)
}

// BaselineRepository locates the reference builds of a baseline session through its cache report.
type BaselineRepository interface {
	// FindBaselineBuild returns the baseline build of project, or nil if the baseline has none.
	FindBaselineBuild(ctx context.Context, project *domain.Project) (*domain.Build, error)
}
