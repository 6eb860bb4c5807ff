package ports

import "go.trai.ch/memo/internal/core/domain"

//go:generate mockgen -source=cache_config.go -destination=mocks/mock_cache_config.go -package=mocks

// CacheConfig is the session scoped cache configuration.
// Initialize is idempotent; every other method reflects the settings loaded by it.
type CacheConfig interface {
	// Initialize loads the configuration once and reports the resulting state.
	Initialize() domain.CacheState
	// Settings returns the loaded settings.
	Settings() domain.CacheSettings
	// IsEnabled reports whether the cache is enabled.
	IsEnabled() bool
	// IsFailFast reports whether cache failures terminate the build.
	IsFailFast() bool
	// TrackedProperties returns the properties reconciled for an execution.
	TrackedProperties(execution *domain.MojoExecution) []domain.TrackedProperty
	// IsLogAllProperties reports whether every parameter of an execution is recorded.
	IsLogAllProperties(execution *domain.MojoExecution) bool
	// LoggedProperties returns the parameters recorded for an execution.
	LoggedProperties(execution *domain.MojoExecution) []string
	// NologProperties returns the parameters never recorded for an execution.
	NologProperties(execution *domain.MojoExecution) []string
	// IsForcedExecution reports whether the execution must always run.
	IsForcedExecution(execution *domain.MojoExecution) bool
	// CanIgnoreMissing reports whether the execution may be absent from a cached build.
	CanIgnoreMissing(execution *domain.MojoExecution) bool
	// EffectivePomExcludeProperties returns plugin parameters left out of the fingerprint.
	EffectivePomExcludeProperties(plugin domain.PluginRef) []string
}

// CacheConfigLoader creates the cache configuration of a session.
type CacheConfigLoader interface {
	// Load prepares the configuration for the reactor at root. Overrides are
	// keyed by configuration key (e.g. "failFast") and win over the file and
	// the environment. Nothing is read until Initialize is called.
	Load(root string, overrides map[string]any) CacheConfig
}
