package domain

import "go.trai.ch/zerr"

var (
	// ErrFingerprintUnavailable is returned when a project's inputs cannot be resolved for hashing.
	ErrFingerprintUnavailable = zerr.New("fingerprint unavailable")

	// ErrUnresolvedDependency is returned when a dependency has no resolved file and is not a reactor project.
	ErrUnresolvedDependency = zerr.New("unresolved dependency")

	// ErrUpstreamCycle is returned when upstream cache keys depend on each other.
	ErrUpstreamCycle = zerr.New("cycle detected while resolving upstream cache keys")

	// ErrInputReadFailed is returned when an input file cannot be read for hashing.
	ErrInputReadFailed = zerr.New("failed to read input file")

	// ErrUnsupportedHashAlgorithm is returned when the configured hash algorithm is unknown.
	ErrUnsupportedHashAlgorithm = zerr.New("unsupported hash algorithm")

	// ErrRepositoryUnavailable is returned when a cache repository cannot be constructed.
	ErrRepositoryUnavailable = zerr.New("cache repository unavailable")

	// ErrUnknownTransport is returned when the configured remote transport name is not recognized.
	ErrUnknownTransport = zerr.New("unknown remote cache transport")

	// ErrCacheIO is returned when a cache repository read or write fails.
	ErrCacheIO = zerr.New("cache i/o failure")

	// ErrBuildRecordRead is returned when a build record cannot be read.
	ErrBuildRecordRead = zerr.New("failed to read build record")

	// ErrBuildRecordDecode is returned when a build record cannot be decoded.
	ErrBuildRecordDecode = zerr.New("failed to decode build record")

	// ErrBuildRecordEncode is returned when a build record cannot be encoded.
	ErrBuildRecordEncode = zerr.New("failed to encode build record")

	// ErrBuildRecordWrite is returned when a build record cannot be written.
	ErrBuildRecordWrite = zerr.New("failed to write build record")

	// ErrArtifactWrite is returned when an artifact file cannot be stored in the cache.
	ErrArtifactWrite = zerr.New("failed to store artifact file")

	// ErrArtifactRestore is returned when an artifact cannot be materialized from the cache.
	ErrArtifactRestore = zerr.New("failed to restore artifact")

	// ErrArtifactMissing is returned when a build record references an artifact that is not in the cache.
	ErrArtifactMissing = zerr.New("cached artifact is missing")

	// ErrRemoteRequest is returned when a remote cache request fails.
	ErrRemoteRequest = zerr.New("remote cache request failed")

	// ErrRemoteStatus is returned when a remote cache responds with an unexpected status.
	ErrRemoteStatus = zerr.New("unexpected remote cache response status")

	// ErrIndexOpenFailed is returned when the local build index cannot be opened.
	ErrIndexOpenFailed = zerr.New("failed to open local build index")

	// ErrIndexWriteFailed is returned when the local build index cannot be updated.
	ErrIndexWriteFailed = zerr.New("failed to update local build index")

	// ErrPropertyNotAccessible is returned when a mojo parameter cannot be read by name.
	ErrPropertyNotAccessible = zerr.New("mojo property is not accessible")

	// ErrUnterminatedExpression is returned when a ${...} expression has no closing brace.
	ErrUnterminatedExpression = zerr.New("unterminated expression")

	// ErrMojoConfigurationFailed is returned when a mojo cannot be configured for an execution.
	ErrMojoConfigurationFailed = zerr.New("failed to configure mojo")

	// ErrMojoExecutionFailed is returned when a mojo execution fails.
	ErrMojoExecutionFailed = zerr.New("mojo execution failed")

	// ErrCacheRestoreFailed is returned when fail-fast is set and a project could not be served from the cache.
	ErrCacheRestoreFailed = zerr.New("failed to restore project from cache")

	// ErrCacheSaveFailed is returned when fail-fast is set and a build could not be saved.
	ErrCacheSaveFailed = zerr.New("failed to save project in cache")

	// ErrProjectBuildFailed wraps the failure of one reactor project.
	ErrProjectBuildFailed = zerr.New("project build failed")

	// ErrBuildExecutionFailed is returned when at least one project of the reactor failed to build.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrConfigReadFailed is returned when the cache configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read cache configuration")

	// ErrConfigInvalid is returned when the cache configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid cache configuration")

	// ErrDescriptorReadFailed is returned when a project descriptor cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read project descriptor")

	// ErrDescriptorParseFailed is returned when a project descriptor cannot be parsed.
	ErrDescriptorParseFailed = zerr.New("failed to parse project descriptor")

	// ErrInvalidScript is returned when an execution's run command is neither a string nor a list of strings.
	ErrInvalidScript = zerr.New("run must be a string or a list of strings")

	// ErrMissingCoordinates is returned when a project descriptor lacks groupId or artifactId.
	ErrMissingCoordinates = zerr.New("project descriptor is missing groupId or artifactId")

	// ErrDuplicateProject is returned when two reactor modules share coordinates.
	ErrDuplicateProject = zerr.New("duplicate project in reactor")

	// ErrCycleDetected is returned when the reactor dependency graph has a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrMissingProject is returned when a reactor edge references an unknown project.
	ErrMissingProject = zerr.New("missing reactor project")

	// ErrReactorNotFound is returned when no reactor descriptor is found walking up from the working directory.
	ErrReactorNotFound = zerr.New("could not find memo.work.yaml or memo.yaml")

	// ErrUnknownPhase is returned when a requested lifecycle phase does not exist.
	ErrUnknownPhase = zerr.New("unknown lifecycle phase")

	// ErrNoGoalsSpecified is returned when a build is requested without goals.
	ErrNoGoalsSpecified = zerr.New("no goals specified")

	// ErrInvalidGoal is returned when a CLI goal cannot be parsed as plugin:goal.
	ErrInvalidGoal = zerr.New("invalid goal, expected phase or plugin:goal")

	// ErrBaselineNotFound is returned when the baseline build cannot be located.
	ErrBaselineNotFound = zerr.New("baseline build not found")

	// ErrReportWriteFailed is returned when a cache report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write cache report")

	// ErrArchiveFailed is returned when an output directory cannot be archived or extracted.
	ErrArchiveFailed = zerr.New("failed to process output archive")
)
