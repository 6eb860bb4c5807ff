package domain

// CacheState is the lifecycle state of the cache configuration.
type CacheState int

const (
	// CacheDisabled means no cache operation may run in this session.
	CacheDisabled CacheState = iota
	// CacheInitialized means the configuration loaded and the cache is enabled.
	CacheInitialized
)

// String implements fmt.Stringer.
func (s CacheState) String() string {
	if s == CacheInitialized {
		return "INITIALIZED"
	}
	return "DISABLED"
}

// RestoreStatus is the outcome of a cache lookup.
type RestoreStatus int

const (
	// RestoreEmpty means nothing usable was found.
	RestoreEmpty RestoreStatus = iota
	// RestoreFailure means a record was found but cannot be used.
	RestoreFailure
	// RestorePartial means a record covers only part of the requested lifecycle.
	RestorePartial
	// RestoreSuccess means a record covers the requested lifecycle.
	RestoreSuccess
)

// String implements fmt.Stringer.
func (s RestoreStatus) String() string {
	switch s {
	case RestoreFailure:
		return "FAILURE"
	case RestorePartial:
		return "PARTIAL"
	case RestoreSuccess:
		return "SUCCESS"
	default:
		return "EMPTY"
	}
}

// CacheSource tells where a build record came from.
type CacheSource string

const (
	// SourceLocal is the local cache.
	SourceLocal CacheSource = "LOCAL"
	// SourceRemote is the remote cache.
	SourceRemote CacheSource = "REMOTE"
	// SourceBuild means the project was built in this session.
	SourceBuild CacheSource = "BUILD"
)

// CacheContext carries what restoration and save need about a project build attempt.
type CacheContext struct {
	Session   *Session
	Project   *Project
	InputInfo *ProjectsInputInfo
}

// CacheResult is the transient outcome of a lookup for one project.
type CacheResult struct {
	Status  RestoreStatus
	Build   *Build
	Context *CacheContext
}

// EmptyResult is a miss without any context.
func EmptyResult() CacheResult {
	return CacheResult{Status: RestoreEmpty}
}

// EmptyResultWithContext is a miss that still carries the computed inputs so the build can be saved.
func EmptyResultWithContext(ctx *CacheContext) CacheResult {
	return CacheResult{Status: RestoreEmpty, Context: ctx}
}

// FailureResult is a found record that cannot be used.
func FailureResult(build *Build, ctx *CacheContext) CacheResult {
	return CacheResult{Status: RestoreFailure, Build: build, Context: ctx}
}

// PartialResult is a found record that covers part of the requested lifecycle.
func PartialResult(build *Build, ctx *CacheContext) CacheResult {
	return CacheResult{Status: RestorePartial, Build: build, Context: ctx}
}

// SuccessResult is a found record that covers the requested lifecycle.
func SuccessResult(build *Build, ctx *CacheContext) CacheResult {
	return CacheResult{Status: RestoreSuccess, Build: build, Context: ctx}
}

// IsSuccess reports a full hit.
func (r CacheResult) IsSuccess() bool {
	return r.Status == RestoreSuccess
}

// IsPartialSuccess reports a partial hit.
func (r CacheResult) IsPartialSuccess() bool {
	return r.Status == RestorePartial
}

// IsRestorable reports whether restoration may be attempted.
func (r CacheResult) IsRestorable() bool {
	return r.IsSuccess() || r.IsPartialSuccess()
}

// Source returns where the matched record came from, or SourceBuild if none matched.
func (r CacheResult) Source() CacheSource {
	if r.Build == nil || r.Build.Source == "" || r.Status == RestoreEmpty || r.Status == RestoreFailure {
		return SourceBuild
	}
	return r.Build.Source
}

// InputInfo returns the computed project inputs, if any.
func (r CacheResult) InputInfo() *ProjectsInputInfo {
	if r.Context == nil {
		return nil
	}
	return r.Context.InputInfo
}
