package domain

import "slices"

// Clean lifecycle phases.
const (
	PhasePreClean  = "pre-clean"
	PhaseClean     = "clean"
	PhasePostClean = "post-clean"
)

// Default lifecycle phases referenced by the cache.
const (
	PhaseCompile = "compile"
	PhaseTest    = "test"
	PhasePackage = "package"
	PhaseInstall = "install"
	PhaseDeploy  = "deploy"
)

var cleanLifecycle = []string{PhasePreClean, PhaseClean, PhasePostClean}

var defaultLifecycle = []string{
	"validate",
	"initialize",
	"generate-sources",
	"process-sources",
	"generate-resources",
	"process-resources",
	PhaseCompile,
	"process-classes",
	"generate-test-sources",
	"process-test-sources",
	"generate-test-resources",
	"process-test-resources",
	"test-compile",
	"process-test-classes",
	PhaseTest,
	"prepare-package",
	PhasePackage,
	"pre-integration-test",
	"integration-test",
	"post-integration-test",
	"verify",
	PhaseInstall,
	PhaseDeploy,
}

// CleanPhases returns the phases of the clean lifecycle in order.
func CleanPhases() []string {
	return slices.Clone(cleanLifecycle)
}

// DefaultPhases returns the phases of the default lifecycle in order.
func DefaultPhases() []string {
	return slices.Clone(defaultLifecycle)
}

// IsKnownPhase reports whether phase belongs to the clean or default lifecycle.
func IsKnownPhase(phase string) bool {
	return IsCleanPhase(phase) || slices.Contains(defaultLifecycle, phase)
}

// IsCleanPhase reports whether phase belongs to the clean lifecycle.
func IsCleanPhase(phase string) bool {
	return slices.Contains(cleanLifecycle, phase)
}

// IsLaterPhaseThanClean reports whether phase is a known phase outside the clean lifecycle.
func IsLaterPhaseThanClean(phase string) bool {
	return slices.Contains(defaultLifecycle, phase)
}

// PhaseIndex returns the position of a default lifecycle phase, or -1.
func PhaseIndex(phase string) int {
	return slices.Index(defaultLifecycle, phase)
}

// IsLaterPhase reports whether phase runs after other in the default lifecycle.
// An unknown phase is never later than anything.
func IsLaterPhase(phase, other string) bool {
	i := PhaseIndex(phase)
	if i < 0 {
		return false
	}
	return i > PhaseIndex(other)
}

// HighestPhase returns the latest default lifecycle phase among phases, or "".
func HighestPhase(phases ...string) string {
	highest := ""
	for _, phase := range phases {
		if PhaseIndex(phase) > PhaseIndex(highest) {
			highest = phase
		}
	}
	return highest
}

// HighestExecutionPhase returns the latest default lifecycle phase bound by executions.
func HighestExecutionPhase(executions []*MojoExecution) string {
	phases := make([]string, 0, len(executions))
	for _, e := range executions {
		phases = append(phases, e.Phase)
	}
	return HighestPhase(phases...)
}

// CleanSegment returns the leading run of executions bound to the clean lifecycle.
func CleanSegment(executions []*MojoExecution) []*MojoExecution {
	var segment []*MojoExecution
	for _, e := range executions {
		if !IsCleanPhase(e.Phase) {
			break
		}
		segment = append(segment, e)
	}
	return segment
}

// CachedSegment returns the executions a build record can cover: bound to the
// default lifecycle and not later than the record's highest completed phase.
func CachedSegment(executions []*MojoExecution, build *Build) []*MojoExecution {
	highest := build.HighestCompletedPhase()
	var segment []*MojoExecution
	for _, e := range executions {
		if !IsLaterPhaseThanClean(e.Phase) {
			continue
		}
		if IsLaterPhase(e.Phase, highest) {
			continue
		}
		segment = append(segment, e)
	}
	return segment
}

// PostCachedSegment returns the executions a build record cannot cover: bound
// later than its highest completed phase, or not bound to a known phase.
func PostCachedSegment(executions []*MojoExecution, build *Build) []*MojoExecution {
	highest := build.HighestCompletedPhase()
	var segment []*MojoExecution
	for _, e := range executions {
		if IsCleanPhase(e.Phase) {
			continue
		}
		if !IsLaterPhaseThanClean(e.Phase) || IsLaterPhase(e.Phase, highest) {
			segment = append(segment, e)
		}
	}
	return segment
}
