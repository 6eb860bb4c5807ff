// Package reconciler decides whether a cached mojo execution may be skipped
// by comparing its recorded tracked properties with the live mojo configuration.
package reconciler

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconciler implements ports.Reconciler.
type Reconciler struct {
	config  ports.CacheConfig
	plugins ports.PluginManager
	logger  ports.Logger
	now     func() time.Time
}

var _ ports.Reconciler = (*Reconciler)(nil)

// New creates a Reconciler.
func New(config ports.CacheConfig, plugins ports.PluginManager, logger ports.Logger) *Reconciler {
	return &Reconciler{
		config:  config,
		plugins: plugins,
		logger:  logger,
		now:     time.Now,
	}
}

// VerifyCacheConsistency reports whether execution may be skipped on the
// strength of build. Executions without tracked properties are trusted.
func (r *Reconciler) VerifyCacheConsistency(
	ctx context.Context,
	execution *domain.MojoExecution,
	build *domain.Build,
	project *domain.Project,
) bool {
	tracked := r.config.TrackedProperties(execution)
	if len(tracked) == 0 {
		r.logger.Info("Skipping plugin execution (cached): " + execution.GoalName())
		return true
	}

	start := r.now()
	mojo, err := r.plugins.ConfiguredMojo(ctx, project, execution)
	if err != nil {
		r.logger.Error(zerr.With(err, "project", project.Key()))
		return false
	}
	defer r.plugins.ReleaseMojo(mojo)

	if completed, ok := build.FindExecution(execution.Key()); ok && !r.paramsMatched(execution, mojo, completed, tracked) {
		r.logger.Info("Mojo cached parameters mismatch with actual, forcing full project build")
		return false
	}

	elapsed := r.now().Sub(start).Milliseconds()
	r.logger.Info(fmt.Sprintf("Skipping plugin execution (reconciled in %d millis): %s", elapsed, execution.GoalName()))
	return true
}

// paramsMatched compares every tracked property and stops at the first mismatch.
// A live value equal to the property's skip value is tolerated. Unconfigured
// properties take their default value.
func (r *Reconciler) paramsMatched(
	execution *domain.MojoExecution,
	mojo ports.Mojo,
	completed domain.CompletedExecution,
	tracked []domain.TrackedProperty,
) bool {
	for _, property := range tracked {
		expected := property.DefaultValue
		if recorded, ok := completed.Property(property.PropertyName); ok {
			expected = recorded.Value
		}

		current, err := mojo.Parameter(property.PropertyName)
		if err != nil {
			if property.DefaultValue == "" {
				r.logger.Error(zerr.With(err, "goal", execution.GoalName()))
				return false
			}
			current = property.DefaultValue
		}

		if current == expected {
			continue
		}
		if property.SkipValue != "" && current == property.SkipValue {
			r.logger.Warn(fmt.Sprintf(
				"Cache contains plugin execution with skip flag and might be incomplete. Property: %s, execution: %s",
				property.PropertyName, execution.Key()))
			continue
		}
		r.logger.Info(fmt.Sprintf("Plugin parameter mismatch found. Parameter: %s, expected: %s, actual: %s",
			property.PropertyName, expected, current))
		return false
	}
	return true
}
