// Package domain contains the core domain models of the build cache and the reactor graph.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Reactor is the dependency graph of the projects of a multi-module build.
type Reactor struct {
	projects       map[string]*Project
	upstream       map[string][]string
	executionOrder []string
}

// NewReactor creates an empty Reactor.
func NewReactor() *Reactor {
	return &Reactor{
		projects: make(map[string]*Project),
		upstream: make(map[string][]string),
	}
}

// AddProject adds a project to the reactor.
// It returns an error if a project with the same versionless key already exists.
func (r *Reactor) AddProject(p *Project) error {
	key := p.Key()
	if _, exists := r.projects[key]; exists {
		return zerr.With(ErrDuplicateProject, "project", key)
	}
	r.projects[key] = p
	return nil
}

// Project returns a project by versionless key.
func (r *Reactor) Project(key string) (*Project, bool) {
	p, ok := r.projects[key]
	return p, ok
}

// Len returns the number of projects.
func (r *Reactor) Len() int {
	return len(r.projects)
}

// Upstream returns the keys of the reactor projects p depends on, in sorted order.
// It is populated by Validate.
func (r *Reactor) Upstream(key string) []string {
	return r.upstream[key]
}

// Validate links dependencies to reactor projects and checks for cycles using
// a topological sort. It populates the execution order if successful.
func (r *Reactor) Validate() error {
	keys := make([]string, 0, len(r.projects))
	for key, p := range r.projects {
		keys = append(keys, key)
		var ups []string
		for _, dep := range p.Dependencies {
			depKey := dep.VersionlessKey()
			if _, inReactor := r.projects[depKey]; inReactor && depKey != key {
				ups = append(ups, depKey)
			}
		}
		slices.Sort(ups)
		r.upstream[key] = slices.Compact(ups)
	}
	slices.Sort(keys)

	r.executionOrder = make([]string, 0, len(r.projects))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range r.upstream[u] {
			if _, exists := r.projects[dep]; !exists {
				return zerr.With(ErrMissingProject, "project", dep)
			}
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		r.executionOrder = append(r.executionOrder, u)
		return nil
	}

	for _, key := range keys {
		if visited[key] == 0 {
			if err := visit(key); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, dep string) error {
	cyclePath := ""
	startIdx := slices.Index(path, dep)
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Walk returns an iterator that yields projects upstream first.
// It assumes Validate() has been called and returned nil.
func (r *Reactor) Walk() iter.Seq[*Project] {
	return func(yield func(*Project) bool) {
		for _, key := range r.executionOrder {
			if !yield(r.projects[key]) {
				return
			}
		}
	}
}
