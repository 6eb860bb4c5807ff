// Package diff explains why a build could not reuse a baseline build.
package diff

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/memo/internal/core/domain"
)

// Compare lists the differences between current and baseline. Executions are
// only compared when current recorded any, so a fingerprint alone can be
// compared against a complete baseline record.
func Compare(current, baseline *domain.Build) domain.DiffReport {
	c := &comparison{current: current, baseline: baseline}
	c.run()
	return domain.DiffReport{
		Project:    current.ProjectKey(),
		Mismatches: c.mismatches,
	}
}

type comparison struct {
	current    *domain.Build
	baseline   *domain.Build
	mismatches []domain.Mismatch
}

func (c *comparison) add(m domain.Mismatch) {
	c.mismatches = append(c.mismatches, m)
}

func (c *comparison) run() {
	if c.current.HashFunction != c.baseline.HashFunction {
		c.add(domain.Mismatch{
			Item:       "hashFunction",
			Current:    c.current.HashFunction,
			Baseline:   c.baseline.HashFunction,
			Reason:     "Different algorithms render caches not comparable and cached could not be reused",
			Resolution: "Ensure the same algorithm as remote",
		})
		return
	}

	c.compareModels()
	c.compareInputs(domain.ItemFile, domain.Mismatch{
		Item:       "source files",
		Reason:     "Remote and local cache contain different sets of input files.",
		Resolution: "Input file sets must be identical; exclude transient files through input excludes",
	}, "File content is different.", "Compare the file contents of both checkouts")
	c.compareInputs(domain.ItemDependency, domain.Mismatch{
		Item:       "dependencies files",
		Reason:     "Remote and local builds contain different sets of dependencies and cannot be matched.",
		Resolution: "Align the declared dependencies and their versions",
	}, "Downstream project or snapshot changed", "Rebuild the changed dependency or pin a released version")
	c.compareUpstream()

	if len(c.current.Executions) > 0 {
		c.compareExecutions()
	}
}

func (c *comparison) compareModels() {
	current, _ := firstItem(c.current, domain.ItemPom)
	baseline, _ := firstItem(c.baseline, domain.ItemPom)
	if current.Hash == baseline.Hash {
		return
	}
	c.add(domain.Mismatch{
		Item:       "effective pom",
		Current:    current.Hash,
		Baseline:   baseline.Hash,
		Reason:     "Difference in effective pom suggests effectively different builds which cannot be reused",
		Resolution: "Compare the rendered project models of both builds and eliminate the differences",
	})
}

// compareInputs reports a single set mismatch when the item values differ,
// otherwise one mismatch per item whose hash changed.
func (c *comparison) compareInputs(itemType string, setMismatch domain.Mismatch, reason, resolution string) {
	current := itemHashes(c.current, itemType)
	baseline := itemHashes(c.baseline, itemType)

	added := missingFrom(current, baseline)
	removed := missingFrom(baseline, current)
	if len(added) > 0 || len(removed) > 0 {
		setMismatch.Current = strings.Join(slices.Sorted(maps.Keys(current)), ", ")
		setMismatch.Baseline = strings.Join(slices.Sorted(maps.Keys(baseline)), ", ")
		setMismatch.Reason += " Added: " + strings.Join(added, ", ") + ". Removed: " + strings.Join(removed, ", ")
		c.add(setMismatch)
		return
	}

	for _, value := range slices.Sorted(maps.Keys(current)) {
		if current[value] == baseline[value] {
			continue
		}
		c.add(domain.Mismatch{
			Item:       value,
			Current:    current[value],
			Baseline:   baseline[value],
			Reason:     reason,
			Resolution: resolution,
		})
	}
}

func (c *comparison) compareUpstream() {
	current := itemHashes(c.current, domain.ItemUpstream)
	baseline := itemHashes(c.baseline, domain.ItemUpstream)

	for _, project := range slices.Sorted(maps.Keys(current)) {
		if baseline[project] == current[project] {
			continue
		}
		c.add(domain.Mismatch{
			Item:       project,
			Current:    current[project],
			Baseline:   baseline[project],
			Reason:     "Downstream project or snapshot changed",
			Resolution: "Compare the upstream project builds first",
			Context:    domain.ItemUpstream,
		})
	}
}

func (c *comparison) compareExecutions() {
	current := executionsByKey(c.current)
	baseline := executionsByKey(c.baseline)

	for _, key := range missingFrom(baseline, current) {
		c.add(domain.Mismatch{
			Item:       key,
			Baseline:   key,
			Reason:     "Baseline build contains excessive plugin " + key,
			Resolution: "Different sets of plugins produce different build results; align the plugin executions",
		})
	}
	for _, key := range missingFrom(current, baseline) {
		c.add(domain.Mismatch{
			Item:       key,
			Current:    key,
			Reason:     "Cached build doesn't contain plugin " + key,
			Resolution: "Different sets of plugins produce different build results; align the plugin executions",
		})
	}

	for _, key := range slices.Sorted(maps.Keys(current)) {
		base, ok := baseline[key]
		if !ok {
			continue
		}
		for _, property := range current[key].Properties {
			if !property.Tracked {
				continue
			}
			recorded, _ := base.Property(property.Name)
			if recorded.Value == property.Value {
				continue
			}
			c.add(domain.Mismatch{
				Item:       property.Name,
				Current:    property.Value,
				Baseline:   recorded.Value,
				Reason:     "Plugin: " + key + " has mismatch in tracked property and cannot be reused",
				Resolution: "Align the plugin configuration of both builds",
				Context:    key,
			})
		}
	}
}

func firstItem(build *domain.Build, itemType string) (domain.DigestItem, bool) {
	for _, item := range build.ProjectsInputInfo.Items {
		if item.Type == itemType {
			return item, true
		}
	}
	return domain.DigestItem{}, false
}

func itemHashes(build *domain.Build, itemType string) map[string]string {
	out := make(map[string]string)
	for _, item := range build.ProjectsInputInfo.Items {
		if item.Type == itemType {
			out[item.Value] = item.Hash
		}
	}
	return out
}

func executionsByKey(build *domain.Build) map[string]domain.CompletedExecution {
	out := make(map[string]domain.CompletedExecution, len(build.Executions))
	for _, e := range build.Executions {
		out[e.ExecutionKey] = e
	}
	return out
}

// missingFrom returns the sorted keys of a that are absent from b.
func missingFrom[V any](a, b map[string]V) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}
