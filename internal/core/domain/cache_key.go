package domain

import (
	"slices"
	"strings"
)

// Supported hash algorithms.
const (
	// HashSHA256 is the default, cryptographic, algorithm.
	HashSHA256 = "SHA-256"
	// HashXX selects xxhash64 for faster, non cryptographic keys.
	HashXX = "XX"
)

// CacheKey identifies a cacheable unit of work: a versionless project key, the
// fingerprint of its inputs and the keys of the reactor projects it builds upon.
// It is a comparable value.
type CacheKey struct {
	Project  string
	Checksum string
	upstream string
}

// NewCacheKey builds a key. The upstream keys are canonicalized so that the
// order in which they are given does not matter.
func NewCacheKey(project, checksum string, upstream ...CacheKey) CacheKey {
	refs := make([]string, 0, len(upstream))
	for _, u := range upstream {
		refs = append(refs, u.String())
	}
	slices.Sort(refs)
	refs = slices.Compact(refs)
	return CacheKey{
		Project:  project,
		Checksum: checksum,
		upstream: strings.Join(refs, ","),
	}
}

// Upstream returns the upstream keys in "project@checksum" form.
func (k CacheKey) Upstream() []string {
	if k.upstream == "" {
		return nil
	}
	return strings.Split(k.upstream, ",")
}

// IsZero reports whether the key is unset.
func (k CacheKey) IsZero() bool {
	return k.Checksum == ""
}

// String returns "project@checksum".
func (k CacheKey) String() string {
	return k.Project + "@" + k.Checksum
}
