package domain

import "path/filepath"

const (
	// MemoDirName is the name of the internal workspace directory.
	MemoDirName = ".memo"

	// CacheDirName is the name of the local build cache directory.
	CacheDirName = "cache"

	// IndexDirName is the name of the local build index database directory.
	IndexDirName = "index"

	// CacheConfigFileName is the name of the cache configuration file.
	CacheConfigFileName = "cache.yaml"

	// ProjectFileName is the name of a module descriptor.
	ProjectFileName = "memo.yaml"

	// WorkFileName is the name of the reactor descriptor.
	WorkFileName = "memo.work.yaml"

	// CacheLayoutVersion is the version segment of every cache path, local and remote.
	CacheLayoutVersion = "v1"

	// BuildRecordFileName is the name of the build record file inside a cache entry.
	BuildRecordFileName = "buildinfo.json"

	// LookupMarkerFileName marks the last remote lookup for a cache entry.
	LookupMarkerFileName = "lookupinfo"

	// LocalBuildDirName is the sub directory holding locally produced builds.
	LocalBuildDirName = "local"

	// ReportFileName is the name of the session cache report.
	ReportFileName = "build-cache-report.json"

	// DiffReportFileName is the name of the baseline diff report.
	DiffReportFileName = "build-cache-diff.json"

	// DefaultBuildDir is the default project build output directory.
	DefaultBuildDir = "target"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultMemoPath returns the default root directory for memo metadata.
func DefaultMemoPath() string {
	return MemoDirName
}

// DefaultCachePath returns the default location of the local build cache.
// It joins .memo and cache.
func DefaultCachePath() string {
	return filepath.Join(MemoDirName, CacheDirName)
}

// DefaultIndexPath returns the default location of the local build index.
// It joins .memo and index.
func DefaultIndexPath() string {
	return filepath.Join(MemoDirName, IndexDirName)
}

// DefaultCacheConfigPath returns the default cache configuration file path.
// It joins .memo and cache.yaml.
func DefaultCacheConfigPath() string {
	return filepath.Join(MemoDirName, CacheConfigFileName)
}
