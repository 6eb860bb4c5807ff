package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS memo_builds (
	project  TEXT NOT NULL,
	checksum TEXT NOT NULL,
	final    BOOLEAN NOT NULL DEFAULT FALSE,
	record   JSONB NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (project, checksum)
);
CREATE TABLE IF NOT EXISTS memo_artifacts (
	project   TEXT NOT NULL,
	checksum  TEXT NOT NULL,
	file_name TEXT NOT NULL,
	content   BYTEA NOT NULL,
	PRIMARY KEY (project, checksum, file_name)
)`

const (
	selectBuildSQL = `SELECT record FROM memo_builds WHERE project = $1 AND checksum = $2`

	// A final record is never replaced.
	upsertBuildSQL = `INSERT INTO memo_builds (project, checksum, final, record)
VALUES ($1, $2, $3, $4)
ON CONFLICT (project, checksum) DO UPDATE
SET final = EXCLUDED.final, record = EXCLUDED.record, saved_at = now()
WHERE NOT memo_builds.final`

	selectArtifactSQL = `SELECT content FROM memo_artifacts WHERE project = $1 AND checksum = $2 AND file_name = $3`

	upsertArtifactSQL = `INSERT INTO memo_artifacts (project, checksum, file_name, content)
VALUES ($1, $2, $3, $4)
ON CONFLICT (project, checksum, file_name) DO UPDATE SET content = EXCLUDED.content`
)

// DBTX is the subset of *pgxpool.Pool used by the postgres transport.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres keeps build records and artifact bytes in two tables.
type Postgres struct {
	db       DBTX
	location string
	close    func()
}

var _ ports.RemoteRepository = (*Postgres)(nil)

// OpenPostgres connects to the database at settings.URL and ensures the schema exists.
func OpenPostgres(ctx context.Context, settings domain.RemoteSettings) (*Postgres, error) {
	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	pool, err := pgxpool.New(ctx, settings.URL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryUnavailable.Error()), "url", redact(settings.URL))
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryUnavailable.Error()), "url", redact(settings.URL))
	}

	p := NewPostgres(pool, settings.URL)
	p.close = pool.Close
	return p, nil
}

// NewPostgres creates the transport on an existing connection.
func NewPostgres(db DBTX, location string) *Postgres {
	return &Postgres{db: db, location: redact(location), close: func() {}}
}

// Enabled implements ports.RemoteRepository.
func (p *Postgres) Enabled() bool { return true }

// ResourceURL implements ports.RemoteRepository.
func (p *Postgres) ResourceURL(key domain.CacheKey, fileName string) string {
	return p.location + "#" + resourcePath(key, fileName)
}

// Close implements ports.RemoteRepository.
func (p *Postgres) Close() error {
	p.close()
	return nil
}

// FindBuild implements ports.RemoteRepository.
func (p *Postgres) FindBuild(ctx context.Context, key domain.CacheKey) (*domain.Build, error) {
	var record []byte
	err := p.db.QueryRow(ctx, selectBuildSQL, key.Project, key.Checksum).Scan(&record)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequest.Error()), "key", key.String())
	}

	var build domain.Build
	if err := json.Unmarshal(record, &build); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildRecordDecode.Error()), "key", key.String())
	}
	build.Source = domain.SourceRemote
	return &build, nil
}

// FetchArtifact implements ports.RemoteRepository.
func (p *Postgres) FetchArtifact(ctx context.Context, key domain.CacheKey, artifact domain.Artifact, dest string) (bool, error) {
	var content []byte
	err := p.db.QueryRow(ctx, selectArtifactSQL, key.Project, key.Checksum, artifact.FileName).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequest.Error()), "key", key.String())
	}
	if err := writeFile(dest, bytes.NewReader(content)); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactRestore.Error()), "path", dest)
	}
	return true, nil
}

// SaveBuild implements ports.RemoteRepository.
func (p *Postgres) SaveBuild(ctx context.Context, key domain.CacheKey, build *domain.Build) error {
	record, err := json.Marshal(build)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildRecordEncode.Error()), "key", key.String())
	}
	if _, err := p.db.Exec(ctx, upsertBuildSQL, key.Project, key.Checksum, build.Final, record); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteRequest.Error()), "key", key.String())
	}
	return nil
}

// SaveArtifactFile implements ports.RemoteRepository.
func (p *Postgres) SaveArtifactFile(ctx context.Context, key domain.CacheKey, artifact domain.Artifact) error {
	content, err := os.ReadFile(artifact.File)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWrite.Error()), "path", artifact.File)
	}
	if _, err := p.db.Exec(ctx, upsertArtifactSQL, key.Project, key.Checksum, artifact.FileName, content); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteRequest.Error()), "key", key.String())
	}
	return nil
}

// redact drops credentials from a connection URL.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = nil
	return u.String()
}
