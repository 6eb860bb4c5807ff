package remote

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Baseline reads the builds of a reference session through the cache report
// that session published. The report and the records it links to may be
// served over http(s) or read from the file system.
type Baseline struct {
	reportURL string
	http      *HTTP

	mu     sync.Mutex
	report *domain.CacheReport
}

var _ ports.BaselineRepository = (*Baseline)(nil)

// NewBaseline creates a Baseline for the report at reportURL. Requests use the
// timeout and retry policy of settings.
func NewBaseline(reportURL string, settings domain.RemoteSettings, logger ports.Logger) *Baseline {
	return &Baseline{
		reportURL: reportURL,
		http:      NewHTTP(settings, logger),
	}
}

// FindBaselineBuild implements ports.BaselineRepository.
func (b *Baseline) FindBaselineBuild(ctx context.Context, project *domain.Project) (*domain.Build, error) {
	report, err := b.loadReport(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range report.Projects {
		if p.GroupID != project.GroupID || p.ArtifactID != project.ArtifactID {
			continue
		}
		if p.URL == "" {
			return nil, nil
		}
		return b.readBuild(ctx, p.URL)
	}
	return nil, nil
}

// loadReport fetches the report once; failed attempts are retried on the next call.
func (b *Baseline) loadReport(ctx context.Context) (*domain.CacheReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.report != nil {
		return b.report, nil
	}

	data, found, err := b.read(ctx, b.reportURL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBaselineNotFound.Error()), "url", b.reportURL)
	}
	if !found {
		return nil, zerr.With(domain.ErrBaselineNotFound, "url", b.reportURL)
	}

	var report domain.CacheReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBaselineNotFound.Error()), "url", b.reportURL)
	}
	b.report = &report
	return b.report, nil
}

func (b *Baseline) readBuild(ctx context.Context, location string) (*domain.Build, error) {
	if isHTTP(location) {
		return b.http.findRecord(ctx, location)
	}

	data, found, err := b.read(ctx, location)
	if err != nil || !found {
		return nil, err
	}
	var build domain.Build
	if err := json.Unmarshal(data, &build); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildRecordDecode.Error()), "url", location)
	}
	build.Source = domain.SourceRemote
	return &build, nil
}

// read returns the content at location and false if nothing is stored there.
func (b *Baseline) read(ctx context.Context, location string) ([]byte, bool, error) {
	if isHTTP(location) {
		var data []byte
		found, err := b.http.get(ctx, location, func(body io.Reader) error {
			var rerr error
			data, rerr = io.ReadAll(body)
			return rerr
		})
		return data, found, err
	}

	data, err := os.ReadFile(strings.TrimPrefix(location, "file://"))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheIO.Error()), "path", location)
	}
	return data, true, nil
}

func isHTTP(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
