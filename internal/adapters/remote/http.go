package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

// HTTP stores cache entries as plain resources below a base URL, e.g.
// <url>/v1/com.acme/core/<checksum>/buildinfo.json.
type HTTP struct {
	baseURL string
	client  *http.Client
	retry   domain.RetrySettings
	logger  ports.Logger
}

var _ ports.RemoteRepository = (*HTTP)(nil)

// NewHTTP creates the http transport for settings.
func NewHTTP(settings domain.RemoteSettings, logger ports.Logger) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(settings.URL, "/"),
		client:  &http.Client{Timeout: settings.Timeout},
		retry:   settings.Retry,
		logger:  logger,
	}
}

// Enabled implements ports.RemoteRepository.
func (h *HTTP) Enabled() bool { return true }

// ResourceURL implements ports.RemoteRepository.
func (h *HTTP) ResourceURL(key domain.CacheKey, fileName string) string {
	return h.baseURL + "/" + resourcePath(key, fileName)
}

// Close implements ports.RemoteRepository.
func (h *HTTP) Close() error {
	h.client.CloseIdleConnections()
	return nil
}

// FindBuild implements ports.RemoteRepository.
func (h *HTTP) FindBuild(ctx context.Context, key domain.CacheKey) (*domain.Build, error) {
	return h.findRecord(ctx, h.ResourceURL(key, domain.BuildRecordFileName))
}

// findRecord downloads and decodes the build record at url.
func (h *HTTP) findRecord(ctx context.Context, url string) (*domain.Build, error) {
	var data []byte
	found, err := h.get(ctx, url, func(body io.Reader) error {
		var rerr error
		data, rerr = io.ReadAll(body)
		return rerr
	})
	if err != nil || !found {
		return nil, err
	}

	var build domain.Build
	if err := json.Unmarshal(data, &build); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildRecordDecode.Error()), "url", url)
	}
	build.Source = domain.SourceRemote
	return &build, nil
}

// FetchArtifact implements ports.RemoteRepository.
func (h *HTTP) FetchArtifact(ctx context.Context, key domain.CacheKey, artifact domain.Artifact, dest string) (bool, error) {
	url := h.ResourceURL(key, artifact.FileName)
	return h.get(ctx, url, func(body io.Reader) error {
		return writeFile(dest, body)
	})
}

// SaveBuild implements ports.RemoteRepository.
func (h *HTTP) SaveBuild(ctx context.Context, key domain.CacheKey, build *domain.Build) error {
	data, err := json.MarshalIndent(build, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildRecordEncode.Error()), "key", key.String())
	}
	return h.put(ctx, h.ResourceURL(key, domain.BuildRecordFileName), func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	})
}

// SaveArtifactFile implements ports.RemoteRepository.
func (h *HTTP) SaveArtifactFile(ctx context.Context, key domain.CacheKey, artifact domain.Artifact) error {
	return h.put(ctx, h.ResourceURL(key, artifact.FileName), func() (io.ReadCloser, error) {
		return os.Open(artifact.File)
	})
}

// get downloads url into read and reports false on 404.
func (h *HTTP) get(ctx context.Context, url string, read func(io.Reader) error) (bool, error) {
	found := false
	err := h.do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := h.client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			found = false
			return nil
		case resp.StatusCode == http.StatusOK:
			found = true
			return read(resp.Body)
		default:
			return statusError(resp.StatusCode)
		}
	})
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequest.Error()), "url", url)
	}
	return found, nil
}

// put uploads the body produced by open, reopening it on every attempt.
func (h *HTTP) put(ctx context.Context, url string, open func() (io.ReadCloser, error)) error {
	err := h.do(ctx, func() error {
		body, err := open()
		if err != nil {
			return backoff.Permanent(err)
		}
		defer func() { _ = body.Close() }()

		req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := h.client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode/100 != 2 {
			return statusError(resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoteRequest.Error()), "url", url)
	}
	return nil
}

func (h *HTTP) do(ctx context.Context, op backoff.Operation) error {
	policy := backoff.NewExponentialBackOff()
	if h.retry.InitialDelay > 0 {
		policy.InitialInterval = h.retry.InitialDelay
	}
	if h.retry.MaxDelay > 0 {
		policy.MaxInterval = h.retry.MaxDelay
	}
	policy.MaxElapsedTime = 0

	retries := max(h.retry.MaxRetries, 0)
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(retries)), ctx) //nolint:gosec // non-negative

	return backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		h.logger.Debug(fmt.Sprintf("remote request failed, retrying in %s: %v", wait, err))
	})
}

// statusError classifies a response status; only throttling and server errors are retried.
func statusError(code int) error {
	err := zerr.With(domain.ErrRemoteStatus, "status", code)
	if isRetryableStatus(code) {
		return err
	}
	return backoff.Permanent(err)
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// writeFile streams r into dest through a temporary file.
func writeFile(dest string, r io.Reader) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return backoff.Permanent(err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return backoff.Permanent(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return backoff.Permanent(err)
	}
	return nil
}
