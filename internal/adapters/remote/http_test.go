package remote_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/remote"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// memoryServer is a minimal PUT/GET blob store.
type memoryServer struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func (s *memoryServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		s.blobs[r.URL.Path] = data
		w.WriteHeader(http.StatusCreated)
	case http.MethodGet:
		data, ok := s.blobs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *memoryServer) has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[path]
	return ok
}

func settingsFor(url string) domain.RemoteSettings {
	return domain.RemoteSettings{
		Enabled:   true,
		Transport: domain.TransportHTTP,
		URL:       url,
		Timeout:   time.Second,
		Retry: domain.RetrySettings{
			MaxRetries:   2,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
		},
	}
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return logger
}

func TestHTTP_RoundTrip(t *testing.T) {
	t.Parallel()

	store := &memoryServer{blobs: map[string][]byte{}}
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)

	h := remote.NewHTTP(settingsFor(srv.URL+"/"), quietLogger(t))
	t.Cleanup(func() { _ = h.Close() })
	ctx := context.Background()
	key := domain.NewCacheKey("com.acme:core", "abc")

	got, err := h.FindBuild(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	build := &domain.Build{
		GroupID:    "com.acme",
		ArtifactID: "core",
		Goals:      []string{"package"},
		Executions: []domain.CompletedExecution{{ExecutionKey: "default-jar", MojoClassName: "maven-jar-plugin:jar"}},
	}
	require.NoError(t, h.SaveBuild(ctx, key, build))
	assert.True(t, store.has("/v1/com.acme/core/abc/buildinfo.json"))

	got, err = h.FindBuild(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.SourceRemote, got.Source)
	assert.Equal(t, build.Executions, got.Executions)

	src := filepath.Join(t.TempDir(), "core.jar")
	require.NoError(t, os.WriteFile(src, []byte("jar"), 0o644))
	artifact := domain.Artifact{FileName: "core.jar", File: src}
	require.NoError(t, h.SaveArtifactFile(ctx, key, artifact))

	dest := filepath.Join(t.TempDir(), "nested", "core.jar")
	found, err := h.FetchArtifact(ctx, key, artifact, dest)
	require.NoError(t, err)
	assert.True(t, found)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "jar", string(data))

	found, err = h.FetchArtifact(ctx, key, domain.Artifact{FileName: "missing.jar"}, dest+".missing")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, srv.URL+"/v1/com.acme/core/abc/core.jar", h.ResourceURL(key, "core.jar"))
}

func TestHTTP_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	h := remote.NewHTTP(settingsFor(srv.URL), quietLogger(t))
	got, err := h.FindBuild(context.Background(), domain.NewCacheKey("com.acme:core", "abc"))
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTP_ClientErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	h := remote.NewHTTP(settingsFor(srv.URL), quietLogger(t))
	_, err := h.FindBuild(context.Background(), domain.NewCacheKey("com.acme:core", "abc"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRemoteRequest.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTP_TimeoutIsMissUnlessFailFast(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	settings := settingsFor(srv.URL)
	settings.Timeout = 20 * time.Millisecond
	settings.Retry.MaxRetries = 0
	key := domain.NewCacheKey("com.acme:core", "abc")

	logger := quietLogger(t)
	logger.EXPECT().Error(gomock.Any())

	tolerant := remote.NewTolerant(remote.NewHTTP(settings, logger), logger, false)
	got, err := tolerant.FindBuild(context.Background(), key)
	require.NoError(t, err)
	assert.Nil(t, got)

	strict := remote.NewTolerant(remote.NewHTTP(settings, logger), logger, true)
	_, err = strict.FindBuild(context.Background(), key)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRemoteRequest.Error())
}
