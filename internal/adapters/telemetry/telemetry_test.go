package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/memo/internal/adapters/telemetry"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// recorder is a ports.Renderer capturing everything it receives.
type recorder struct {
	mu       sync.Mutex
	plans    [][]string
	started  []string
	logs     []string
	finished map[string]error
}

func (r *recorder) Start(context.Context) error { return nil }
func (r *recorder) Stop() error                 { return nil }

func (r *recorder) OnPlanEmit(projects, _ []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, projects)
}

func (r *recorder) OnTaskStart(_, _, name string, _ time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, name)
}

func (r *recorder) OnTaskLog(_ string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, string(data))
}

func (r *recorder) OnTaskComplete(spanID string, _ time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished == nil {
		r.finished = map[string]error{}
	}
	r.finished[spanID] = err
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
	var _ ports.Renderer = (*recorder)(nil)
}

func TestOTelTracer_WithRenderer(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	tracer := telemetry.NewOTelTracer("test-tracer").WithRenderer(rec)
	ctx := context.Background()

	tracer.EmitPlan(ctx, []string{"com.acme:core"}, []string{"package"})

	_, span := tracer.Start(ctx, "compiler:compile", ports.WithParent("com.acme:core"))
	n, err := span.Write([]byte("[INFO] compiling\n[INFO] done"))
	require.NoError(t, err)
	assert.Equal(t, 28, n)
	span.SetAttribute("exit_code", 0)
	span.End()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, [][]string{{"com.acme:core"}}, rec.plans)
	assert.Equal(t, "[INFO] compiling\n[INFO] done", strings.Join(rec.logs, ""))
}

func TestLineBuffer_FlushesWholeLines(t *testing.T) {
	t.Parallel()

	var chunks []string
	b := telemetry.NewLineBuffer(8, func(data []byte) {
		chunks = append(chunks, string(data))
	})

	_, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Empty(t, chunks)

	_, err = b.Write([]byte("\ndefgh"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abc\n"}, chunks)

	require.NoError(t, b.Close())
	assert.Equal(t, []string{"abc\n", "defgh"}, chunks)

	_, err = b.Write([]byte("late"))
	require.Error(t, err)
	require.NoError(t, b.Close())
}

func TestBridge_ReportsSpans(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(rec)))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := tp.Tracer("test-bridge")

	ctx, parent := tracer.Start(context.Background(), "com.acme:core")
	_, child := tracer.Start(ctx, "compiler:compile")
	child.SetStatus(codes.Error, "exit status 1")
	child.End()
	parent.End()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"com.acme:core", "compiler:compile"}, rec.started)
	require.Len(t, rec.finished, 2)
	assert.Equal(t, "exit status 1", rec.finished[child.SpanContext().SpanID().String()].Error())
	assert.NoError(t, rec.finished[parent.SpanContext().SpanID().String()])
}

func TestBridge_NilRenderer(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestBridge_FailedSpanWithoutDescription(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnTaskStart(gomock.Any(), "", "span", gomock.Any())
	renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).Do(
		func(_ string, _ time.Time, err error) {
			require.Error(t, err)
			assert.Equal(t, "failed", err.Error())
		})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(renderer)))
	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.SetStatus(codes.Error, "")
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	_, span := tracer.Start(context.Background(), "span")
	span.SetAttribute("key", "value")
	span.RecordError(errors.New("boom"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	span.End()
	tracer.EmitPlan(context.Background(), nil, nil)
}
