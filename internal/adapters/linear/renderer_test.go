package linear_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/linear"
)

func TestRenderer_ProjectLifecycle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)
	require.NoError(t, r.Start(context.Background()))

	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	r.OnPlanEmit([]string{"com.acme:api", "com.acme:core"}, []string{"clean", "package"})
	r.OnTaskStart("p1", "", "com.acme:core", t0)
	r.OnTaskStart("m1", "p1", "compiler:compile", t0)
	r.OnTaskLog("m1", []byte("[INFO] Compiling 3 files\n[WARN] dep"))
	r.OnTaskLog("m1", []byte("recated\n"))
	r.OnTaskComplete("m1", t0.Add(1500*time.Millisecond), nil)
	r.OnTaskStart("m2", "p1", "surefire:test", t0.Add(1500*time.Millisecond))
	r.OnTaskLog("m2", []byte("tail"))
	r.OnTaskComplete("m2", t0.Add(2*time.Second), errors.New("exit status 1"))
	r.OnTaskComplete("p1", t0.Add(2*time.Second), nil)
	require.NoError(t, r.Stop())

	g := goldie.New(t)
	g.Assert(t, "lifecycle_stdout", stdout.Bytes())
	g.Assert(t, "lifecycle_stderr", stderr.Bytes())
}

func TestRenderer_PartialLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnTaskStart("span1", "", "com.acme:core", time.Now())
	r.OnTaskLog("span1", []byte("partial"))
	assert.Empty(t, stdout.String())

	r.OnTaskLog("span1", []byte(" line\r\n"))
	assert.Equal(t, "[core] partial line\n", stdout.String())

	r.OnTaskLog("span1", []byte("left over"))
	require.NoError(t, r.Stop())
	assert.Equal(t, "[core] partial line\n[core] left over\n", stdout.String())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnTaskLog("missing", []byte("ignored\n"))
	r.OnTaskComplete("missing", time.Now(), nil)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}
