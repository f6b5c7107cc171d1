package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/linear"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	return linear.NewRenderer(&stdout, &stderr), &stdout, &stderr
}

func TestRenderer_TaskLifecycle(t *testing.T) {
	r, stdout, stderr := newRenderer(t)
	require.NoError(t, r.Start(t.Context()))

	r.OnPlanEmit([]string{"clean", "css"}, map[string][]string{"css": {"clean"}}, []string{"all"})

	start := time.Unix(0, 0)
	r.OnTaskStart("span1", "", "css", start)
	r.OnTaskLog("span1", []byte("first line\n"))
	r.OnTaskLog("span1", []byte("second line\n"))
	r.OnTaskComplete("span1", start.Add(120*time.Millisecond), nil)

	require.NoError(t, r.Stop())

	assert.Equal(t, "[css] first line\n[css] second line\n", stdout.String())
	assert.Equal(t,
		"Running 2 task(s) for all\n"+
			"[css] Starting...\n"+
			"[css] ✓ Completed in 120ms\n",
		stderr.String())
}

func TestRenderer_Failure(t *testing.T) {
	r, _, stderr := newRenderer(t)

	start := time.Unix(0, 0)
	r.OnTaskStart("span1", "", "typescript", start)
	r.OnTaskComplete("span1", start.Add(2*time.Second), errors.New("type check failed"))

	assert.Contains(t, stderr.String(), "[typescript] ✗ Failed after 2s: type check failed\n")
}

func TestRenderer_PartialLines(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	start := time.Now()
	r.OnTaskStart("span1", "", "json", start)

	r.OnTaskLog("span1", []byte("part"))
	assert.Empty(t, stdout.String())

	r.OnTaskLog("span1", []byte("ial\nrest"))
	assert.Equal(t, "[json] partial\n", stdout.String())

	r.OnTaskComplete("span1", start, nil)
	assert.Equal(t, "[json] partial\n[json] rest\n", stdout.String())
}

func TestRenderer_InterleavedTasks(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	start := time.Now()
	r.OnTaskStart("a", "", "css", start)
	r.OnTaskStart("b", "", "json", start)
	r.OnTaskLog("a", []byte("from css "))
	r.OnTaskLog("b", []byte("from json\n"))
	r.OnTaskLog("a", []byte("done\n"))

	assert.Equal(t, "[json] from json\n[css] from css done\n", stdout.String())
}

func TestRenderer_StopFlushesBuffers(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	r.OnTaskStart("span1", "", "vendor", time.Now())
	r.OnTaskLog("span1", []byte("unterminated"))
	require.NoError(t, r.Stop())

	assert.Equal(t, "[vendor] unterminated\n", stdout.String())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	r, stdout, stderr := newRenderer(t)

	r.OnTaskLog("missing", []byte("ignored\n"))
	r.OnTaskComplete("missing", time.Now(), nil)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}
