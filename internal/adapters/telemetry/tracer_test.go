package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/telemetry"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/assetpipe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// recordingRenderer keeps the order of renderer calls.
type recordingRenderer struct {
	mu     sync.Mutex
	events []string
	errs   map[string]error
	names  map[string]string
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{errs: map[string]error{}, names: map[string]string{}}
}

func (r *recordingRenderer) Start(_ context.Context) error { return nil }
func (r *recordingRenderer) Stop() error                   { return nil }

func (r *recordingRenderer) OnPlanEmit(tasks []string, _ map[string][]string, _ []string) {
	r.record("plan", tasks...)
}

func (r *recordingRenderer) OnTaskStart(spanID, _, name string, _ time.Time) {
	r.mu.Lock()
	r.names[spanID] = name
	r.mu.Unlock()
	r.record("start", name)
}

func (r *recordingRenderer) OnTaskLog(spanID string, data []byte) {
	r.record("log", r.name(spanID), string(data))
}

func (r *recordingRenderer) OnTaskComplete(spanID string, _ time.Time, err error) {
	name := r.name(spanID)
	r.mu.Lock()
	r.errs[name] = err
	r.mu.Unlock()
	r.record("complete", name)
}

func (r *recordingRenderer) name(spanID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names[spanID]
}

func (r *recordingRenderer) record(kind string, args ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := kind
	for _, a := range args {
		entry += " " + a
	}
	r.events = append(r.events, entry)
}

func (r *recordingRenderer) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

var _ ports.Renderer = (*recordingRenderer)(nil)

func TestProvider_SpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ObserveTask("css", gomock.Any(), nil)

	renderer := newRecordingRenderer()
	provider := telemetry.NewProvider(renderer, metrics)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	tracer := provider.Tracer()

	ctx := t.Context()
	tracer.EmitPlan(ctx, []string{"clean", "css"}, nil, []string{"all"})

	_, span := tracer.Start(ctx, "css")
	span.SetAttribute("mode", "dist")
	_, err := span.Write([]byte("compiled 1 stylesheet(s)\n"))
	require.NoError(t, err)
	span.End()

	assert.Equal(t, []string{
		"plan clean css",
		"start css",
		"log css compiled 1 stylesheet(s)\n",
		"complete css",
	}, renderer.all())
	assert.NoError(t, renderer.errs["css"])
}

func TestProvider_FailedSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)

	var observed error
	metrics.EXPECT().ObserveTask("typescript", gomock.Any(), gomock.Any()).
		Do(func(_ string, d time.Duration, err error) {
			assert.GreaterOrEqual(t, d, time.Duration(0))
			observed = err
		})

	renderer := newRecordingRenderer()
	tracer := telemetry.NewProvider(renderer, metrics).Tracer()

	_, span := tracer.Start(t.Context(), "typescript")
	span.RecordError(errors.New("type check failed"))
	span.End()

	require.EqualError(t, renderer.errs["typescript"], "type check failed")
	require.EqualError(t, observed, "type check failed")
}

func TestProvider_NilMetrics(t *testing.T) {
	renderer := newRecordingRenderer()
	tracer := telemetry.NewProvider(renderer, nil).Tracer()

	_, span := tracer.Start(t.Context(), "fonts")
	span.End()

	assert.Equal(t, []string{"start fonts", "complete fonts"}, renderer.all())
}

func TestBridge_ParentSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var parentID string
	gomock.InOrder(
		renderer.EXPECT().OnTaskStart(gomock.Any(), "", "build", gomock.Any()).
			Do(func(spanID, _, _ string, _ time.Time) { parentID = spanID }),
		renderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), "css", gomock.Any()).
			Do(func(_, parent, _ string, _ time.Time) { assert.Equal(t, parentID, parent) }),
		renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil),
		renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil),
	)

	tracer := telemetry.NewProvider(renderer, nil).Tracer()
	ctx, root := tracer.Start(t.Context(), "build")
	_, child := tracer.Start(ctx, "css")
	child.End()
	root.End()
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "css")
	assert.NotNil(t, ctx)

	tracer.EmitPlan(ctx, []string{"css"}, nil, nil)
	span.SetAttribute("key", 1)
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	span.End()
}
