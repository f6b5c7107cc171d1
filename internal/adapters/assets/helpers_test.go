package assets_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/assets"
	"go.trai.ch/assetpipe/internal/adapters/fs"
	"go.trai.ch/assetpipe/internal/adapters/manifest"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/assetpipe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var fixedClock = time.UnixMilli(1700000000000)

type recordingSink struct {
	mu    sync.Mutex
	diags []domain.Diagnostic
}

func (s *recordingSink) Report(d domain.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags = append(s.diags, d)
}

func (s *recordingSink) all() []domain.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Diagnostic(nil), s.diags...)
}

type fixture struct {
	root     string
	cfg      domain.Config
	pipeline ports.Pipeline
	sink     *recordingSink
	tools    *mocks.MockToolRunner
	logger   *mocks.MockLogger
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, []byte(content), domain.FilePerm))
	}
}

// newFixture builds a pipeline over a temporary project. Tool commands are
// disabled unless configure sets them.
func newFixture(t *testing.T, mode domain.Mode, files map[string]string, configure ...func(*domain.Config)) *fixture {
	t.Helper()

	root := t.TempDir()
	writeFiles(t, root, files)

	cfg := domain.DefaultConfig(root).WithMode(mode)
	cfg.Tools = domain.ToolsConfig{}
	for _, fn := range configure {
		fn(&cfg)
	}

	ctrl := gomock.NewController(t)
	tools := mocks.NewMockToolRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	sink := &recordingSink{}

	factory := assets.NewFactory(fs.NewResolver(), manifest.NewReader(), tools, logger, assets.WithClock(func() time.Time {
		return fixedClock
	}))
	p, err := factory.New(cfg, sink)
	require.NoError(t, err)

	return &fixture{root: root, cfg: cfg, pipeline: p, sink: sink, tools: tools, logger: logger}
}

// run executes one task and returns its output.
func (f *fixture) run(t *testing.T, name string) (string, error) {
	t.Helper()
	task, ok := f.pipeline.Graph().GetTask(name)
	require.True(t, ok, "task %s", name)

	var out bytes.Buffer
	err := f.pipeline.Execute(t.Context(), &task, &out, &out)
	return out.String(), err
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(f.root, filepath.FromSlash(rel)))
	return err == nil
}
