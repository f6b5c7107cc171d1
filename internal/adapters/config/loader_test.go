package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/config"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

func TestLoader_Load_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	root := t.TempDir()

	cfg, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultConfig(root), *cfg)
}

func TestLoader_Load_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	root := t.TempDir()

	createFile(t, root, domain.ConfigFileName, `
version: "1"
source: assets
output:
  dist: public
vendor:
  scripts: vendor/scripts.yaml
tools:
  sass: ["npx", "sass"]
  typecheck: ["tsc", "--noEmit"]
  lint: []
server:
  host: 127.0.0.1
  port: 8080
watch:
  poll: true
  interval: 250ms
  debounce: 0s
`)

	cfg, err := loader.Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "assets", cfg.Source)
	assert.Equal(t, "public", cfg.Output.Dist)
	assert.Equal(t, domain.DefaultDevDir, cfg.Output.Dev)
	assert.Equal(t, "vendor/scripts.yaml", cfg.Vendor.Scripts)
	assert.Equal(t, "styles.json", cfg.Vendor.Styles)
	assert.Equal(t, domain.Command{"npx", "sass"}, cfg.Tools.Sass)
	assert.Equal(t, domain.Command{"tsc", "--noEmit"}, cfg.Tools.TypeCheck)
	assert.True(t, cfg.Tools.Lint.Empty())
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.True(t, cfg.Watch.Poll)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Interval)
	assert.Equal(t, time.Duration(0), cfg.Watch.Debounce)
}

func TestLoader_Load_Discovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	root := t.TempDir()
	nested := filepath.Join(root, "src", "ts")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	createFile(t, root, domain.ConfigFileName, "root: .\n")

	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	loader := config.NewLoader(mockLogger)
	root := t.TempDir()

	createFile(t, root, domain.ConfigFileName, "version: \"7\"\n")

	_, err := loader.Load(root)
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "server: [", wantErr: domain.ErrConfigParseFailed},
		{name: "port out of range", content: "server:\n  port: 70000\n", wantErr: domain.ErrInvalidConfig},
		{name: "shared output roots", content: "output:\n  dist: out\n  dev: out\n", wantErr: domain.ErrInvalidConfig},
		{name: "zero poll interval", content: "watch:\n  interval: 0s\n", wantErr: domain.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))
			root := t.TempDir()
			createFile(t, root, domain.ConfigFileName, tt.content)

			_, err := loader.Load(root)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}
