package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/fs"
	"go.trai.ch/assetpipe/internal/core/domain"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
}

func TestResolver_ResolveInputs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/ts/main.ts":             "",
		"src/ts/scenes/boot.ts":      "",
		"src/typings/phaser.d.ts":    "",
		"src/img/logo.png":           "",
		"src/img/icons/star.svg":     "",
		"src/img/notes.txt":          "",
		"node_modules/@types/x/a.ts": "",
	})

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "recursive match sorted",
			patterns: []string{"src/ts/**/*.ts"},
			want:     []string{"src/ts/main.ts", "src/ts/scenes/boot.ts"},
		},
		{
			name:     "brace alternatives",
			patterns: []string{"src/**/*.{png,svg}"},
			want:     []string{"src/img/icons/star.svg", "src/img/logo.png"},
		},
		{
			name:     "pattern order preserved and duplicates dropped",
			patterns: []string{"src/typings/**/*.d.ts", "src/**/*.ts"},
			want:     []string{"src/typings/phaser.d.ts", "src/ts/main.ts", "src/ts/scenes/boot.ts"},
		},
		{
			name:     "leading dot slash",
			patterns: []string{"./src/img/*.png"},
			want:     []string{"src/img/logo.png"},
		},
		{
			name:     "no matches",
			patterns: []string{"src/**/*.mp4", "missing/**/*.woff"},
			want:     nil,
		},
	}

	r := fs.NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveInputs(tt.patterns, root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_InvalidPattern(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"src/[a-"}, t.TempDir())

	require.ErrorContains(t, err, domain.ErrInvalidPattern.Error())
}

func TestHasher_HashFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.json": `{"a":1}`})

	got, err := fs.NewHasher().HashFile(filepath.Join(root, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String(`{"a":1}`), got)

	_, err = fs.NewHasher().HashFile(filepath.Join(root, "missing"))
	require.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
}
