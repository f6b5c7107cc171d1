package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/assets"
	"go.trai.ch/assetpipe/internal/core/domain"
)

func TestMergeJSON(t *testing.T) {
	tests := []struct {
		name string
		dst  string
		src  string
		want string
	}{
		{name: "new keys appended", dst: `{"a":1}`, src: `{"b":2}`, want: `{"a":1,"b":2}`},
		{name: "later value wins", dst: `{"a":1,"b":2}`, src: `{"a":3}`, want: `{"a":3,"b":2}`},
		{
			name: "objects merge recursively",
			dst:  `{"levels":{"one":{"speed":1,"enemies":3}}}`,
			src:  `{"levels":{"one":{"speed":2},"two":{"speed":4}}}`,
			want: `{"levels":{"one":{"speed":2,"enemies":3},"two":{"speed":4}}}`,
		},
		{name: "arrays merge by index", dst: `{"a":[1,2,3]}`, src: `{"a":[9]}`, want: `{"a":[9,2,3]}`},
		{name: "array grows", dst: `{"a":[1]}`, src: `{"a":[{"x":1},2]}`, want: `{"a":[{"x":1},2]}`},
		{name: "type change replaces", dst: `{"a":{"x":1}}`, src: `{"a":"flat"}`, want: `{"a":"flat"}`},
		{name: "dotted keys stay literal", dst: `{}`, src: `{"first.name":"Janet"}`, want: `{"first.name":"Janet"}`},
		{name: "empty key", dst: `{}`, src: `{"": 1, "a": {"b": 1}}`, want: `{"":1,"a":{"b":1}}`},
		{name: "empty key merges", dst: `{"":{"x":1}}`, src: `{"":{"y":2}}`, want: `{"":{"x":1,"y":2}}`},
		{name: "escaped keys", dst: `{"a\"b":1}`, src: `{"a\"b":2,"c*":3}`, want: `{"a\"b":2,"c*":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assets.MergeJSON(tt.dst, tt.src)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestMergeJSON_KeyOrder(t *testing.T) {
	got, err := assets.MergeJSON(`{"b":1,"a":1}`, `{"c":1,"a":2}`)
	require.NoError(t, err)

	assert.Equal(t, `{"b":1,"a":2,"c":1}`, got)
}

func TestJSONTask(t *testing.T) {
	files := map[string]string{
		"src/json/a.json":        `{"title": "game", "levels": {"one": {"speed": 1}}}`,
		"src/json/b.json":        `{"levels": {"one": {"speed": 2}}}`,
		"src/json/nested/c.json": `{"debug": false}`,
	}

	t.Run("distribution minifies", func(t *testing.T) {
		f := newFixture(t, domain.ModeDistribution, files)

		_, err := f.run(t, "json")
		require.NoError(t, err)

		assert.Equal(t, `{"title":"game","levels":{"one":{"speed":2}},"debug":false}`, f.read(t, "dist/json/main.json"))
	})

	t.Run("development indents with tabs", func(t *testing.T) {
		f := newFixture(t, domain.ModeDevelopment, files)

		_, err := f.run(t, "json")
		require.NoError(t, err)

		want := "{\n\t\"title\": \"game\",\n\t\"levels\": {\n\t\t\"one\": {\n\t\t\t\"speed\": 2\n\t\t}\n\t},\n\t\"debug\": false\n}\n"
		assert.Equal(t, want, f.read(t, "test/json/main.json"))
	})

	t.Run("invalid source fails", func(t *testing.T) {
		f := newFixture(t, domain.ModeDistribution, map[string]string{"src/json/bad.json": `{"a":`})

		_, err := f.run(t, "json")
		require.ErrorContains(t, err, domain.ErrJSONMergeFailed.Error())
	})
}
