package assets

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	taskJSON = "json"

	mainJSON = "main.json"
)

// devJSON matches JSON.stringify with a tab indent: one element per line.
var devJSON = &pretty.Options{Width: 0, Indent: "\t"}

func (e *env) json() definition {
	inputs := []string{e.src("**/*.json")}
	return definition{
		task: domain.Task{
			Name:         taskJSON,
			Inputs:       inputs,
			Output:       domain.OutputContract{Dir: e.paths.JSON(), Files: []string{mainJSON}},
			Dependencies: []string{taskClean},
			Reload:       true,
		},
		run: func(_ context.Context, out io.Writer) error {
			files, err := e.resolve(inputs...)
			if err != nil {
				return err
			}

			merged := "{}"
			for _, f := range files {
				data, err := e.read(f)
				if err != nil {
					return err
				}
				if !gjson.ValidBytes(data) {
					return zerr.With(domain.ErrJSONMergeFailed, "path", f)
				}
				if merged, err = mergeJSON(merged, string(data)); err != nil {
					return zerr.With(zerr.Wrap(err, domain.ErrJSONMergeFailed.Error()), "path", f)
				}
			}

			var result []byte
			if e.cfg.Mode.Minify() {
				result = pretty.Ugly([]byte(merged))
			} else {
				result = pretty.PrettyOptions([]byte(merged), devJSON)
			}

			if err := e.write(filepath.Join(e.paths.JSON(), mainJSON), result); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "merged %d file(s) into %s\n", len(files), mainJSON)
			return nil
		},
	}
}

// mergeJSON deep merges src into dst. Object members merge by key and array
// elements merge by index; any other src value replaces dst. New keys are
// appended in src order.
func mergeJSON(dst, src string) (string, error) {
	d, s := gjson.Parse(dst), gjson.Parse(src)

	switch {
	case d.IsObject() && s.IsObject():
		return mergeObjects(d, s)

	case d.IsArray() && s.IsArray():
		var err error
		result := dst
		existing := d.Array()
		i := 0
		s.ForEach(func(_, value gjson.Result) bool {
			merged := value.Raw
			if i < len(existing) {
				if merged, err = mergeJSON(existing[i].Raw, value.Raw); err != nil {
					return false
				}
			}
			result, err = sjson.SetRaw(result, strconv.Itoa(i), merged)
			i++
			return err == nil
		})
		return result, err

	default:
		return s.Raw, nil
	}
}

type member struct {
	key   string
	value string
}

// mergeObjects rebuilds the object from raw members, so keys that have no
// sjson path, such as the empty key, merge like any other.
func mergeObjects(d, s gjson.Result) (string, error) {
	var members []member
	index := make(map[string]int)

	d.ForEach(func(key, value gjson.Result) bool {
		if i, ok := index[key.String()]; ok {
			members[i].value = value.Raw
			return true
		}
		index[key.String()] = len(members)
		members = append(members, member{key: key.Raw, value: value.Raw})
		return true
	})

	var err error
	s.ForEach(func(key, value gjson.Result) bool {
		i, ok := index[key.String()]
		if !ok {
			index[key.String()] = len(members)
			members = append(members, member{key: key.Raw, value: value.Raw})
			return true
		}
		members[i].value, err = mergeJSON(members[i].value, value.Raw)
		return err == nil
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.key)
		b.WriteByte(':')
		b.WriteString(m.value)
	}
	b.WriteByte('}')
	return b.String(), nil
}
