package assets

import (
	"bytes"

	"github.com/tidwall/sjson"
)

// indexMap builds a source map v3 index map: one section per concatenated
// part, placed at the line where the part starts.
type indexMap struct {
	doc string
}

func newIndexMap(file string) (*indexMap, error) {
	doc, err := sjson.Set(`{"version":3}`, "file", file)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetRaw(doc, "sections", "[]")
	if err != nil {
		return nil, err
	}
	return &indexMap{doc: doc}, nil
}

// add appends the map of a part starting at line (zero-based).
func (m *indexMap) add(line int, partMap []byte) error {
	section, err := sjson.Set(`{}`, "offset.line", line)
	if err != nil {
		return err
	}
	if section, err = sjson.Set(section, "offset.column", 0); err != nil {
		return err
	}
	if section, err = sjson.SetRaw(section, "map", string(bytes.TrimSpace(partMap))); err != nil {
		return err
	}
	m.doc, err = sjson.SetRaw(m.doc, "sections.-1", section)
	return err
}

func (m *indexMap) bytes() []byte {
	return []byte(m.doc)
}
