package value

import (
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/prettydoc/pkg/doc"
	"github.com/matzehuels/prettydoc/pkg/errors"
)

// FromTOML decodes a TOML document and returns it as an object. Keys appear
// in the order they are defined in data.
func FromTOML(data []byte, opts ...Option) (*doc.Node, error) {
	var root map[string]any
	md, err := toml.Decode(string(data), &root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "toml")
	}

	t := &tomlConverter{options: newOptions(opts), order: make(map[string][]string)}
	for _, key := range md.Keys() {
		parent := key[:len(key)-1].String()
		name := key[len(key)-1]
		if !slices.Contains(t.order[parent], name) {
			t.order[parent] = append(t.order[parent], name)
		}
	}
	return t.table(nil, root), nil
}

type tomlConverter struct {
	*options
	order map[string][]string // table path -> child keys in definition order
}

func (t *tomlConverter) table(path toml.Key, m map[string]any) *doc.Node {
	names := make([]string, 0, len(m))
	for _, name := range t.order[path.String()] {
		if _, ok := m[name]; ok {
			names = append(names, name)
		}
	}
	// Keys missing from the metadata go last, sorted.
	var rest []string
	for name := range m {
		if !slices.Contains(names, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	names = append(names, rest...)

	entries := make([]entry, len(names))
	for i, name := range names {
		child := append(path[:len(path):len(path)], name)
		entries[i] = entry{key: quote(name), value: t.value(child, m[name])}
	}
	return t.object("", entries)
}

func (t *tomlConverter) value(path toml.Key, v any) *doc.Node {
	switch v := v.(type) {
	case map[string]any:
		return t.table(path, v)
	case []map[string]any:
		items := make([]*doc.Node, len(v))
		for i, m := range v {
			items[i] = t.table(path, m)
		}
		return t.list(items, false)
	case []any:
		items := make([]*doc.Node, len(v))
		scalars := true
		for i, e := range v {
			items[i] = t.value(path, e)
			switch e.(type) {
			case map[string]any, []map[string]any, []any:
				scalars = false
			}
		}
		return t.list(items, scalars)
	case string:
		return quote(v)
	case int64:
		return doc.Int(v)
	case float64:
		return doc.FloatTyped(v)
	case bool:
		return doc.Bool(v)
	case time.Time:
		return doc.Text(formatTOMLTime(v))
	default:
		return doc.Textf("%v", v)
	}
}

// formatTOMLTime writes local dates and times without the placeholder zone
// the decoder attaches to them.
func formatTOMLTime(v time.Time) string {
	switch v.Location().String() {
	case "date-local":
		return v.Format(time.DateOnly)
	case "time-local":
		return v.Format("15:04:05.999999999")
	case "datetime-local":
		return v.Format("2006-01-02T15:04:05.999999999")
	}
	return v.Format(time.RFC3339Nano)
}
