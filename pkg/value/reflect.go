package value

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/prettydoc/pkg/doc"
)

// From returns a document describing v.
func From(v any, opts ...Option) *doc.Node {
	r := &reflector{
		options:  newOptions(opts),
		visiting: make(map[visit]bool),
	}
	return r.value(reflect.ValueOf(v))
}

// visit identifies a reference-typed value on the current path.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

type reflector struct {
	*options
	visiting map[visit]bool
}

var (
	documenterType = reflect.TypeFor[doc.Documenter]()
	errorType      = reflect.TypeFor[error]()
	stringerType   = reflect.TypeFor[fmt.Stringer]()
)

func (r *reflector) value(rv reflect.Value) *doc.Node {
	if !rv.IsValid() || isNilRef(rv) {
		return doc.Text("nil")
	}

	if rv.CanInterface() {
		switch t := rv.Type(); {
		case t.Implements(documenterType):
			return rv.Interface().(doc.Documenter).Doc()
		case t.Implements(errorType):
			return doc.Lines(rv.Interface().(error).Error())
		case t.Implements(stringerType):
			return doc.Lines(rv.Interface().(fmt.Stringer).String())
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return doc.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return doc.Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return doc.Uint(rv.Uint())
	case reflect.Float32:
		return doc.Float32(float32(rv.Float()))
	case reflect.Float64:
		return doc.Float(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return doc.Textf("%v", rv.Complex())
	case reflect.String:
		return quote(rv.String())
	case reflect.Interface:
		return r.value(rv.Elem())
	case reflect.Pointer:
		return r.guard(rv, func() *doc.Node {
			return doc.Concat(doc.Text("&"), r.value(rv.Elem()))
		})
	case reflect.Slice:
		return r.guard(rv, func() *doc.Node { return r.sequence(rv) })
	case reflect.Array:
		return r.sequence(rv)
	case reflect.Map:
		return r.guard(rv, func() *doc.Node { return r.mapping(rv) })
	case reflect.Struct:
		return r.record(rv)
	default:
		return doc.Text(rv.Type().String())
	}
}

func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// guard runs build unless rv is already being printed further up.
func (r *reflector) guard(rv reflect.Value, build func() *doc.Node) *doc.Node {
	key := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if rv.Kind() == reflect.Slice {
		key.len = rv.Len()
	}
	if key.ptr == 0 {
		return build()
	}
	if r.visiting[key] {
		return doc.Text("<cycle>")
	}
	r.visiting[key] = true
	defer delete(r.visiting, key)
	return build()
}

func (r *reflector) sequence(rv reflect.Value) *doc.Node {
	items := make([]*doc.Node, rv.Len())
	scalars := true
	for i := range items {
		e := rv.Index(i)
		items[i] = r.value(e)
		scalars = scalars && isScalar(e)
	}
	return r.list(items, scalars)
}

func (r *reflector) mapping(rv reflect.Value) *doc.Node {
	keys := rv.MapKeys()
	slices.SortFunc(keys, compareKeys)

	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{key: r.value(k), value: r.value(rv.MapIndex(k))}
	}
	return r.object("", entries)
}

func (r *reflector) record(rv reflect.Value) *doc.Node {
	t := rv.Type()
	var entries []entry
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("pprint"); ok {
			if tag == "-" {
				continue
			}
			if alias, _, _ := strings.Cut(tag, ","); alias != "" {
				name = alias
			}
		}
		entries = append(entries, entry{key: doc.Text(name), value: r.value(rv.Field(i))})
	}
	return r.object(t.Name(), entries)
}

func isScalar(rv reflect.Value) bool {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// compareKeys orders map keys numerically or lexically by kind, and by their
// printed form otherwise.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Bool:
			return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func quote(s string) *doc.Node {
	return doc.Text(strconv.Quote(s))
}
