package value

import (
	"github.com/matzehuels/prettydoc/pkg/doc"
)

// Option configures how values are laid out.
type Option func(*options)

type options struct {
	justify int
}

// WithJustify packs lists of scalars wider than width into balanced lines of
// at most width columns instead of one element per line.
func WithJustify(width int) Option {
	return func(o *options) {
		o.justify = width
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var comma = doc.Concat(doc.Text(","), doc.Softline())

// entry is one key/value pair of an object.
type entry struct {
	key, value *doc.Node
}

func (o *options) list(items []*doc.Node, scalars bool) *doc.Node {
	if len(items) == 0 {
		return doc.Text("[]")
	}
	body := doc.Join(comma, items)
	if o.justify > 0 && scalars && len(items) > 1 && doc.FlatWidth(body) > o.justify {
		body = doc.SmartJoin(o.justify, doc.Text(", "), items)
	}
	return doc.Wrap("[", "]", body)
}

func (o *options) object(name string, entries []entry) *doc.Node {
	if len(entries) == 0 {
		return doc.Text(name + "{}")
	}
	fields := make([]*doc.Node, len(entries))
	for i, e := range entries {
		fields[i] = doc.Concat(e.key, doc.Text(": "), e.value)
	}
	return doc.Concat(doc.Text(name), doc.Wrap("{", "}", doc.Join(comma, fields)))
}
