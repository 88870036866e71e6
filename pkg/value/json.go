package value

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/prettydoc/pkg/doc"
	"github.com/matzehuels/prettydoc/pkg/errors"
)

// jsonFrame is an array or object whose elements are still being read.
type jsonFrame struct {
	object  bool
	key     *doc.Node // pending object key
	items   []*doc.Node
	entries []entry
	scalars bool
}

// FromJSON decodes a single JSON value and returns its document. Object keys
// keep their order in the input.
func FromJSON(data []byte, opts ...Option) (*doc.Node, error) {
	o := newOptions(opts)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		stack []*jsonFrame
		root  *doc.Node
	)
	emit := func(n *doc.Node, scalar bool) error {
		if len(stack) == 0 {
			if root != nil {
				return errors.New(errors.ErrCodeInvalidInput, "json: unexpected data after top-level value")
			}
			root = n
			return nil
		}
		top := stack[len(stack)-1]
		if top.object {
			top.entries = append(top.entries, entry{key: top.key, value: n})
			top.key = nil
			return nil
		}
		top.items = append(top.items, n)
		top.scalars = top.scalars && scalar
		return nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "json")
		}

		var (
			n      *doc.Node
			scalar = true
		)
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				stack = append(stack, &jsonFrame{object: v == '{', scalars: true})
				continue
			}
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "json: unexpected %q", rune(v))
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.object {
				n = o.object("", top.entries)
			} else {
				n = o.list(top.items, top.scalars)
			}
			scalar = false
		case string:
			if len(stack) > 0 {
				if top := stack[len(stack)-1]; top.object && top.key == nil {
					top.key = quote(v)
					continue
				}
			}
			n = quote(v)
		case json.Number:
			n = jsonNumber(string(v))
		case float64:
			n = doc.Float(v)
		case bool:
			n = doc.Bool(v)
		case nil:
			n = doc.Text("null")
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "json: unexpected token %v", tok)
		}
		if err := emit(n, scalar); err != nil {
			return nil, err
		}
	}

	if len(stack) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "json: unexpected end of input")
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "json: empty input")
	}
	return root, nil
}

// jsonNumber keeps integer literals as written and reprints other numbers in
// shortest form.
func jsonNumber(lit string) *doc.Node {
	if !strings.ContainsAny(lit, ".eE") {
		return doc.Text(lit)
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return doc.Text(lit)
	}
	return doc.Float(f)
}
